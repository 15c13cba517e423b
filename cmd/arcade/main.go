// Package main is the entry point for arcade.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/samdwyer/arcade/internal/game"
	"github.com/samdwyer/arcade/internal/logger"
	"github.com/samdwyer/arcade/internal/telemetry"
)

func main() {
	os.Exit(exitCode(run(os.Args[1:])))
}

// exitCode maps run's error to a process status: 0 for success and for
// -help, 2 for bad usage, 1 otherwise.
func exitCode(err error) int {
	var usage usageError
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
		return 0
	case errors.As(err, &usage):
		return 2
	default:
		log.Printf("arcade: %v", err)
		return 1
	}
}

// usageError marks errors caused by bad command-line arguments.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// run sets up logging and telemetry, then plays until the player quits.
// Deferred cleanup always runs before main exits.
func run(args []string) error {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	cfg, err := configFromEnv(os.Getenv)
	if err != nil {
		return fmt.Errorf("invalid environment: %w", err)
	}
	if err := parseFlags(&cfg, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return err
		}
		return usageError{err}
	}

	logOut, closeLog, err := logOutput(os.Getenv(envLogFile))
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger.Init(os.Getenv(envLogLevel), os.Getenv(envLogFormat) == "json", logOut)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if telemetry.ConfigureEnv() {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					logger.Error("telemetry shutdown", "error", err)
				}
			}()
		}
	}

	g, err := game.New(cfg)
	if err != nil {
		logger.Error("game init failed", "error", err)
		return fmt.Errorf("initialize game: %w", err)
	}

	if err := g.Run(ctx); err != nil {
		return fmt.Errorf("game: %w", err)
	}
	return nil
}

// parseFlags overrides cfg with any command-line flags that were given.
func parseFlags(cfg *game.Config, args []string) error {
	fs := flag.NewFlagSet("arcade", flag.ContinueOnError)
	kind := fs.String("game", string(cfg.Kind), "game to play: snake or tetris")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 picks one from the clock)")
	fs.BoolVar(&cfg.Walls, "walls", cfg.Walls, "snake: place walls at start")
	fs.BoolVar(&cfg.Bombs, "bombs", cfg.Bombs, "snake: drop bombs while playing")
	if err := fs.Parse(args); err != nil {
		return err
	}

	k, err := game.ParseKind(*kind)
	if err != nil {
		fmt.Fprintln(fs.Output(), err)
		return err
	}
	cfg.Kind = k
	return nil
}

// logOutput opens the log file, or discards logs when no path is set. The
// terminal belongs to the game while it runs.
func logOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
