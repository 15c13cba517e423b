package game

import (
	"errors"
	"fmt"
	"strings"
)

// Kind selects which game a session plays.
type Kind string

const (
	KindSnake  Kind = "snake"
	KindTetris Kind = "tetris"
)

// ErrUnknownKind is returned by ParseKind for unrecognised game names.
var ErrUnknownKind = errors.New("unknown game")

// ErrInvalidConfig is returned when a Config cannot be used.
var ErrInvalidConfig = errors.New("invalid game config")

// ParseKind converts a game name to a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindSnake:
		return KindSnake, nil
	case KindTetris:
		return KindTetris, nil
	default:
		return "", fmt.Errorf("%w: %q (want snake or tetris)", ErrUnknownKind, s)
	}
}

// Config holds game configuration options.
type Config struct {
	Kind Kind

	// Seed for random number generation. Used for reproducible boards and pieces.
	// A seed of 0 means a random seed will be generated.
	Seed int64

	// Snake options; they take effect at the next start and can be toggled
	// in-game while not playing.
	Walls bool
	Bombs bool
}

// DefaultConfig returns a Snake config with a random seed.
func DefaultConfig() Config {
	return Config{Kind: KindSnake}
}

// Validate reports whether the config can be used.
func (c Config) Validate() error {
	if _, err := ParseKind(string(c.Kind)); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
