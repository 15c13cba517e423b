package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samdwyer/arcade/internal/game"
)

const (
	envGame      = "ARCADE_GAME"
	envSeed      = "ARCADE_SEED"
	envWalls     = "ARCADE_WALLS"
	envBombs     = "ARCADE_BOMBS"
	envLogFile   = "ARCADE_LOG_FILE"
	envLogLevel  = "ARCADE_LOG_LEVEL"
	envLogFormat = "ARCADE_LOG_FORMAT"
)

// configFromEnv builds the game config from ARCADE_* variables. Unset
// variables keep the defaults.
func configFromEnv(getenv func(string) string) (game.Config, error) {
	cfg := game.DefaultConfig()

	if v := strings.TrimSpace(getenv(envGame)); v != "" {
		k, err := game.ParseKind(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envGame, err)
		}
		cfg.Kind = k
	}

	if v := strings.TrimSpace(getenv(envSeed)); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", envSeed, err)
		}
		cfg.Seed = seed
	}

	var err error
	if cfg.Walls, err = envBool(getenv, envWalls); err != nil {
		return cfg, err
	}
	if cfg.Bombs, err = envBool(getenv, envBombs); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func envBool(getenv func(string) string, name string) (bool, error) {
	v := strings.TrimSpace(getenv(name))
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", name, err)
	}
	return b, nil
}
