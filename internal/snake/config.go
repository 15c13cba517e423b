package snake

import (
	"errors"
	"fmt"
)

const (
	// DefaultSize is the board edge length.
	DefaultSize = 20
	// MinSize is the smallest board that fits the initial body below the start cell.
	MinSize = 5

	// MaxBombs is the most bombs that can be on the board at once.
	MaxBombs = 5
	// FoodScore is awarded for each food eaten.
	FoodScore = 10

	// initialLength is the number of segments at start.
	initialLength = 3
	// wallDensity is the share of cells turned into walls, in tenths.
	wallDensity = 10
	// safeZone keeps walls at least this Chebyshev distance (exclusive) from the start cell.
	safeZone = 2
)

// ErrInvalidConfig is returned for configurations the engine cannot run.
var ErrInvalidConfig = errors.New("invalid snake config")

// Config holds the per-session options. It is fixed once a game starts.
type Config struct {
	Size  int  // Board edge length
	Walls bool // Place random walls at start
	Bombs bool // Allow bombs to be added during play
}

// DefaultConfig returns a 20x20 board with walls and bombs disabled.
func DefaultConfig() Config {
	return Config{Size: DefaultSize}
}

// Validate reports whether the config can be played.
func (c Config) Validate() error {
	if c.Size < MinSize {
		return fmt.Errorf("%w: size %d is below minimum %d", ErrInvalidConfig, c.Size, MinSize)
	}
	return nil
}

// StartPosition returns the head position of a fresh snake.
func StartPosition(size int) Position {
	return Position{X: size / 2, Y: size / 2}
}

// InitialBody returns the starting vertical body, head first, tail below.
func InitialBody(size int) []Position {
	start := StartPosition(size)
	body := make([]Position, initialLength)
	for i := range body {
		body[i] = Position{X: start.X, Y: start.Y + i}
	}
	return body
}
