// Package game runs a Snake or Tetris session in the terminal: it owns the
// screen, the timers and input, and feeds them to the engine one at a time.
package game

// State represents the lifecycle of the current session.
type State int

const (
	// StateIdle is shown before the first start.
	StateIdle State = iota
	// StatePlaying runs timers and accepts movement input.
	StatePlaying
	// StateGameOver waits for a restart.
	StateGameOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
