// Package snake implements the Snake game rules: board generation, item
// placement and the per-tick movement of the snake.
package snake

// Position is a grid cell coordinate, 0-indexed from the top-left corner.
type Position struct {
	X, Y int
}

// Add returns the position shifted by the direction's delta.
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Cell classifies a board cell.
type Cell uint8

const (
	// CellEmpty is a free cell.
	CellEmpty Cell = iota
	// CellWall is an obstacle placed at game start.
	CellWall
	// CellFood is the cell holding the food item.
	CellFood
	// CellBomb is a cell holding a bomb.
	CellBomb
)

// Rune returns the cell's display character.
func (c Cell) Rune() rune {
	switch c {
	case CellWall:
		return '#'
	case CellFood:
		return '*'
	case CellBomb:
		return '@'
	default:
		return '.'
	}
}

// Direction is the heading of the snake.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the one-cell offset for the direction. Y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse direction.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Phase is the lifecycle state of a game.
type Phase int

const (
	// PhaseIdle is the state before the first start.
	PhaseIdle Phase = iota
	// PhasePlaying accepts ticks and input.
	PhasePlaying
	// PhaseGameOver is terminal until the next start.
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause records why a game ended.
type Cause string

const (
	CauseNone      Cause = ""
	CauseBounds    Cause = "wall-collision"
	CauseWall      Cause = "obstacle-collision"
	CauseBomb      Cause = "bomb"
	CauseSelf      Cause = "self-collision"
	CauseBoardFull Cause = "board-full"
)

// Outcome describes what a single step did.
type Outcome int

const (
	// OutcomeIgnored means the game was not playing.
	OutcomeIgnored Outcome = iota
	// OutcomeMoved means the snake advanced without eating.
	OutcomeMoved
	// OutcomeAte means the snake ate and grew by one.
	OutcomeAte
	// OutcomeCrashed means the step ended the game.
	OutcomeCrashed
)
