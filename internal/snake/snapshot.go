package snake

// Snapshot is a read-only copy of the game state for rendering.
type Snapshot struct {
	Board     Board
	Body      []Position
	Direction Direction
	Food      Position
	HasFood   bool
	Bombs     []Position
	Score     int
	Phase     Phase
	Cause     Cause
	Walls     bool
	BombsOn   bool
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Board:     g.board.Clone(),
		Body:      append([]Position(nil), g.body...),
		Direction: g.dir,
		Food:      g.food,
		HasFood:   g.hasFood,
		Bombs:     append([]Position(nil), g.bombs...),
		Score:     g.score,
		Phase:     g.phase,
		Cause:     g.cause,
		Walls:     g.cfg.Walls,
		BombsOn:   g.cfg.Bombs,
	}
}

// CellAt classifies p with items layered over the board.
func (s Snapshot) CellAt(p Position) Cell {
	if c := s.Board.At(p); c != CellEmpty {
		return c
	}
	if s.HasFood && s.Food == p {
		return CellFood
	}
	if containsPosition(s.Bombs, p) {
		return CellBomb
	}
	return CellEmpty
}

// SnakeIndex returns the body index at p (0 is the head), or -1.
func (s Snapshot) SnakeIndex(p Position) int {
	for i, seg := range s.Body {
		if seg == p {
			return i
		}
	}
	return -1
}
