package snake

import "math/rand"

// Board is a square grid of cells indexed [y][x].
type Board [][]Cell

// NewBoard creates an empty size×size board. With walls enabled it places
// size²/10 walls at random, keeping clear of the start area and the initial
// body. Wall placement stops early if the board runs out of free cells.
func NewBoard(size int, walls bool, rng *rand.Rand) Board {
	board := emptyBoard(size)
	if !walls {
		return board
	}

	start := StartPosition(size)
	reserved := newOccupancy(size, InitialBody(size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if abs(x-start.X) < safeZone && abs(y-start.Y) < safeZone {
				reserved.add(Position{X: x, Y: y})
			}
		}
	}

	wallCount := size * size / wallDensity
	for i := 0; i < wallCount; i++ {
		p, ok := sample(size, rng, func(p Position) bool {
			return board[p.Y][p.X] == CellEmpty && !reserved.has(p)
		})
		if !ok {
			break
		}
		board[p.Y][p.X] = CellWall
	}

	return board
}

func emptyBoard(size int) Board {
	board := make(Board, size)
	for y := range board {
		board[y] = make([]Cell, size)
	}
	return board
}

// Size returns the board edge length.
func (b Board) Size() int {
	return len(b)
}

// InBounds returns true if p lies on the board.
func (b Board) InBounds(p Position) bool {
	return p.X >= 0 && p.X < len(b) && p.Y >= 0 && p.Y < len(b)
}

// At returns the cell at p. Positions off the board read as walls.
func (b Board) At(p Position) Cell {
	if !b.InBounds(p) {
		return CellWall
	}
	return b[p.Y][p.X]
}

// WallCount returns the number of wall cells.
func (b Board) WallCount() int {
	count := 0
	for _, row := range b {
		for _, c := range row {
			if c == CellWall {
				count++
			}
		}
	}
	return count
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// CheckCollision reports whether head is off the board or on a wall.
func CheckCollision(head Position, board Board) bool {
	return board.At(head) == CellWall
}

// CheckSelfCollision reports whether head overlaps any body segment.
func CheckSelfCollision(head Position, body []Position) bool {
	for _, seg := range body {
		if seg == head {
			return true
		}
	}
	return false
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
