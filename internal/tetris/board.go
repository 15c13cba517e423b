package tetris

// Cell is the state of a locked board cell.
type Cell uint8

const (
	// CellEmpty is a free cell.
	CellEmpty Cell = iota
	// CellFilled is part of a merged piece.
	CellFilled
)

// Board is a grid of cells indexed [row][col].
type Board [][]Cell

// NewBoard returns an all-empty rows×cols board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for y := range b {
		b[y] = emptyRow(cols)
	}
	return b
}

func emptyRow(cols int) []Cell {
	return make([]Cell, cols)
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Filled reports whether the cell at (x, y) is locked.
// Cells off the board read as empty.
func (b Board) Filled(x, y int) bool {
	if y < 0 || y >= b.Rows() || x < 0 || x >= b.Cols() {
		return false
	}
	return b[y][x] == CellFilled
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	out := make(Board, len(b))
	for y, row := range b {
		out[y] = append([]Cell(nil), row...)
	}
	return out
}

// FilledCount returns the number of locked cells.
func (b Board) FilledCount() int {
	n := 0
	for _, row := range b {
		for _, c := range row {
			if c == CellFilled {
				n++
			}
		}
	}
	return n
}

// Collides reports whether any filled cell of the piece lies left or right of
// the board, below it, or on a locked cell. Cells above the top row are only
// checked against the side walls.
func Collides(board Board, piece Piece) bool {
	rows, cols := board.Rows(), board.Cols()
	for _, c := range piece.Cells() {
		if c.X < 0 || c.X >= cols || c.Y >= rows {
			return true
		}
		if c.Y >= 0 && board[c.Y][c.X] == CellFilled {
			return true
		}
	}
	return false
}

// MergePiece returns a new board with the piece's cells locked in.
// Cells above the top row are dropped.
func MergePiece(board Board, piece Piece) Board {
	out := board.Clone()
	for _, c := range piece.Cells() {
		if c.Y < 0 || c.Y >= out.Rows() || c.X < 0 || c.X >= out.Cols() {
			continue
		}
		out[c.Y][c.X] = CellFilled
	}
	return out
}

// ClearLines returns a new board with every full row removed and the same
// number of empty rows added on top, plus the number of rows removed.
func ClearLines(board Board) (Board, int) {
	rows, cols := board.Rows(), board.Cols()

	kept := make([][]Cell, 0, rows)
	for _, row := range board {
		if !rowFull(row) {
			kept = append(kept, append([]Cell(nil), row...))
		}
	}

	cleared := rows - len(kept)
	out := make(Board, 0, rows)
	for i := 0; i < cleared; i++ {
		out = append(out, emptyRow(cols))
	}
	out = append(out, kept...)
	return out, cleared
}

func rowFull(row []Cell) bool {
	for _, c := range row {
		if c != CellFilled {
			return false
		}
	}
	return true
}
