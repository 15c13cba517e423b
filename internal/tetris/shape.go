// Package tetris implements the Tetris rules: piece movement and rotation,
// collision checks, merging locked pieces and clearing full rows.
package tetris

// Shape is a rectangular matrix of filled cells, indexed [row][col].
type Shape [][]bool

// ShapeFromRows builds a shape from rows of 0/1 values.
func ShapeFromRows(rows [][]int) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, v := range row {
			s[y][x] = v != 0
		}
	}
	return s
}

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Rotate returns the shape turned 90° clockwise: transpose, then reverse the
// order within each new row.
func (s Shape) Rotate() Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for x := 0; x < w; x++ {
		out[x] = make([]bool, h)
		for y := 0; y < h; y++ {
			out[x][y] = s[h-1-y][x]
		}
	}
	return out
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for y, row := range s {
		out[y] = append([]bool(nil), row...)
	}
	return out
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if s.Height() != other.Height() || s.Width() != other.Width() {
		return false
	}
	for y := range s {
		for x := range s[y] {
			if s[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Point is a board coordinate; Y grows downwards and may be negative above the board.
type Point struct {
	X, Y int
}

// Piece is a tetromino with its top-left offset on the board.
type Piece struct {
	Kind  string // Piece letter
	Shape Shape
	Color string // Hex color code
	X, Y  int
}

// Cells returns the board coordinates of the piece's filled cells.
func (p Piece) Cells() []Point {
	cells := make([]Point, 0, 4)
	for y, row := range p.Shape {
		for x, filled := range row {
			if filled {
				cells = append(cells, Point{X: p.X + x, Y: p.Y + y})
			}
		}
	}
	return cells
}

// Moved returns a copy of the piece offset by dx, dy.
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns a copy of the piece with its shape rotated clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = p.Shape.Rotate()
	return p
}

// Clone returns a deep copy of the piece.
func (p Piece) Clone() Piece {
	p.Shape = p.Shape.Clone()
	return p
}
