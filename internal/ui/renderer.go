package ui

import (
	"strconv"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/arcade/internal/gamedata"
	"github.com/samdwyer/arcade/internal/snake"
	"github.com/samdwyer/arcade/internal/tetris"
)

const (
	boardX    = 1 // Left edge of the board frame
	boardY    = 1 // Top edge of the board frame
	cellWidth = 2 // Terminal columns per board cell
	panelGap  = 3
)

// Status is the side-panel text shown next to a board.
type Status struct {
	Title   string
	Score   int
	Phase   string
	Info    []string // Game-specific lines (length, lines cleared, toggles)
	Message string   // Highlighted line, e.g. the game-over banner
	Help    []string
}

// Renderer handles drawing the games to the screen.
type Renderer struct {
	screen  *Screen
	palette gamedata.Palette
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, palette gamedata.Palette) *Renderer {
	return &Renderer{screen: screen, palette: palette}
}

// RenderSnake draws a Snake snapshot and its status panel.
func (r *Renderer) RenderSnake(s snake.Snapshot, st Status) {
	r.screen.Clear()

	size := s.Board.Size()
	r.drawFrame(size, size)

	body := make(map[snake.Position]int, len(s.Body))
	for i, p := range s.Body {
		body[p] = i
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := snake.Position{X: x, Y: y}
			cell := s.CellAt(p)
			idx, onSnake := body[p]

			switch {
			case cell == snake.CellWall:
				r.drawCell(x, y, cell.Rune(), ' ', r.fg(r.palette.Wall))
			case onSnake && idx == 0:
				r.drawCell(x, y, 'O', ' ', r.fg(r.palette.SnakeHead).Bold(true))
			case onSnake:
				r.drawCell(x, y, 'o', ' ', r.fg(r.palette.Snake))
			case cell == snake.CellFood:
				r.drawCell(x, y, cell.Rune(), ' ', r.fg(r.palette.Food).Bold(true))
			case cell == snake.CellBomb:
				r.drawCell(x, y, cell.Rune(), ' ', r.fg(r.palette.Bomb).Bold(true))
			default:
				r.drawCell(x, y, cell.Rune(), ' ', r.fg(r.palette.Empty))
			}
		}
	}

	px := PanelX(size)
	y := r.drawPanel(px, st)
	y = r.drawLegendEntry(px, y+1, 'o', "Snake", r.palette.Snake)
	y = r.drawLegendEntry(px, y, snake.CellFood.Rune(), "Food", r.palette.Food)
	if s.BombsOn {
		y = r.drawLegendEntry(px, y, snake.CellBomb.Rune(), "Bomb", r.palette.Bomb)
	}
	if s.Walls {
		r.drawLegendEntry(px, y, snake.CellWall.Rune(), "Wall", r.palette.Wall)
	}

	r.screen.Show()
}

// RenderTetris draws a Tetris snapshot, the upcoming pieces and the status panel.
func (r *Renderer) RenderTetris(s tetris.Snapshot, st Status) {
	r.screen.Clear()

	rows, cols := s.Board.Rows(), s.Board.Cols()
	r.drawFrame(cols, rows)

	var active tcell.Style
	if s.Current != nil {
		active = r.fg(gamedata.ColorOr(s.Current.Color, tcell.ColorWhite))
	}
	locked := r.fg(r.palette.Locked)
	empty := r.fg(r.palette.Empty)

	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			switch {
			case s.ActiveAt(x, y):
				r.drawCell(x, y, '[', ']', active)
			case s.Board.Filled(x, y):
				r.drawCell(x, y, '[', ']', locked)
			default:
				r.drawCell(x, y, ' ', '.', empty)
			}
		}
	}

	px := PanelX(cols)
	y := r.drawPanel(px, st)
	y = r.drawText(px, y+1, "Next:", r.fg(r.palette.Text))
	for i, p := range s.Next {
		r.drawText(px, y, strconv.Itoa(i+1)+".", r.fg(r.palette.Text))
		y = r.drawPreview(px+3, y, p) + 1
	}

	r.screen.Show()
}

// drawPreview draws a piece's shape at (x, y) and returns the row below it.
func (r *Renderer) drawPreview(x, y int, p tetris.Piece) int {
	style := r.fg(gamedata.ColorOr(p.Color, tcell.ColorWhite))
	for dy, row := range p.Shape {
		for dx, filled := range row {
			if filled {
				r.screen.SetContent(x+dx*cellWidth, y+dy, '[', style)
				r.screen.SetContent(x+dx*cellWidth+1, y+dy, ']', style)
			}
		}
	}
	return y + p.Shape.Height()
}

// drawPanel writes the title, score, phase and info lines; returns the next free row.
func (r *Renderer) drawPanel(x int, st Status) int {
	text := r.fg(r.palette.Text)
	y := boardY

	y = r.drawText(x, y, st.Title, text.Bold(true))
	y = r.drawText(x, y+1, "Score: "+strconv.Itoa(st.Score), text)
	if st.Phase != "" {
		y = r.drawText(x, y, "State: "+st.Phase, text)
	}
	for _, line := range st.Info {
		y = r.drawText(x, y, line, text)
	}
	if st.Message != "" {
		y = r.drawText(x, y+1, st.Message, r.fg(r.palette.Alert).Bold(true))
	}
	if len(st.Help) > 0 {
		y++
		for _, line := range st.Help {
			y = r.drawText(x, y, line, text.Dim(true))
		}
	}
	return y
}

func (r *Renderer) drawLegendEntry(x, y int, glyph rune, label string, color tcell.Color) int {
	r.screen.SetContent(x, y, glyph, r.fg(color).Bold(true))
	return r.drawText(x+2, y, label, r.fg(r.palette.Text))
}

// drawFrame draws a border around a board of cols×rows cells.
func (r *Renderer) drawFrame(cols, rows int) {
	style := r.fg(r.palette.Wall)
	right := boardX + cols*cellWidth + 1
	bottom := boardY + rows + 1

	for x := boardX; x <= right; x++ {
		r.screen.SetContent(x, boardY, '-', style)
		r.screen.SetContent(x, bottom, '-', style)
	}
	for y := boardY; y <= bottom; y++ {
		r.screen.SetContent(boardX, y, '|', style)
		r.screen.SetContent(right, y, '|', style)
	}
	for _, corner := range [][2]int{{boardX, boardY}, {right, boardY}, {boardX, bottom}, {right, bottom}} {
		r.screen.SetContent(corner[0], corner[1], '+', style)
	}
}

// drawCell draws one board cell as two terminal columns.
func (r *Renderer) drawCell(col, row int, left, right rune, style tcell.Style) {
	x := boardX + 1 + col*cellWidth
	y := boardY + 1 + row
	r.screen.SetContent(x, y, left, style)
	r.screen.SetContent(x+1, y, right, style)
}

// drawText writes msg at (x, y) and returns the next row.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) int {
	i := 0
	for _, ch := range msg {
		r.screen.SetContent(x+i, y, ch, style)
		i++
	}
	return y + 1
}

func (r *Renderer) fg(c tcell.Color) tcell.Style {
	return tcell.StyleDefault.Background(r.palette.Background).Foreground(c)
}

// CellOrigin returns the terminal coordinates of a board cell's left column.
func CellOrigin(col, row int) (x, y int) {
	return boardX + 1 + col*cellWidth, boardY + 1 + row
}

// PanelX returns the left column of the status panel for a board cols cells wide.
func PanelX(cols int) int {
	return boardX + cols*cellWidth + 2 + panelGap
}
