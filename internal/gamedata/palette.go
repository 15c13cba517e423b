package gamedata

import "github.com/gdamore/tcell/v2"

// PaletteDef is the raw color table from palette.json.
type PaletteDef struct {
	Background string `json:"background"`
	Empty      string `json:"empty"`
	Wall       string `json:"wall"`
	Snake      string `json:"snake"`
	SnakeHead  string `json:"snakeHead"`
	Food       string `json:"food"`
	Bomb       string `json:"bomb"`
	Locked     string `json:"locked"` // Merged Tetris cells
	Text       string `json:"text"`
	Alert      string `json:"alert"` // Game over banner
}

// Palette holds resolved terminal colors for both games.
type Palette struct {
	Background tcell.Color
	Empty      tcell.Color
	Wall       tcell.Color
	Snake      tcell.Color
	SnakeHead  tcell.Color
	Food       tcell.Color
	Bomb       tcell.Color
	Locked     tcell.Color
	Text       tcell.Color
	Alert      tcell.Color
}

// Resolve converts the hex table into terminal colors.
// Invalid entries fall back to the named terminal colors.
func (d PaletteDef) Resolve() Palette {
	return Palette{
		Background: ColorOr(d.Background, tcell.ColorBlack),
		Empty:      ColorOr(d.Empty, tcell.ColorDarkSlateGray),
		Wall:       ColorOr(d.Wall, tcell.ColorGray),
		Snake:      ColorOr(d.Snake, tcell.ColorGreen),
		SnakeHead:  ColorOr(d.SnakeHead, tcell.ColorLightGreen),
		Food:       ColorOr(d.Food, tcell.ColorRed),
		Bomb:       ColorOr(d.Bomb, tcell.ColorYellow),
		Locked:     ColorOr(d.Locked, tcell.ColorDarkGray),
		Text:       ColorOr(d.Text, tcell.ColorWhite),
		Alert:      ColorOr(d.Alert, tcell.ColorRed),
	}
}

// LoadPalette loads and resolves the embedded palette.json.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Resolve(), nil
}

// DefaultPalette returns the embedded palette, or the terminal fallbacks when
// palette.json cannot be read.
func DefaultPalette() Palette {
	p, err := LoadPalette()
	if err != nil {
		return PaletteDef{}.Resolve()
	}
	return p
}
