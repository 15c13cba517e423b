package gamedata

import (
	"errors"
	"fmt"
	"math/rand"
)

// PieceDef defines a tetromino loaded from JSON.
type PieceDef struct {
	ID    string  `json:"id"`    // Piece letter (I, O, T, S, Z, J, L)
	Color string  `json:"color"` // Hex color code
	Shape [][]int `json:"shape"` // Rows of 0/1 cells, top row first
}

// Validate checks that the shape is a non-empty rectangle of 0/1 cells
// with at least one filled cell.
func (p *PieceDef) Validate() error {
	if len(p.Shape) == 0 || len(p.Shape[0]) == 0 {
		return fmt.Errorf("piece %s: empty shape", p.ID)
	}
	filled := 0
	for y, row := range p.Shape {
		if len(row) != len(p.Shape[0]) {
			return fmt.Errorf("piece %s: row %d has width %d, want %d", p.ID, y, len(row), len(p.Shape[0]))
		}
		for _, v := range row {
			switch v {
			case 0:
			case 1:
				filled++
			default:
				return fmt.Errorf("piece %s: invalid cell value %d", p.ID, v)
			}
		}
	}
	if filled == 0 {
		return fmt.Errorf("piece %s: no filled cells", p.ID)
	}
	return nil
}

// PiecesFile represents the structure of tetrominoes.json.
type PiecesFile struct {
	Pieces []PieceDef `json:"pieces"`
}

// LoadPieces loads piece definitions from the embedded tetrominoes.json file.
func LoadPieces() ([]PieceDef, error) {
	file, err := Load[PiecesFile]("tetrominoes.json")
	if err != nil {
		return nil, err
	}
	for i := range file.Pieces {
		if err := file.Pieces[i].Validate(); err != nil {
			return nil, fmt.Errorf("tetrominoes.json: %w", err)
		}
	}
	return file.Pieces, nil
}

// PieceRegistry holds loaded piece definitions.
type PieceRegistry struct {
	pieces []PieceDef
	byID   map[string]*PieceDef
}

// NewPieceRegistry creates a registry from loaded piece definitions.
func NewPieceRegistry(pieces []PieceDef) *PieceRegistry {
	r := &PieceRegistry{
		pieces: pieces,
		byID:   make(map[string]*PieceDef, len(pieces)),
	}
	for i := range pieces {
		r.byID[pieces[i].ID] = &pieces[i]
	}
	return r
}

// LoadPieceRegistry loads and creates a registry from the embedded tetrominoes.json.
func LoadPieceRegistry() (*PieceRegistry, error) {
	pieces, err := LoadPieces()
	if err != nil {
		return nil, err
	}
	if len(pieces) == 0 {
		return nil, errors.New("no pieces loaded from tetrominoes.json")
	}
	return NewPieceRegistry(pieces), nil
}

// MustLoadPieceRegistry loads a registry, panicking on error.
func MustLoadPieceRegistry() *PieceRegistry {
	registry, err := LoadPieceRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom picks a piece definition uniformly at random.
func (r *PieceRegistry) SpawnRandom(rng *rand.Rand) *PieceDef {
	if len(r.pieces) == 0 {
		return nil
	}
	return &r.pieces[rng.Intn(len(r.pieces))]
}

// GetByID returns the piece definition with the given ID, or nil if not found.
func (r *PieceRegistry) GetByID(id string) *PieceDef {
	return r.byID[id]
}

// All returns all piece definitions.
func (r *PieceRegistry) All() []PieceDef {
	return r.pieces
}

// Count returns the number of piece kinds in the registry.
func (r *PieceRegistry) Count() int {
	return len(r.pieces)
}
