package gamedata

import (
	"math/rand"
	"testing"
	"testing/fstest"
)

func TestLoadPieces(t *testing.T) {
	pieces, err := LoadPieces()
	if err != nil {
		t.Fatalf("Failed to load pieces: %v", err)
	}

	if len(pieces) != 7 {
		t.Errorf("Expected 7 pieces, got %d", len(pieces))
	}

	expectedIDs := map[string]bool{"I": false, "O": false, "T": false, "S": false, "Z": false, "J": false, "L": false}
	for _, p := range pieces {
		if _, ok := expectedIDs[p.ID]; ok {
			expectedIDs[p.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected piece %q not found", id)
		}
	}
}

func TestPiecesHaveFourCells(t *testing.T) {
	for _, p := range MustLoadPieceRegistry().All() {
		count := 0
		for _, row := range p.Shape {
			for _, v := range row {
				count += v
			}
		}
		if count != 4 {
			t.Errorf("Piece %s has %d cells, want 4", p.ID, count)
		}
		if _, err := ParseHexColor(p.Color); err != nil {
			t.Errorf("Piece %s has invalid color %q: %v", p.ID, p.Color, err)
		}
	}
}

func TestPieceRegistry(t *testing.T) {
	registry, err := LoadPieceRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	if registry.Count() != 7 {
		t.Errorf("Expected 7 piece kinds, got %d", registry.Count())
	}

	o := registry.GetByID("O")
	if o == nil {
		t.Fatal("O piece not found by ID")
	}
	if len(o.Shape) != 2 || len(o.Shape[0]) != 2 {
		t.Errorf("O piece shape is %dx%d, want 2x2", len(o.Shape), len(o.Shape[0]))
	}
	if registry.GetByID("X") != nil {
		t.Error("GetByID(\"X\") should return nil")
	}

	// Same seed, same sequence
	rng1 := rand.New(rand.NewSource(12345))
	rng2 := rand.New(rand.NewSource(12345))
	for i := 0; i < 20; i++ {
		a := registry.SpawnRandom(rng1).ID
		b := registry.SpawnRandom(rng2).ID
		if a != b {
			t.Errorf("Spawn %d mismatch: %s != %s", i, a, b)
		}
	}
}

func TestSpawnRandomCoversAllKinds(t *testing.T) {
	registry := MustLoadPieceRegistry()
	rng := rand.New(rand.NewSource(7))

	seen := make(map[string]int)
	for i := 0; i < 700; i++ {
		seen[registry.SpawnRandom(rng).ID]++
	}

	if len(seen) != registry.Count() {
		t.Errorf("Expected all %d kinds to spawn, saw %d", registry.Count(), len(seen))
	}
}

func TestPieceDefValidate(t *testing.T) {
	tests := []struct {
		name  string
		shape [][]int
		valid bool
	}{
		{"square", [][]int{{1, 1}, {1, 1}}, true},
		{"empty", [][]int{}, false},
		{"ragged", [][]int{{1, 1}, {1}}, false},
		{"bad value", [][]int{{2}}, false},
		{"no cells", [][]int{{0, 0}}, false},
	}

	for _, tt := range tests {
		def := PieceDef{ID: tt.name, Shape: tt.shape}
		err := def.Validate()
		if tt.valid && err != nil {
			t.Errorf("Validate(%s) should be valid, got error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("Validate(%s) should be invalid, got no error", tt.name)
		}
	}
}

func TestLoadFromMissingFile(t *testing.T) {
	fsys := fstest.MapFS{}
	if _, err := loadFrom[PiecesFile](fsys, "missing.json"); err == nil {
		t.Error("loadFrom should fail for a missing file")
	}

	fsys["bad.json"] = &fstest.MapFile{Data: []byte("{not json")}
	if _, err := loadFrom[PiecesFile](fsys, "bad.json"); err == nil {
		t.Error("loadFrom should fail for malformed JSON")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00ff00", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	want, _ := ParseHexColor("#22C55E")
	if p.Snake != want {
		t.Errorf("Palette snake color = %v, want %v", p.Snake, want)
	}
	if p.Food == p.Bomb {
		t.Error("Food and bomb colors should differ")
	}
}
