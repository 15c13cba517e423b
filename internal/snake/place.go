package snake

import (
	"math/rand"

	"github.com/kamstrup/intmap"
)

// occupancy is a set of board cells keyed by y*size+x.
type occupancy struct {
	size  int
	cells *intmap.Map[int, struct{}]
}

func newOccupancy(size int, groups ...[]Position) occupancy {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	o := occupancy{size: size, cells: intmap.New[int, struct{}](n + 8)}
	for _, g := range groups {
		for _, p := range g {
			o.add(p)
		}
	}
	return o
}

func (o occupancy) key(p Position) int {
	return p.Y*o.size + p.X
}

func (o occupancy) add(p Position) {
	o.cells.Put(o.key(p), struct{}{})
}

func (o occupancy) has(p Position) bool {
	return o.cells.Has(o.key(p))
}

// placementAttempts bounds the rejection sampler before it falls back to
// scanning for free cells.
func placementAttempts(size int) int {
	return size * size * 4
}

// sample draws uniform random cells until free accepts one. After
// placementAttempts misses it picks uniformly among all accepted cells, and
// returns false when there are none.
func sample(size int, rng *rand.Rand, free func(Position) bool) (Position, bool) {
	for i := 0; i < placementAttempts(size); i++ {
		p := Position{X: rng.Intn(size), Y: rng.Intn(size)}
		if free(p) {
			return p, true
		}
	}

	var candidates []Position
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			p := Position{X: x, Y: y}
			if free(p) {
				candidates = append(candidates, p)
			}
		}
	}
	if len(candidates) == 0 {
		return Position{}, false
	}
	return candidates[rng.Intn(len(candidates))], true
}

// PlaceItem picks a uniform random cell that is not on the body, not on a
// non-empty board cell and not on any of the occupied item cells.
func PlaceItem(size int, body []Position, board Board, occupied []Position, rng *rand.Rand) (Position, bool) {
	blocked := newOccupancy(size, body, occupied)
	return sample(size, rng, func(p Position) bool {
		return board.At(p) == CellEmpty && !blocked.has(p)
	})
}
