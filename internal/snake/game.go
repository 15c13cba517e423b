package snake

import "math/rand"

// Game holds the state of one Snake session.
type Game struct {
	cfg     Config
	rng     *rand.Rand
	board   Board
	body    []Position // Head first
	dir     Direction
	moved   Direction // Heading of the last step
	food    Position
	hasFood bool
	bombs   []Position
	score   int
	phase   Phase
	cause   Cause
}

// New creates an idle game. The board has no walls until the first Start.
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		cfg:   cfg,
		rng:   rng,
		board: emptyBoard(cfg.Size),
		body:  InitialBody(cfg.Size),
		dir:   Up,
		moved: Up,
		phase: PhaseIdle,
	}
	g.food, g.hasFood = PlaceItem(cfg.Size, g.body, g.board, nil, rng)
	return g, nil
}

// Start resets the game and begins play. It may be called from any phase.
func (g *Game) Start() {
	g.board = NewBoard(g.cfg.Size, g.cfg.Walls, g.rng)
	g.body = InitialBody(g.cfg.Size)
	g.dir = Up
	g.moved = Up
	g.bombs = nil
	g.score = 0
	g.cause = CauseNone
	g.food, g.hasFood = PlaceItem(g.cfg.Size, g.body, g.board, nil, g.rng)
	g.phase = PhasePlaying
}

// SetDirection changes the heading for the next step. It returns false,
// leaving the heading unchanged, when the game is not playing or d reverses
// the heading of the last step. Several turns between steps are checked
// against that same heading.
func (g *Game) SetDirection(d Direction) bool {
	if g.phase != PhasePlaying || d == g.moved.Opposite() {
		return false
	}
	g.dir = d
	return true
}

// Step advances the snake one cell in its current direction.
func (g *Game) Step() Outcome {
	if g.phase != PhasePlaying {
		return OutcomeIgnored
	}

	head := g.body[0].Add(g.dir)

	switch {
	case !g.board.InBounds(head):
		return g.end(CauseBounds)
	case g.board.At(head) == CellWall:
		return g.end(CauseWall)
	case containsPosition(g.bombs, head):
		return g.end(CauseBomb)
	case CheckSelfCollision(head, g.body):
		// The tail counts even though it would vacate this tick.
		return g.end(CauseSelf)
	}

	ate := g.hasFood && head == g.food

	keep := len(g.body)
	if !ate {
		keep--
	}
	body := make([]Position, 0, keep+1)
	body = append(body, head)
	body = append(body, g.body[:keep]...)
	g.body = body
	g.moved = g.dir

	if !ate {
		return OutcomeMoved
	}

	g.score += FoodScore
	g.food, g.hasFood = PlaceItem(g.cfg.Size, g.body, g.board, g.bombs, g.rng)
	if !g.hasFood {
		g.end(CauseBoardFull)
	}
	return OutcomeAte
}

// AddBomb places one more bomb on a free cell. It returns false when bombs
// are disabled, the game is not playing, the bomb limit is reached or no
// free cell remains.
func (g *Game) AddBomb() bool {
	if !g.cfg.Bombs || g.phase != PhasePlaying || len(g.bombs) >= MaxBombs {
		return false
	}

	occupied := append([]Position(nil), g.bombs...)
	if g.hasFood {
		occupied = append(occupied, g.food)
	}
	p, ok := PlaceItem(g.cfg.Size, g.body, g.board, occupied, g.rng)
	if !ok {
		return false
	}

	bombs := make([]Position, len(g.bombs), len(g.bombs)+1)
	copy(bombs, g.bombs)
	g.bombs = append(bombs, p)
	return true
}

// end moves the game to its terminal phase.
func (g *Game) end(cause Cause) Outcome {
	g.phase = PhaseGameOver
	g.cause = cause
	return OutcomeCrashed
}

// Config returns the session options.
func (g *Game) Config() Config { return g.cfg }

// Phase returns the lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// Playing reports whether the game accepts ticks and input.
func (g *Game) Playing() bool { return g.phase == PhasePlaying }

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.phase == PhaseGameOver }

// Score returns the current score.
func (g *Game) Score() int { return g.score }

// Len returns the snake length.
func (g *Game) Len() int { return len(g.body) }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.dir }

// Head returns the head position.
func (g *Game) Head() Position { return g.body[0] }

// Cause returns why the game ended, or CauseNone.
func (g *Game) Cause() Cause { return g.cause }

func containsPosition(ps []Position, p Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
