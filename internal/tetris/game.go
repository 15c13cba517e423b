package tetris

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/samdwyer/arcade/internal/gamedata"
)

const (
	DefaultRows     = 20
	DefaultCols     = 10
	DefaultQueueLen = 4

	// LineScore is awarded per cleared row, with no multi-line bonus.
	LineScore = 100

	// MinRows and MinCols leave room for every piece at the spawn point.
	MinRows = 4
	MinCols = 5

	spawnY = 0
)

// ErrInvalidConfig is returned for configurations the engine cannot run.
var ErrInvalidConfig = errors.New("invalid tetris config")

// Config holds board dimensions and lookahead length.
type Config struct {
	Rows     int
	Cols     int
	QueueLen int // Number of upcoming pieces shown
}

// DefaultConfig returns a 20x10 board with a 4-piece lookahead.
func DefaultConfig() Config {
	return Config{Rows: DefaultRows, Cols: DefaultCols, QueueLen: DefaultQueueLen}
}

// Validate reports whether the config can be played.
func (c Config) Validate() error {
	switch {
	case c.Rows < MinRows:
		return fmt.Errorf("%w: %d rows is below minimum %d", ErrInvalidConfig, c.Rows, MinRows)
	case c.Cols < MinCols:
		return fmt.Errorf("%w: %d columns is below minimum %d", ErrInvalidConfig, c.Cols, MinCols)
	case c.QueueLen < 1:
		return fmt.Errorf("%w: queue length must be positive", ErrInvalidConfig)
	}
	return nil
}

// SpawnX returns the column new pieces appear at: 4 on a 10-wide board.
func (c Config) SpawnX() int {
	return c.Cols/2 - 1
}

// Phase is the lifecycle state of a game.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Outcome describes what a tick did.
type Outcome int

const (
	// OutcomeIgnored means there was no active piece.
	OutcomeIgnored Outcome = iota
	// OutcomeFell means the piece moved down one row.
	OutcomeFell
	// OutcomeLocked means the piece merged and the next one took its place.
	OutcomeLocked
	// OutcomeToppedOut means the piece could not leave the top and the game ended.
	OutcomeToppedOut
)

// TickResult reports the outcome of a tick and any rows it cleared.
type TickResult struct {
	Outcome Outcome
	Cleared int
}

// Game holds the state of one Tetris session.
type Game struct {
	cfg      Config
	rng      *rand.Rand
	registry *gamedata.PieceRegistry
	board    Board
	current  *Piece
	next     []Piece
	score    int
	lines    int
	phase    Phase
}

// New creates an idle game with an empty board and no active piece.
func New(cfg Config, rng *rand.Rand, registry *gamedata.PieceRegistry) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if registry == nil || registry.Count() == 0 {
		return nil, fmt.Errorf("%w: no piece definitions", ErrInvalidConfig)
	}
	return &Game{
		cfg:      cfg,
		rng:      rng,
		registry: registry,
		board:    NewBoard(cfg.Rows, cfg.Cols),
		phase:    PhaseIdle,
	}, nil
}

// Start resets the board, deals a current piece and a full lookahead queue,
// and begins play.
func (g *Game) Start() {
	g.board = NewBoard(g.cfg.Rows, g.cfg.Cols)
	g.next = make([]Piece, g.cfg.QueueLen)
	for i := range g.next {
		g.next[i] = g.randomPiece()
	}
	current := g.randomPiece()
	g.current = &current
	g.score = 0
	g.lines = 0
	g.phase = PhasePlaying
}

// randomPiece returns a uniformly chosen piece at the spawn point.
func (g *Game) randomPiece() Piece {
	def := g.registry.SpawnRandom(g.rng)
	return Piece{
		Kind:  def.ID,
		Shape: ShapeFromRows(def.Shape),
		Color: def.Color,
		X:     g.cfg.SpawnX(),
		Y:     spawnY,
	}
}

// Move shifts the active piece horizontally by dx. It returns false and
// leaves the piece in place if the new position collides.
func (g *Game) Move(dx int) bool {
	if !g.active() {
		return false
	}
	moved := g.current.Moved(dx, 0)
	if Collides(g.board, moved) {
		return false
	}
	g.current = &moved
	return true
}

// Rotate turns the active piece clockwise. It returns false and leaves the
// piece unchanged if the rotated shape collides.
func (g *Game) Rotate() bool {
	if !g.active() {
		return false
	}
	rotated := g.current.Rotated()
	if Collides(g.board, rotated) {
		return false
	}
	g.current = &rotated
	return true
}

// Tick drops the active piece one row. When the piece overlaps locked cells
// at the spawn row, or cannot fall while still in the top row, the game ends.
// Otherwise a piece that cannot fall locks, clears full rows, and brings in
// the next queued piece.
func (g *Game) Tick() TickResult {
	if !g.active() {
		return TickResult{Outcome: OutcomeIgnored}
	}

	// A piece dealt onto locked cells in the top row cannot enter the board.
	if g.current.Y < 1 && Collides(g.board, *g.current) {
		g.phase = PhaseGameOver
		return TickResult{Outcome: OutcomeToppedOut}
	}

	down := g.current.Moved(0, 1)
	if !Collides(g.board, down) {
		g.current = &down
		return TickResult{Outcome: OutcomeFell}
	}

	if g.current.Y < 1 {
		g.phase = PhaseGameOver
		return TickResult{Outcome: OutcomeToppedOut}
	}

	board, cleared := ClearLines(MergePiece(g.board, *g.current))
	g.board = board
	g.lines += cleared
	g.score += cleared * LineScore

	current := g.next[0]
	g.current = &current
	next := make([]Piece, 0, len(g.next))
	next = append(next, g.next[1:]...)
	g.next = append(next, g.randomPiece())

	return TickResult{Outcome: OutcomeLocked, Cleared: cleared}
}

// SoftDrop is the player-triggered drop; it follows the same rules as Tick.
func (g *Game) SoftDrop() TickResult {
	return g.Tick()
}

// HardDrop ticks until the active piece locks or the game ends.
func (g *Game) HardDrop() TickResult {
	for {
		res := g.Tick()
		if res.Outcome != OutcomeFell {
			return res
		}
	}
}

func (g *Game) active() bool {
	return g.phase == PhasePlaying && g.current != nil && len(g.next) > 0
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

// Lines returns the total number of cleared rows.
func (g *Game) Lines() int { return g.lines }

// Snapshot is a read-only copy of the game state for rendering.
type Snapshot struct {
	Board   Board
	Current *Piece
	Next    []Piece
	Score   int
	Lines   int
	Phase   Phase
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Board: g.board.Clone(),
		Next:  make([]Piece, len(g.next)),
		Score: g.score,
		Lines: g.lines,
		Phase: g.phase,
	}
	if g.current != nil {
		c := g.current.Clone()
		s.Current = &c
	}
	for i, p := range g.next {
		s.Next[i] = p.Clone()
	}
	return s
}

// ActiveAt reports whether the active piece covers (x, y).
func (s Snapshot) ActiveAt(x, y int) bool {
	if s.Current == nil {
		return false
	}
	for _, c := range s.Current.Cells() {
		if c.X == x && c.Y == y {
			return true
		}
	}
	return false
}
