package tetris

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/arcade/internal/gamedata"
)

func newStartedGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), rand.New(rand.NewSource(42)), gamedata.MustLoadPieceRegistry())
	require.NoError(t, err)
	g.Start()
	return g
}

// pieceOf builds a piece of the given kind from the embedded definitions.
func pieceOf(t *testing.T, kind string, x, y int) Piece {
	t.Helper()
	def := gamedata.MustLoadPieceRegistry().GetByID(kind)
	require.NotNil(t, def, "piece %s", kind)
	return Piece{Kind: def.ID, Shape: ShapeFromRows(def.Shape), Color: def.Color, X: x, Y: y}
}

func setCurrent(g *Game, p Piece) {
	g.current = &p
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Equal(t, 4, DefaultConfig().SpawnX())

	bad := []Config{
		{Rows: 2, Cols: 10, QueueLen: 4},
		{Rows: 20, Cols: 3, QueueLen: 4},
		{Rows: 20, Cols: 10, QueueLen: 0},
	}
	for _, cfg := range bad {
		assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
	}

	_, err := New(DefaultConfig(), rand.New(rand.NewSource(1)), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestNewGameIsIdle(t *testing.T) {
	g, err := New(DefaultConfig(), rand.New(rand.NewSource(1)), gamedata.MustLoadPieceRegistry())
	require.NoError(t, err)

	assert.Equal(t, PhaseIdle, g.Phase())
	assert.Equal(t, TickResult{Outcome: OutcomeIgnored}, g.Tick())
	assert.False(t, g.Move(1))
	assert.False(t, g.Rotate())
	assert.Nil(t, g.Snapshot().Current)
}

func TestStartDealsPieces(t *testing.T) {
	g := newStartedGame(t)
	snap := g.Snapshot()

	assert.Equal(t, PhasePlaying, snap.Phase)
	require.NotNil(t, snap.Current)
	assert.Equal(t, 4, snap.Current.X)
	assert.Equal(t, 0, snap.Current.Y)
	assert.Len(t, snap.Next, DefaultQueueLen)
	for _, p := range snap.Next {
		assert.Equal(t, 4, p.X)
		assert.Equal(t, 0, p.Y)
	}
	assert.Equal(t, 0, snap.Score)
	assert.Equal(t, 0, snap.Board.FilledCount())
	assert.Equal(t, DefaultRows, snap.Board.Rows())
	assert.Equal(t, DefaultCols, snap.Board.Cols())
}

func TestCollidesOutsideBoard(t *testing.T) {
	board := NewBoard(20, 10)

	for _, kind := range []string{"I", "O", "T", "S", "Z", "J", "L"} {
		assert.True(t, Collides(board, pieceOf(t, kind, -1, 5)), "%s left of board", kind)
		assert.True(t, Collides(board, pieceOf(t, kind, 9, 5)), "%s right of board", kind)
		assert.True(t, Collides(board, pieceOf(t, kind, 4, 20)), "%s below board", kind)
		assert.True(t, Collides(board, pieceOf(t, kind, 4, 25)), "%s far below board", kind)
		assert.False(t, Collides(board, pieceOf(t, kind, 4, 0)), "%s at spawn", kind)
	}
}

func TestCollidesAboveBoardOnlyChecksSides(t *testing.T) {
	board := NewBoard(20, 10)
	for x := 0; x < 10; x++ {
		board[0][x] = CellFilled
	}

	// Entirely above the board: never collides with contents.
	assert.False(t, Collides(board, pieceOf(t, "O", 4, -2)))
	// Overlapping row 0.
	assert.True(t, Collides(board, pieceOf(t, "O", 4, -1)))
	// Side walls still apply above the board.
	assert.True(t, Collides(board, pieceOf(t, "O", -1, -3)))
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, def := range gamedata.MustLoadPieceRegistry().All() {
		shape := ShapeFromRows(def.Shape)
		rotated := shape
		for i := 0; i < 4; i++ {
			rotated = rotated.Rotate()
		}
		assert.True(t, shape.Equal(rotated), "piece %s", def.ID)
	}
}

func TestRotateClockwise(t *testing.T) {
	tShape := ShapeFromRows([][]int{{0, 1, 0}, {1, 1, 1}})
	want := ShapeFromRows([][]int{{1, 0}, {1, 1}, {1, 0}})
	assert.True(t, want.Equal(tShape.Rotate()))

	iShape := ShapeFromRows([][]int{{1, 1, 1, 1}})
	assert.Equal(t, 4, iShape.Rotate().Height())
	assert.Equal(t, 1, iShape.Rotate().Width())
}

func TestRotateRejectedOnCollision(t *testing.T) {
	g := newStartedGame(t)
	vertical := pieceOf(t, "I", 9, 0).Rotated()
	setCurrent(g, vertical)

	assert.False(t, g.Rotate())
	assert.True(t, g.Snapshot().Current.Shape.Equal(vertical.Shape))

	setCurrent(g, pieceOf(t, "T", 4, 5))
	assert.True(t, g.Rotate())
	assert.Equal(t, 3, g.Snapshot().Current.Shape.Height())
}

func TestMove(t *testing.T) {
	g := newStartedGame(t)
	setCurrent(g, pieceOf(t, "O", 0, 5))

	assert.False(t, g.Move(-1))
	assert.Equal(t, 0, g.Snapshot().Current.X)

	assert.True(t, g.Move(1))
	assert.Equal(t, 1, g.Snapshot().Current.X)

	setCurrent(g, pieceOf(t, "O", 8, 5))
	assert.False(t, g.Move(1))
	assert.Equal(t, 8, g.Snapshot().Current.X)

	g.board[5][7] = CellFilled
	assert.False(t, g.Move(-1), "locked cell blocks movement")
}

func TestOPieceLandsOnEmptyBoard(t *testing.T) {
	g := newStartedGame(t)
	setCurrent(g, pieceOf(t, "O", 4, 0))
	queued := g.next[0].Kind

	falls := 0
	var res TickResult
	for {
		res = g.Tick()
		if res.Outcome != OutcomeFell {
			break
		}
		falls++
	}

	assert.Equal(t, OutcomeLocked, res.Outcome)
	assert.Equal(t, 18, falls)
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.False(t, g.Over())

	snap := g.Snapshot()
	for _, c := range []Point{{4, 18}, {5, 18}, {4, 19}, {5, 19}} {
		assert.True(t, snap.Board.Filled(c.X, c.Y), "cell %v", c)
	}
	assert.Equal(t, 4, snap.Board.FilledCount())

	require.NotNil(t, snap.Current)
	assert.Equal(t, queued, snap.Current.Kind)
	assert.Equal(t, 0, snap.Current.Y)
	assert.Len(t, snap.Next, DefaultQueueLen)
}

func TestSpawnBlockedEndsGameOnFirstTick(t *testing.T) {
	g := newStartedGame(t)
	for y := 0; y < DefaultRows; y++ {
		for x := 1; x < DefaultCols; x++ {
			g.board[y][x] = CellFilled
		}
	}

	res := g.Tick()

	assert.Equal(t, OutcomeToppedOut, res.Outcome)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.False(t, g.Playing())
	assert.Equal(t, TickResult{Outcome: OutcomeIgnored}, g.Tick())
	assert.False(t, g.Move(-1))
}

func TestSpawnOverlapEndsGameOnFirstTick(t *testing.T) {
	g := newStartedGame(t)
	for x := 0; x < DefaultCols-1; x++ {
		g.board[0][x] = CellFilled
	}
	setCurrent(g, pieceOf(t, "O", 4, 0))
	require.True(t, Collides(g.board, *g.current))

	res := g.Tick()

	assert.Equal(t, OutcomeToppedOut, res.Outcome)
	assert.Equal(t, PhaseGameOver, g.Phase())
	assert.Equal(t, 0, g.Snapshot().Current.Y, "piece must not fall through locked cells")
	assert.Equal(t, DefaultCols-1, g.board.FilledCount())
}

func TestLockClearsLinesAndScores(t *testing.T) {
	g := newStartedGame(t)
	for _, y := range []int{18, 19} {
		for x := 0; x < DefaultCols; x++ {
			if x != 4 && x != 5 {
				g.board[y][x] = CellFilled
			}
		}
	}
	g.board[17][0] = CellFilled
	setCurrent(g, pieceOf(t, "O", 4, 0))

	res := g.HardDrop()

	assert.Equal(t, OutcomeLocked, res.Outcome)
	assert.Equal(t, 2, res.Cleared)
	assert.Equal(t, 200, g.Score())
	assert.Equal(t, 2, g.Lines())

	snap := g.Snapshot()
	assert.Equal(t, DefaultRows, snap.Board.Rows())
	assert.Equal(t, DefaultCols, snap.Board.Cols())
	assert.Equal(t, 1, snap.Board.FilledCount())
	assert.True(t, snap.Board.Filled(0, 19), "row above the cleared lines shifts down")
}

func TestClearLinesScoresLinearly(t *testing.T) {
	for n := 0; n <= 4; n++ {
		board := NewBoard(20, 10)
		for y := 20 - n; y < 20; y++ {
			for x := 0; x < 10; x++ {
				board[y][x] = CellFilled
			}
		}
		board[15][3] = CellFilled

		out, cleared := ClearLines(board)

		assert.Equal(t, n, cleared)
		assert.Equal(t, 100*n, cleared*LineScore)
		assert.Equal(t, 20, out.Rows())
		assert.Equal(t, 10, out.Cols())
		assert.Equal(t, 1, out.FilledCount())
		assert.True(t, out.Filled(3, 15+n))
	}
}

func TestClearLinesDoesNotMutateInput(t *testing.T) {
	board := NewBoard(4, 5)
	for x := 0; x < 5; x++ {
		board[3][x] = CellFilled
	}

	_, cleared := ClearLines(board)

	assert.Equal(t, 1, cleared)
	assert.Equal(t, 5, board.FilledCount())
}

func TestMergePieceSkipsRowsAboveBoard(t *testing.T) {
	board := NewBoard(20, 10)
	out := MergePiece(board, pieceOf(t, "O", 2, -1))

	assert.Equal(t, 0, board.FilledCount())
	assert.Equal(t, 2, out.FilledCount())
	assert.True(t, out.Filled(2, 0))
	assert.True(t, out.Filled(3, 0))
}

func TestQueueAdvances(t *testing.T) {
	g := newStartedGame(t)
	before := append([]Piece(nil), g.next...)

	g.HardDrop()

	require.Len(t, g.next, DefaultQueueLen)
	assert.Equal(t, before[0].Kind, g.current.Kind)
	for i := 0; i < DefaultQueueLen-1; i++ {
		assert.Equal(t, before[i+1].Kind, g.next[i].Kind)
	}
}

func TestSoftDropMatchesTick(t *testing.T) {
	g := newStartedGame(t)
	setCurrent(g, pieceOf(t, "I", 4, 0))

	assert.Equal(t, OutcomeFell, g.SoftDrop().Outcome)
	assert.Equal(t, 1, g.Snapshot().Current.Y)
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newStartedGame(t)
	snap := g.Snapshot()

	snap.Board[0][0] = CellFilled
	snap.Current.X = 99
	snap.Current.Shape[0][0] = !snap.Current.Shape[0][0]

	assert.Equal(t, 0, g.board.FilledCount())
	assert.Equal(t, 4, g.current.X)
	assert.True(t, g.Snapshot().Current.Shape.Equal(g.current.Shape))
	assert.NotEqual(t, snap.Current.Shape[0][0], g.current.Shape[0][0])
}

func TestSnapshotActiveAt(t *testing.T) {
	g := newStartedGame(t)
	setCurrent(g, pieceOf(t, "O", 4, 0))
	snap := g.Snapshot()

	assert.True(t, snap.ActiveAt(4, 0))
	assert.True(t, snap.ActiveAt(5, 1))
	assert.False(t, snap.ActiveAt(6, 0))
	assert.False(t, Snapshot{}.ActiveAt(0, 0))
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "playing", PhasePlaying.String())
	assert.Equal(t, "game_over", PhaseGameOver.String())
	assert.Equal(t, "unknown", Phase(7).String())
}
