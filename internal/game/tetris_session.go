package game

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcade/internal/gamedata"
	"github.com/samdwyer/arcade/internal/logger"
	"github.com/samdwyer/arcade/internal/telemetry"
	"github.com/samdwyer/arcade/internal/tetris"
	"github.com/samdwyer/arcade/internal/ui"
)

const tetrisDropInterval = time.Second

// tetrisSession drives a tetris.Game.
type tetrisSession struct {
	game *tetris.Game
}

func newTetrisSession(rng *rand.Rand, registry *gamedata.PieceRegistry) (*tetrisSession, error) {
	g, err := tetris.New(tetris.DefaultConfig(), rng, registry)
	if err != nil {
		return nil, err
	}
	return &tetrisSession{game: g}, nil
}

func (s *tetrisSession) Kind() Kind { return KindTetris }

func (s *tetrisSession) Start() { s.game.Start() }

func (s *tetrisSession) State() State {
	switch s.game.Phase() {
	case tetris.PhasePlaying:
		return StatePlaying
	case tetris.PhaseGameOver:
		return StateGameOver
	default:
		return StateIdle
	}
}

func (s *tetrisSession) Score() int { return s.game.Score() }

func (s *tetrisSession) Timers() []Timer {
	return []Timer{{Name: "tetris.drop", Interval: tetrisDropInterval, Fire: s.drop}}
}

func (s *tetrisSession) drop(ctx context.Context) {
	s.record(ctx, s.game.Tick())
}

// record traces locks that cleared rows.
func (s *tetrisSession) record(ctx context.Context, res tetris.TickResult) {
	if res.Outcome != tetris.OutcomeLocked || res.Cleared == 0 {
		return
	}

	_, span := telemetry.Tracer("tetris").Start(ctx, "tetris.lock")
	span.SetAttributes(
		attribute.Int("tetris.cleared", res.Cleared),
		attribute.Int("tetris.score", s.game.Score()),
		attribute.Int("tetris.lines", s.game.Lines()),
	)
	span.End()

	logger.Debug("lines cleared", "cleared", res.Cleared, "score", s.game.Score())
}

func (s *tetrisSession) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	if !s.game.Playing() {
		return
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		s.game.Move(-1)
	case tcell.KeyRight:
		s.game.Move(1)
	case tcell.KeyUp:
		s.game.Rotate()
	case tcell.KeyDown:
		s.record(ctx, s.game.SoftDrop())
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			s.record(ctx, s.game.HardDrop())
		}
	}
}

func (s *tetrisSession) Render(r *ui.Renderer) {
	snap := s.game.Snapshot()
	st := s.State()

	r.RenderTetris(snap, ui.Status{
		Title:   "TETRIS",
		Score:   snap.Score,
		Phase:   st.String(),
		Info:    []string{"Lines: " + strconv.Itoa(snap.Lines)},
		Message: statusMessage(st),
		Help: []string{
			"Left/Right  move",
			"Up          rotate",
			"Down        drop one row",
			"Space       hard drop",
			"Enter       start / restart",
			"q           quit",
		},
	})
}

func (s *tetrisSession) Attributes() []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("tetris.lines", s.game.Lines()),
	}
}
