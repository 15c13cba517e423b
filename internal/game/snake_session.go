package game

import (
	"context"
	"math/rand"
	"strconv"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcade/internal/logger"
	"github.com/samdwyer/arcade/internal/snake"
	"github.com/samdwyer/arcade/internal/ui"
)

const (
	snakeStepInterval = 150 * time.Millisecond
	snakeBombInterval = 5 * time.Second
)

// snakeSession drives a snake.Game. The walls/bombs toggles are pending
// options: a new engine is built from them on every start.
type snakeSession struct {
	rng     *rand.Rand
	pending snake.Config
	game    *snake.Game
}

func newSnakeSession(cfg Config, rng *rand.Rand) (*snakeSession, error) {
	pending := snake.DefaultConfig()
	pending.Walls = cfg.Walls
	pending.Bombs = cfg.Bombs

	g, err := snake.New(pending, rng)
	if err != nil {
		return nil, err
	}
	return &snakeSession{rng: rng, pending: pending, game: g}, nil
}

func (s *snakeSession) Kind() Kind { return KindSnake }

func (s *snakeSession) Start() {
	g, err := snake.New(s.pending, s.rng)
	if err != nil {
		// pending only differs from the validated config by its toggles
		logger.Error("snake config rejected", "error", err)
		return
	}
	s.game = g
	s.game.Start()
}

func (s *snakeSession) State() State {
	switch s.game.Phase() {
	case snake.PhasePlaying:
		return StatePlaying
	case snake.PhaseGameOver:
		return StateGameOver
	default:
		return StateIdle
	}
}

func (s *snakeSession) Score() int { return s.game.Score() }

func (s *snakeSession) Timers() []Timer {
	timers := []Timer{{Name: "snake.step", Interval: snakeStepInterval, Fire: s.step}}
	if s.game.Config().Bombs {
		timers = append(timers, Timer{Name: "snake.bomb", Interval: snakeBombInterval, Fire: s.addBomb})
	}
	return timers
}

func (s *snakeSession) step(ctx context.Context) {
	if s.game.Step() == snake.OutcomeAte {
		logger.Debug("snake ate", "score", s.game.Score(), "length", s.game.Len())
	}
}

func (s *snakeSession) addBomb(ctx context.Context) {
	if s.game.AddBomb() {
		logger.Debug("bomb placed", "bombs", len(s.game.Snapshot().Bombs))
	}
}

func (s *snakeSession) HandleKey(ctx context.Context, ev *tcell.EventKey) {
	if s.game.Playing() {
		switch ev.Key() {
		case tcell.KeyUp:
			s.game.SetDirection(snake.Up)
		case tcell.KeyDown:
			s.game.SetDirection(snake.Down)
		case tcell.KeyLeft:
			s.game.SetDirection(snake.Left)
		case tcell.KeyRight:
			s.game.SetDirection(snake.Right)
		}
		return
	}

	// Options are locked while playing.
	if ev.Key() != tcell.KeyRune {
		return
	}
	switch ev.Rune() {
	case 'w', 'W':
		s.pending.Walls = !s.pending.Walls
	case 'b', 'B':
		s.pending.Bombs = !s.pending.Bombs
	}
}

func (s *snakeSession) Render(r *ui.Renderer) {
	snap := s.game.Snapshot()
	st := s.State()

	info := []string{
		"Length: " + strconv.Itoa(len(snap.Body)),
		"Walls: " + onOff(s.pending.Walls),
		"Bombs: " + onOff(s.pending.Bombs),
	}
	if snap.BombsOn {
		info = append(info, "Bombs on board: "+strconv.Itoa(len(snap.Bombs)))
	}

	msg := statusMessage(st)
	if st == StateGameOver && snap.Cause != snake.CauseNone {
		msg = "GAME OVER (" + string(snap.Cause) + ") - Enter to restart"
	}

	r.RenderSnake(snap, ui.Status{
		Title:   "SNAKE",
		Score:   snap.Score,
		Phase:   st.String(),
		Info:    info,
		Message: msg,
		Help: []string{
			"Arrows  steer",
			"Enter   start / restart",
			"w / b   toggle walls / bombs",
			"q       quit",
		},
	})
}

func (s *snakeSession) Attributes() []attribute.KeyValue {
	cfg := s.game.Config()
	return []attribute.KeyValue{
		attribute.Int("snake.length", s.game.Len()),
		attribute.Bool("snake.walls", cfg.Walls),
		attribute.Bool("snake.bombs", cfg.Bombs),
		attribute.String("snake.cause", string(s.game.Cause())),
	}
}
