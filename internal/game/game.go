package game

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcade/internal/gamedata"
	"github.com/samdwyer/arcade/internal/logger"
	"github.com/samdwyer/arcade/internal/telemetry"
	"github.com/samdwyer/arcade/internal/ui"
)

// Game holds the screen, the active session and its timers.
type Game struct {
	cfg       Config
	screen    *ui.Screen
	renderer  *ui.Renderer
	session   session
	sessionID string
	timers    *timerSet
	log       *slog.Logger
	running   bool
}

// New creates a new game instance on the terminal.
func New(cfg Config) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}

	g, err := newGame(cfg, screen)
	if err != nil {
		screen.Close()
		return nil, err
	}
	return g, nil
}

// newGame builds a game on an existing screen.
func newGame(cfg Config, screen *ui.Screen) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	palette, err := gamedata.LoadPalette()
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}

	var s session
	switch cfg.Kind {
	case KindSnake:
		s, err = newSnakeSession(cfg, rng)
	case KindTetris:
		registry, lerr := gamedata.LoadPieceRegistry()
		if lerr != nil {
			return nil, fmt.Errorf("load pieces: %w", lerr)
		}
		s, err = newTetrisSession(rng, registry)
	}
	if err != nil {
		return nil, fmt.Errorf("create %s session: %w", cfg.Kind, err)
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen, palette),
		session:  s,
		log:      logger.With("game", string(cfg.Kind), "seed", seed),
		running:  true,
	}, nil
}

// Run executes the main loop until the player quits or ctx is cancelled.
// Terminal events and timer fires are handled one at a time on this goroutine.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.run")
	span.SetAttributes(attribute.String("game.kind", string(g.cfg.Kind)))
	defer span.End()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	go g.pumpEvents(events, done)

	g.log.Info("game started")

	for g.running {
		g.session.Render(g.renderer)

		select {
		case <-ctx.Done():
			g.running = false
		case ev := <-events:
			g.handleEvent(ctx, ev)
		case i := <-g.timers.C():
			g.timers.Timer(i).Fire(ctx)
			g.syncTimers(ctx)
		}
	}

	g.timers.Stop()
	g.timers = nil
	close(done)
	g.screen.Close()

	g.log.Info("game stopped", "score", g.session.Score())
	return nil
}

// pumpEvents forwards terminal events until the screen closes or done is closed.
func (g *Game) pumpEvents(events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := g.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handleEvent processes a single input event.
func (g *Game) handleEvent(ctx context.Context, ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		g.handleKeyEvent(ctx, ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ctx context.Context, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		g.running = false
		return
	case tcell.KeyEnter:
		g.startSession(ctx)
		return
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			g.running = false
			return
		case 's', 'S':
			g.startSession(ctx)
			return
		}
	}

	g.session.HandleKey(ctx, ev)
	g.syncTimers(ctx)
}

// startSession (re)starts the engine under a new session id.
func (g *Game) startSession(ctx context.Context) {
	g.timers.Stop()
	g.timers = nil

	g.sessionID = uuid.NewString()
	g.session.Start()

	_, span := telemetry.Tracer("game").Start(ctx, "session.start")
	span.SetAttributes(g.attributes()...)
	span.End()

	g.log.Info("session started", "session", g.sessionID)
	g.syncTimers(ctx)
}

// syncTimers runs the session's timers while it is playing and stops them
// once it is not. Reaching game over is recorded here.
func (g *Game) syncTimers(ctx context.Context) {
	playing := g.session.State() == StatePlaying

	switch {
	case playing && g.timers == nil:
		g.timers = startTimers(g.session.Timers())
	case !playing && g.timers != nil:
		g.timers.Stop()
		g.timers = nil
		if g.session.State() == StateGameOver {
			g.endSession(ctx)
		}
	}
}

func (g *Game) endSession(ctx context.Context) {
	_, span := telemetry.Tracer("game").Start(ctx, "session.over")
	span.SetAttributes(g.attributes()...)
	span.End()

	g.log.Info("session over", "session", g.sessionID, "score", g.session.Score())
}

func (g *Game) attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("session.id", g.sessionID),
		attribute.String("game.kind", string(g.session.Kind())),
		attribute.Int("game.score", g.session.Score()),
		attribute.String("game.state", g.session.State().String()),
	}
	return append(attrs, g.session.Attributes()...)
}

// State returns the state of the current session.
func (g *Game) State() State {
	return g.session.State()
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.timers.Stop()
	g.timers = nil
	if g.screen != nil {
		g.screen.Close()
	}
}
