package game

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/arcade/internal/ui"
)

// session adapts one engine to the runner: it maps keys to engine commands,
// exposes the engine's timers and renders its snapshot.
type session interface {
	Kind() Kind
	Start()
	State() State
	Score() int
	Timers() []Timer
	// HandleKey applies a game key. Keys are ignored unless they apply in
	// the current state.
	HandleKey(ctx context.Context, ev *tcell.EventKey)
	Render(r *ui.Renderer)
	// Attributes describe the session for traces and logs.
	Attributes() []attribute.KeyValue
}

// gameOverMessage is the banner shown after a session ends.
const gameOverMessage = "GAME OVER - press Enter to play again"

func statusMessage(s State) string {
	if s == StateGameOver {
		return gameOverMessage
	}
	if s == StateIdle {
		return "Press Enter to start"
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
