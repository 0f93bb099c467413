// Package handler exposes the controller to an external renderer over
// JSON/HTTP and WebSocket. Handlers forward user intents to the session
// manager and exchange engine and let the renderer re-observe state; no
// business logic lives here.
package handler

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/comigor/saturday-go/internal/conversation"
	"github.com/comigor/saturday-go/internal/exchange"
	"github.com/comigor/saturday-go/internal/metrics"
	"github.com/comigor/saturday-go/internal/presence"
	"github.com/comigor/saturday-go/internal/session"
)

// Handler carries the controller components the routes operate on.
type Handler struct {
	sessions *session.Manager
	engine   *exchange.Engine
	typing   *presence.Indicator
	rec      metrics.Recorder

	hub       *hub
	sanitizer *bluemonday.Policy
}

// New wires a handler over the controller. It subscribes the push hub to
// both state owners so stream clients see every change.
func New(sessions *session.Manager, engine *exchange.Engine, typing *presence.Indicator, rec metrics.Recorder) *Handler {
	h := &Handler{
		sessions:  sessions,
		engine:    engine,
		typing:    typing,
		rec:       rec,
		hub:       newHub(),
		sanitizer: bluemonday.StrictPolicy(),
	}
	sessions.OnChange(h.hub.Notify)
	engine.OnChange(h.hub.Notify)
	return h
}

// stateSnapshot is what the renderer observes: session state, the
// conversation log and the presence signal, in one consistent view.
type stateSnapshot struct {
	AuthState string                 `json:"auth_state"`
	Session   *session.Session       `json:"session,omitempty"`
	Messages  []conversation.Message `json:"messages"`
	Typing    bool                   `json:"typing"`
}

func (h *Handler) snapshot() stateSnapshot {
	snap := stateSnapshot{
		AuthState: h.sessions.AuthState(),
		Messages:  h.engine.Messages(),
		Typing:    h.typing.Asserted(),
	}
	if s, ok := h.sessions.Current(); ok {
		snap.Session = &s
	}
	return snap
}
