// Package exchange owns the send/receive protocol against the remote
// chat service and the in-flight latch that admits one outstanding
// request at a time.
package exchange

import (
	"context"
	"strings"
	"sync"

	"github.com/comigor/saturday-go/internal/conversation"
	"github.com/comigor/saturday-go/internal/emotion"
	"github.com/comigor/saturday-go/internal/logger"
)

// FallbackText is appended as the assistant reply whenever the chat
// service cannot be reached or answers unusably. The failure is handled
// here; it never reaches the renderer as an error.
const FallbackText = "Sorry, I'm having trouble connecting. Please try again."

// Reply is a successful chat service response.
type Reply struct {
	Text    string
	Emotion emotion.Label
}

// Client is the subset of the chat service the engine uses; it is a
// one-method interface so tests inject fakes.
type Client interface {
	Send(ctx context.Context, message, sessionID string) (Reply, error)
}

// SessionSource supplies the active session identity carried on every
// chat request.
type SessionSource interface {
	SessionID() string
}

// Recorder counts how exchanges settle. Optional; a nil recorder is a
// no-op.
type Recorder interface {
	RecordChatReply()
	RecordChatFallback()
}

// Engine owns the conversation log and the in-flight latch.
type Engine struct {
	log      *conversation.Log
	client   Client
	sessions SessionSource

	mu       sync.Mutex
	inFlight bool

	rec      Recorder
	onChange func()
}

// New creates an engine around the given log and chat client. sessions
// may be nil at construction time and bound later with SetSessions; the
// session manager and the engine reference each other, so one side has
// to be wired second.
func New(log *conversation.Log, client Client, sessions SessionSource) *Engine {
	return &Engine{log: log, client: client, sessions: sessions}
}

// SetSessions binds the session identity source.
func (e *Engine) SetSessions(sessions SessionSource) {
	e.sessions = sessions
}

// OnChange registers a callback invoked after every observable change to
// the log or the latch.
func (e *Engine) OnChange(fn func()) {
	e.onChange = fn
}

// SetRecorder attaches a settlement recorder.
func (e *Engine) SetRecorder(rec Recorder) {
	e.rec = rec
}

// Send runs one exchange with the chat service. Blank text (after
// trimming) or an already in-flight send is a no-op, reported by the
// false return; both guards are admission control, not errors.
//
// Once accepted, the user message is appended synchronously before any
// network activity, the latch is held for the duration of the remote
// call, and exactly one assistant message is appended on settlement:
// the service reply on success, the fixed fallback on any failure.
func (e *Engine) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}

	e.mu.Lock()
	if e.inFlight {
		e.mu.Unlock()
		return false
	}
	e.inFlight = true
	e.log.AppendUser(text)
	e.mu.Unlock()
	e.notify()

	sessionID := ""
	if e.sessions != nil {
		sessionID = e.sessions.SessionID()
	}

	reply, err := e.client.Send(ctx, text, sessionID)
	if err != nil {
		logger.L.Warn("chat service unavailable, using fallback reply", "error", err)
		if e.rec != nil {
			e.rec.RecordChatFallback()
		}
		e.settle(FallbackText, emotion.Neutral)
		return true
	}
	if e.rec != nil {
		e.rec.RecordChatReply()
	}
	e.settle(reply.Text, reply.Emotion)
	return true
}

// settle appends the assistant message and releases the latch.
func (e *Engine) settle(text string, label emotion.Label) {
	e.mu.Lock()
	e.log.AppendAssistant(text, label)
	e.inFlight = false
	e.mu.Unlock()
	e.notify()
}

// InFlight reports whether a chat request is outstanding. This is the
// sole signal consumed by the presence indicator.
func (e *Engine) InFlight() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.inFlight
}

// Messages returns a copy of the conversation log.
func (e *Engine) Messages() []conversation.Message {
	return e.log.Messages()
}

// Reset clears the conversation log and releases the latch. Session
// start and logout call this so a fresh session always observes an
// empty log and no in-flight request.
func (e *Engine) Reset() {
	e.mu.Lock()
	e.inFlight = false
	e.mu.Unlock()
	e.log.Clear()
	e.notify()
}

func (e *Engine) notify() {
	if e.onChange != nil {
		e.onChange()
	}
}
