// Package session owns authentication state and session identity. The
// lifecycle is an explicit state machine: LoggedOut -> LoggingIn ->
// LoggedIn -> LoggedOut. Exactly one session is live at a time, and the
// LoggingIn state doubles as a latch that rejects duplicate submits.
package session

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/qmuntal/stateless"

	"github.com/comigor/saturday-go/internal/logger"
)

// FSM states
type FSMState stateless.State

var (
	StateLoggedOut FSMState = "LoggedOut"
	StateLoggingIn FSMState = "LoggingIn"
	StateLoggedIn  FSMState = "LoggedIn"
)

// FSM triggers
type FSMTrigger stateless.Trigger

var (
	TriggerSubmit    FSMTrigger = "Submit"
	TriggerSucceeded FSMTrigger = "Succeeded"
	TriggerFailed    FSMTrigger = "Failed"
	TriggerLogout    FSMTrigger = "Logout"
)

// Registrar is the subset of the Auth Service the manager needs; it is a
// one-method interface so tests inject fakes.
type Registrar interface {
	Register(ctx context.Context, name, email, password string) error
}

// Resetter clears session-scoped state on login and logout. The message
// exchange engine implements it.
type Resetter interface {
	Reset()
}

// Manager owns the live session and its auth state machine.
type Manager struct {
	fsm       *stateless.StateMachine
	registrar Registrar
	scoped    Resetter

	mu       sync.Mutex
	current  *Session
	onChange func()
}

// New creates a session manager. scoped may be nil when no session-scoped
// state exists (tests).
func New(registrar Registrar, scoped Resetter) *Manager {
	fsm := stateless.NewStateMachine(StateLoggedOut)
	fsm.Configure(StateLoggedOut).
		Permit(TriggerSubmit, StateLoggingIn)
	fsm.Configure(StateLoggingIn).
		Permit(TriggerSucceeded, StateLoggedIn).
		Permit(TriggerFailed, StateLoggedOut)
	fsm.Configure(StateLoggedIn).
		Permit(TriggerLogout, StateLoggedOut)

	return &Manager{
		fsm:       fsm,
		registrar: registrar,
		scoped:    scoped,
	}
}

// OnChange registers a callback invoked after every state transition, so
// an attached renderer can re-observe the controller.
func (m *Manager) OnChange(fn func()) {
	m.onChange = fn
}

// LoginWithCredentials establishes a session for the given credentials.
// Both fields must be non-empty; that is checked before anything else and
// no remote call is made for plain logins (registration is the only
// remotely verified auth operation in this design).
func (m *Manager) LoginWithCredentials(ctx context.Context, email, password string) (Session, error) {
	email = strings.TrimSpace(email)
	if email == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrFieldsRequired
	}
	if err := m.begin(); err != nil {
		return Session{}, err
	}
	return m.establish("session_"+uuid.NewString(), Identity{
		DisplayName: localPart(email),
		Contact:     email,
	}), nil
}

// LoginAsGuest establishes a session with the fixed guest identity. No
// remote call is made.
func (m *Manager) LoginAsGuest() (Session, error) {
	if err := m.begin(); err != nil {
		return Session{}, err
	}
	return m.establish("guest_"+uuid.NewString(), GuestIdentity), nil
}

// Register creates an account via the Auth Service and, on success,
// immediately logs in with the same credentials. Service-reported
// failures surface verbatim as *AuthError and leave the state LoggedOut.
func (m *Manager) Register(ctx context.Context, name, email, password string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || strings.TrimSpace(password) == "" {
		return Session{}, ErrFieldsRequired
	}
	if err := m.begin(); err != nil {
		return Session{}, err
	}

	if err := m.registrar.Register(ctx, name, email, password); err != nil {
		m.fail()
		logger.L.Warn("registration rejected", "email", email, "error", err)
		return Session{}, err
	}

	// Auto-login with the submitted credentials rather than returning an
	// unauthenticated account.
	return m.establish("session_"+uuid.NewString(), Identity{
		DisplayName: localPart(email),
		Contact:     email,
	}), nil
}

// Logout tears the session down: auth state returns to LoggedOut, the
// identity and session id are discarded and the conversation log is
// cleared. Purely local; calling it while logged out is a no-op.
func (m *Manager) Logout() {
	if err := m.fsm.Fire(TriggerLogout); err != nil {
		return
	}
	m.mu.Lock()
	m.current = nil
	m.mu.Unlock()
	if m.scoped != nil {
		m.scoped.Reset()
	}
	logger.L.Info("session ended")
	m.notify()
}

// Current returns the live session, if any.
func (m *Manager) Current() (Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return Session{}, false
	}
	return *m.current, true
}

// SessionID returns the live session id, or the empty string when logged
// out.
func (m *Manager) SessionID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.current == nil {
		return ""
	}
	return m.current.ID
}

// AuthState returns the current state machine state as a string.
func (m *Manager) AuthState() string {
	return m.fsm.MustState().(string)
}

// begin moves LoggedOut -> LoggingIn, enforcing the submit latch: a
// second submit while one is in effect is rejected locally, without a
// duplicate remote call.
func (m *Manager) begin() error {
	if err := m.fsm.Fire(TriggerSubmit); err != nil {
		if m.fsm.MustState() == stateless.State(StateLoggingIn) {
			return ErrAuthInFlight
		}
		return ErrSessionActive
	}
	return nil
}

func (m *Manager) fail() {
	if err := m.fsm.Fire(TriggerFailed); err != nil {
		logger.L.Warn("fsm fire error", "trigger", TriggerFailed, "error", err)
	}
	m.notify()
}

// establish completes the transition to LoggedIn. Session-scoped state is
// reset first, so every session starts with an empty conversation log.
func (m *Manager) establish(id string, identity Identity) Session {
	if err := m.fsm.Fire(TriggerSucceeded); err != nil {
		logger.L.Warn("fsm fire error", "trigger", TriggerSucceeded, "error", err)
	}
	if m.scoped != nil {
		m.scoped.Reset()
	}
	s := Session{ID: id, Identity: identity, StartedAt: time.Now().UTC()}
	m.mu.Lock()
	m.current = &s
	m.mu.Unlock()
	logger.L.Info("session established", "session_id", s.ID, "display_name", identity.DisplayName)
	m.notify()
	return s
}

func (m *Manager) notify() {
	if m.onChange != nil {
		m.onChange()
	}
}

// localPart derives a display name from the text preceding the @.
func localPart(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}
