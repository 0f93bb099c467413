package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type mockRegistrar struct {
	registerFunc func(ctx context.Context, name, email, password string) error
	calls        int
}

func (m *mockRegistrar) Register(ctx context.Context, name, email, password string) error {
	m.calls++
	if m.registerFunc != nil {
		return m.registerFunc(ctx, name, email, password)
	}
	return nil
}

type mockResetter struct {
	resets int
}

func (m *mockResetter) Reset() { m.resets++ }

func TestLoginValidation(t *testing.T) {
	m := New(&mockRegistrar{}, nil)

	_, err := m.LoginWithCredentials(context.Background(), "", "secret")
	require.ErrorIs(t, err, ErrFieldsRequired)

	_, err = m.LoginWithCredentials(context.Background(), "alice@example.com", "")
	require.ErrorIs(t, err, ErrFieldsRequired)

	require.Equal(t, "LoggedOut", m.AuthState())
}

func TestLoginEstablishesSession(t *testing.T) {
	scoped := &mockResetter{}
	m := New(&mockRegistrar{}, scoped)

	s, err := m.LoginWithCredentials(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(s.ID, "session_"))
	require.Equal(t, "alice", s.Identity.DisplayName)
	require.Equal(t, "alice@example.com", s.Identity.Contact)
	require.Equal(t, "LoggedIn", m.AuthState())
	require.Equal(t, 1, scoped.resets, "session start guarantees an empty conversation log")

	current, ok := m.Current()
	require.True(t, ok)
	require.Equal(t, s.ID, current.ID)
	require.Equal(t, s.ID, m.SessionID())
}

func TestLoginWhileLoggedInRejected(t *testing.T) {
	m := New(&mockRegistrar{}, nil)

	_, err := m.LoginWithCredentials(context.Background(), "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = m.LoginWithCredentials(context.Background(), "bob@example.com", "secret")
	require.ErrorIs(t, err, ErrSessionActive)
}

func TestGuestLogin(t *testing.T) {
	m := New(&mockRegistrar{}, nil)

	s, err := m.LoginAsGuest()
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(s.ID, "guest_"))
	require.Equal(t, GuestIdentity, s.Identity)
	require.Equal(t, "LoggedIn", m.AuthState())
}

func TestRegisterValidation(t *testing.T) {
	reg := &mockRegistrar{}
	m := New(reg, nil)

	_, err := m.Register(context.Background(), "", "alice@example.com", "secret")
	require.ErrorIs(t, err, ErrFieldsRequired)
	require.Equal(t, 0, reg.calls, "local validation must precede the remote call")
}

func TestRegisterAutoLogin(t *testing.T) {
	reg := &mockRegistrar{}
	m := New(reg, nil)

	s, err := m.Register(context.Background(), "Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	require.Equal(t, 1, reg.calls)
	require.True(t, strings.HasPrefix(s.ID, "session_"))
	require.Equal(t, "alice", s.Identity.DisplayName)
	require.Equal(t, "LoggedIn", m.AuthState())
}

func TestRegisterFailureSurfacedVerbatim(t *testing.T) {
	reg := &mockRegistrar{
		registerFunc: func(ctx context.Context, name, email, password string) error {
			return &AuthError{Message: "Email already registered"}
		},
	}
	m := New(reg, nil)

	_, err := m.Register(context.Background(), "Alice", "alice@example.com", "secret")

	var authErr *AuthError
	require.ErrorAs(t, err, &authErr)
	require.Equal(t, "Email already registered", authErr.Message)
	require.Equal(t, "LoggedOut", m.AuthState())

	_, ok := m.Current()
	require.False(t, ok)
}

func TestSubmitLatchRejectsConcurrentAuth(t *testing.T) {
	entered := make(chan struct{})
	release := make(chan struct{})
	reg := &mockRegistrar{
		registerFunc: func(ctx context.Context, name, email, password string) error {
			close(entered)
			<-release
			return nil
		},
	}
	m := New(reg, nil)

	done := make(chan error, 1)
	go func() {
		_, err := m.Register(context.Background(), "Alice", "alice@example.com", "secret")
		done <- err
	}()

	select {
	case <-entered:
	case <-time.After(2 * time.Second):
		t.Fatal("registration never reached the auth service")
	}

	_, err := m.LoginAsGuest()
	require.ErrorIs(t, err, ErrAuthInFlight)
	require.Equal(t, 1, reg.calls, "the latched submit must not issue another remote call")

	close(release)
	require.NoError(t, <-done)
	require.Equal(t, "LoggedIn", m.AuthState())
}

func TestLogoutClearsEverything(t *testing.T) {
	scoped := &mockResetter{}
	m := New(&mockRegistrar{}, scoped)

	_, err := m.LoginAsGuest()
	require.NoError(t, err)
	require.Equal(t, 1, scoped.resets)

	m.Logout()

	require.Equal(t, "LoggedOut", m.AuthState())
	require.Equal(t, "", m.SessionID())
	_, ok := m.Current()
	require.False(t, ok)
	require.Equal(t, 2, scoped.resets, "logout discards the conversation log")

	// Logging out again is a no-op.
	m.Logout()
	require.Equal(t, 2, scoped.resets)
}

func TestOnChangeNotifies(t *testing.T) {
	m := New(&mockRegistrar{}, nil)

	changes := 0
	m.OnChange(func() { changes++ })

	_, err := m.LoginAsGuest()
	require.NoError(t, err)
	m.Logout()

	require.Equal(t, 2, changes)
}
