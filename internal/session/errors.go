package session

import "errors"

// Local validation failures, raised before any remote call is issued.
var (
	ErrFieldsRequired = errors.New("please fill in all fields")
	ErrAuthInFlight   = errors.New("authentication already in progress")
	ErrSessionActive  = errors.New("a session is already active")
)

// AuthError carries a failure reported by the Auth Service. The message is
// surfaced to the renderer verbatim.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}
