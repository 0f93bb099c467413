package session

import "time"

// Identity describes who is using the client.
type Identity struct {
	DisplayName string `json:"display_name"`
	Contact     string `json:"contact"`
}

// Session is the local record of the logged-in period. The ID is minted
// locally at login or guest-entry time and is never acknowledged by a
// server; it is a namespaced, non-cryptographic token.
type Session struct {
	ID        string    `json:"id"`
	Identity  Identity  `json:"identity"`
	StartedAt time.Time `json:"started_at"`
}

// GuestIdentity is the fixed identity used when entering without an account.
var GuestIdentity = Identity{DisplayName: "Guest User", Contact: "guest@example.com"}
