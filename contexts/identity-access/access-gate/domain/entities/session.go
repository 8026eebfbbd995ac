package entities

import "time"

// Session binds a bearer token to a user account. Sessions are created at
// login and terminated at logout; they are never deleted. This module only
// reads them.
type Session struct {
	Token        string      `json:"token"`
	User         UserAccount `json:"user"`
	IssuedAt     time.Time   `json:"issued_at"`
	TerminatedAt *time.Time  `json:"terminated_at,omitempty"`
}

// Live reports whether the session has not been terminated. IssuedAt plays
// no part in liveness.
func (s Session) Live() bool {
	return s.TerminatedAt == nil
}
