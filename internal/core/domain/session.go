package domain

import "time"

// Session is the single foreground session of a console process.
//
// IsAuthenticated holds iff Authenticated is set and both User and Role are present.
// Use AnonymousSession and NewSession rather than building the struct by hand.
type Session struct {
	ID            string    `json:"id,omitempty"`
	Authenticated bool      `json:"is_authenticated"`
	User          *Employee `json:"user"`
	Role          Role      `json:"role,omitempty"`
	StartedAt     time.Time `json:"started_at,omitempty"`
}

// AnonymousSession is the empty, unauthenticated state.
func AnonymousSession() Session {
	return Session{}
}

// NewSession builds an authenticated session for user acting as role.
func NewSession(id string, user Employee, role Role, at time.Time) Session {
	return Session{
		ID:            id,
		Authenticated: true,
		User:          &user,
		Role:          role,
		StartedAt:     at,
	}
}

func (s Session) IsAuthenticated() bool {
	return s.Authenticated && s.User != nil && s.Role != ""
}

// Clone returns a copy that shares no memory with s.
func (s Session) Clone() Session {
	if s.User != nil {
		u := *s.User
		s.User = &u
	}
	return s
}
