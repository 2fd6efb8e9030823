package ports

import "github.com/crimsoninnovative/console/internal/core/domain"

// SessionReader exposes the current session snapshot.
type SessionReader interface {
	Current() domain.Session
}

// SessionStore holds the single foreground session of the process.
type SessionStore interface {
	SessionReader
	// Login succeeds iff email and password are non-empty and role is known.
	Login(email, password string, role domain.Role) bool
	// LoginSession is Login that also returns the session it produced.
	LoginSession(email, password string, role domain.Role) (domain.Session, bool)
	Logout()
}

// TokenIssuer mints bearer tokens bound to a session.
type TokenIssuer interface {
	Issue(session domain.Session) (string, error)
}

// Navigator resolves a client-side path of one console against a session.
type Navigator interface {
	Resolve(session domain.Session, path string) domain.Decision
}
