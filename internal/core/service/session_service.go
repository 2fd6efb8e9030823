package service

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

// SessionService is the in-memory session store of a console process. There is
// no credential check: any non-empty email and password log in as the seed
// employee of the requested role.
type SessionService struct {
	mu      sync.RWMutex
	current domain.Session

	seeds map[domain.Role]domain.Employee
	ids   IDGenerator
	now   func() time.Time
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewSessionService(ids IDGenerator, audit ports.AuditRecorder, log zerolog.Logger) *SessionService {
	if ids == nil {
		ids = UUIDGenerator{}
	}
	if audit == nil {
		audit = NopAuditRecorder{}
	}
	return &SessionService{
		current: domain.AnonymousSession(),
		seeds:   seedEmployees(),
		ids:     ids,
		now:     time.Now,
		audit:   audit,
		log:     log,
	}
}

func (s *SessionService) Login(email, password string, role domain.Role) bool {
	_, ok := s.LoginSession(email, password, role)
	return ok
}

// LoginSession authenticates and returns the new session. On failure the
// current session is left untouched and the anonymous session is returned.
func (s *SessionService) LoginSession(email, password string, role domain.Role) (domain.Session, bool) {
	if email == "" || password == "" {
		s.log.Debug().Str("role", string(role)).Msg("login rejected: empty credentials")
		return domain.AnonymousSession(), false
	}
	user, ok := s.seeds[role]
	if !ok {
		s.log.Debug().Str("role", string(role)).Msg("login rejected: unknown role")
		return domain.AnonymousSession(), false
	}

	now := s.now().UTC()
	session := domain.NewSession(s.ids.NewID(), user, role, now)

	s.mu.Lock()
	replaced := s.current.IsAuthenticated()
	s.current = session
	s.mu.Unlock()

	s.log.Info().
		Str("session_id", session.ID).
		Str("role", string(role)).
		Str("email", email).
		Bool("replaced", replaced).
		Msg("session started")
	s.audit.Record(domain.AuditEvent{
		Console: domain.ConsoleAttendance,
		Action:  "session.login",
		Subject: session.ID,
		Actor:   email,
		Role:    role,
		Applied: true,
		At:      now,
	})
	return session.Clone(), true
}

// Logout resets the session to anonymous. It always succeeds.
func (s *SessionService) Logout() {
	s.mu.Lock()
	prev := s.current
	s.current = domain.AnonymousSession()
	s.mu.Unlock()

	if !prev.IsAuthenticated() {
		return
	}
	s.log.Info().Str("session_id", prev.ID).Str("role", string(prev.Role)).Msg("session ended")
	s.audit.Record(domain.AuditEvent{
		Console: domain.ConsoleAttendance,
		Action:  "session.logout",
		Subject: prev.ID,
		Actor:   prev.User.Email,
		Role:    prev.Role,
		Applied: true,
		At:      s.now().UTC(),
	})
}

func (s *SessionService) Current() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Clone()
}

// NopAuditRecorder discards events.
type NopAuditRecorder struct{}

func (NopAuditRecorder) Record(domain.AuditEvent) {}
