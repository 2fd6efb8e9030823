package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

// TokenService mints HS256 bearer tokens for a session. The token carries the
// session id so a token minted before a re-login no longer authorizes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 12 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

func (s *TokenService) Issue(session domain.Session) (string, error) {
	if !session.IsAuthenticated() {
		return "", domain.ErrInvalidCredentials
	}
	claims := jwt.MapClaims{
		"sid":   session.ID,
		"email": session.User.Email,
		"role":  string(session.Role),
		"iat":   session.StartedAt.Unix(),
		"exp":   time.Now().Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}
