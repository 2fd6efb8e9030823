package middleware

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

// Context keys set by Auth.
const (
	SessionKey = "session"
	RoleKey    = "role"
	EmailKey   = "email"
	SessionID  = "sid"
)

// Auth resolves the bearer token to the current session and stores it under
// SessionKey. It never rejects: a missing, invalid or expired token, or one
// minted for a session that has since been replaced, leaves the request
// anonymous and Guard decides what to do with it.
func Auth(jwtSecret string, sessions ports.SessionReader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(SessionKey, resolveSession(c, jwtSecret, sessions))
			return next(c)
		}
	}
}

func resolveSession(c echo.Context, jwtSecret string, sessions ports.SessionReader) domain.Session {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return domain.AnonymousSession()
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return domain.AnonymousSession()
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return domain.AnonymousSession()
	}

	sid, _ := claims["sid"].(string)
	current := sessions.Current()
	if sid == "" || !current.IsAuthenticated() || current.ID != sid {
		return domain.AnonymousSession()
	}

	c.Set(SessionID, sid)
	c.Set(RoleKey, string(current.Role))
	c.Set(EmailKey, current.User.Email)
	return current
}

// SessionFrom returns the session Auth stored, or the anonymous session.
func SessionFrom(c echo.Context) domain.Session {
	s, ok := c.Get(SessionKey).(domain.Session)
	if !ok {
		return domain.AnonymousSession()
	}
	return s
}
