package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/service"
)

// Guard lets the request through only when the session holds one of roles.
// Otherwise it answers 303 See Other to the route guard's target with no body.
// Guard with no roles allows everyone; that is how the GPU console runs
// unless GUARD_GPU_CONSOLE is set.
func Guard(console domain.Console, roles ...domain.Role) echo.MiddlewareFunc {
	if len(roles) == 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error {
				metrics.GuardDecisionsTotal.WithLabelValues(string(console), string(domain.DecisionAllow)).Inc()
				return next(c)
			}
		}
	}

	required := domain.NewRoleSet(roles...)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			d := service.Authorize(SessionFrom(c), required)
			metrics.GuardDecisionsTotal.WithLabelValues(string(console), string(d.Kind)).Inc()
			if !d.Allowed() {
				return c.Redirect(http.StatusSeeOther, d.Path)
			}
			return next(c)
		}
	}
}

// Authenticated is Guard over every role.
func Authenticated(console domain.Console) echo.MiddlewareFunc {
	return Guard(console, domain.Roles()...)
}
