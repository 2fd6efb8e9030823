package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/api/middleware"
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
	"github.com/crimsoninnovative/console/internal/core/service"
)

type SessionHandler struct {
	sessions   ports.SessionStore
	tokens     ports.TokenIssuer
	navigators map[domain.Console]ports.Navigator
}

func NewSessionHandler(sessions ports.SessionStore, tokens ports.TokenIssuer, navigators map[domain.Console]ports.Navigator) *SessionHandler {
	return &SessionHandler{sessions: sessions, tokens: tokens, navigators: navigators}
}

// Login starts a session for the requested role.
//
// @Summary      Log in
// @Description  Any non-empty email and password log in as the seed account of the role.
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        Idempotency-Key  header    string        false  "Replay protection key"
// @Param        body             body      loginRequest  true   "Credentials and role"
// @Success      200              {object}  loginResponse
// @Failure      401              {object}  errorResponse
// @Failure      409              {object}  errorResponse
// @Failure      422              {object}  errorResponse
// @Router       /v1/session/login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	session, ok := h.sessions.LoginSession(req.Email, req.Password, role)
	if !ok {
		metrics.LoginsTotal.WithLabelValues(string(role), "rejected").Inc()
		return domain.ErrInvalidCredentials
	}
	metrics.LoginsTotal.WithLabelValues(string(role), "success").Inc()

	token, err := h.tokens.Issue(session)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{
		Token:      token,
		Session:    session,
		Redirect:   service.DefaultRouteFor(session),
		Navigation: service.NavigationFor(session.Role),
	})
}

// Logout ends the current session. It always succeeds.
//
// @Summary      Log out
// @Tags         session
// @Produce      json
// @Success      200  {object}  sessionResponse
// @Router       /v1/session/logout [post]
func (h *SessionHandler) Logout(c echo.Context) error {
	h.sessions.Logout()
	metrics.LogoutsTotal.Inc()

	return c.JSON(http.StatusOK, sessionResponse{
		Session:  domain.AnonymousSession(),
		Redirect: domain.PathLogin,
	})
}

// Current reports the session bound to the bearer token, or the anonymous one.
//
// @Summary      Current session
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  sessionResponse
// @Router       /v1/session [get]
func (h *SessionHandler) Current(c echo.Context) error {
	s := middleware.SessionFrom(c)
	return c.JSON(http.StatusOK, sessionResponse{Session: s, Redirect: service.DefaultRouteFor(s)})
}

// Navigation returns the sidebar of the session's role.
//
// @Summary      Sidebar entries
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  navigationResponse
// @Failure      303  "redirect to /login"
// @Router       /v1/session/navigation [get]
func (h *SessionHandler) Navigation(c echo.Context) error {
	s, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, navigationResponse{Role: s.Role, Items: service.NavigationFor(s.Role)})
}

// Resolve runs the route guard for a client-side path of a console.
//
// @Summary      Resolve a console path
// @Tags         session
// @Produce      json
// @Security     BearerAuth
// @Param        console  path      string  true  "attendance or gpu"
// @Param        path     query     string  true  "Client-side path, e.g. /admin/settings"
// @Success      200      {object}  resolveResponse
// @Failure      404      {object}  errorResponse
// @Failure      422      {object}  errorResponse
// @Router       /v1/navigation/{console} [get]
func (h *SessionHandler) Resolve(c echo.Context) error {
	console, err := domain.ParseConsole(c.Param("console"))
	if err != nil {
		return err
	}
	nav, ok := h.navigators[console]
	if !ok {
		return domain.ErrInvalidConsole
	}
	path := c.QueryParam("path")
	if path == "" {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "path is required")
	}

	d := nav.Resolve(middleware.SessionFrom(c), path)
	metrics.GuardDecisionsTotal.WithLabelValues(string(console), string(d.Kind)).Inc()

	return c.JSON(http.StatusOK, resolveResponse{
		Console:  console,
		Path:     path,
		Decision: string(d.Kind),
		Redirect: d.Path,
	})
}
