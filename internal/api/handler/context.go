package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/crimsoninnovative/console/internal/api/middleware"
	"github.com/crimsoninnovative/console/internal/core/domain"
)

// ctxSession returns the authenticated session behind the request. Routes
// that call it sit behind a Guard, so an anonymous session here means the
// router is miswired.
func ctxSession(c echo.Context) (domain.Session, error) {
	s := middleware.SessionFrom(c)
	if !s.IsAuthenticated() {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	return s, nil
}
