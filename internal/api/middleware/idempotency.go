package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/core/ports"
)

const IdempotencyHeader = "Idempotency-Key"

// Idempotency rejects a repeated Idempotency-Key on the same route with 409.
// The key stays claimed only when the handler answers 2xx; a failed request
// releases it so a corrected retry can reuse the key. Requests without the
// header pass through. If the store is unavailable the request is served anyway.
func Idempotency(store ports.IdempotencyStore, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			key := c.Request().Header.Get(IdempotencyHeader)
			if store == nil || key == "" {
				return next(c)
			}

			scope := c.Request().Method + " " + c.Path()
			claimed, err := store.Claim(c.Request().Context(), scope, key)
			switch {
			case err != nil:
				metrics.IdempotencyChecksTotal.WithLabelValues("error").Inc()
				log.Warn().Err(err).Str("scope", scope).Msg("idempotency check failed, serving request")
				return next(c)
			case !claimed:
				metrics.IdempotencyChecksTotal.WithLabelValues("replay").Inc()
				return c.JSON(http.StatusConflict, map[string]string{"error": "duplicate request"})
			}
			metrics.IdempotencyChecksTotal.WithLabelValues("claimed").Inc()

			err = next(c)
			if err == nil && succeeded(c.Response().Status) {
				return nil
			}
			if rerr := store.Release(c.Request().Context(), scope, key); rerr != nil {
				log.Warn().Err(rerr).Str("scope", scope).Msg("idempotency release failed")
			} else {
				metrics.IdempotencyChecksTotal.WithLabelValues("released").Inc()
			}
			return err
		}
	}
}

func succeeded(status int) bool {
	return status >= http.StatusOK && status < http.StatusMultipleChoices
}
