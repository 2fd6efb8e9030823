package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

var fixedNow = time.Date(2025, time.December, 23, 9, 0, 0, 0, time.UTC)

type memIdempotency struct {
	mu   sync.Mutex
	seen map[string]bool
	err  error
}

func (m *memIdempotency) Claim(_ context.Context, scope, key string) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	k := scope + "|" + key
	if m.seen[k] {
		return false, nil
	}
	m.seen[k] = true
	return true, nil
}

func (m *memIdempotency) Release(_ context.Context, scope, key string) error {
	if m.err != nil {
		return m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.seen, scope+"|"+key)
	return nil
}

func serveIdem(t *testing.T, mw echo.MiddlewareFunc, key string) (int, bool) {
	t.Helper()
	return serveIdemWith(t, mw, key, func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})
}

func serveIdemWith(t *testing.T, mw echo.MiddlewareFunc, key string, h echo.HandlerFunc) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/v1/gpu/nodes", nil)
	if key != "" {
		req.Header.Set(IdempotencyHeader, key)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/gpu/nodes")

	called := false
	if err := mw(func(c echo.Context) error {
		called = true
		return h(c)
	})(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	return rec.Code, called
}

func TestIdempotency_RejectsReplay(t *testing.T) {
	mw := Idempotency(&memIdempotency{}, zerolog.Nop())

	if code, called := serveIdem(t, mw, "k1"); !called || code != http.StatusCreated {
		t.Fatalf("first request: expected 201, got %d", code)
	}
	if code, called := serveIdem(t, mw, "k1"); called || code != http.StatusConflict {
		t.Fatalf("replay: expected 409, got %d", code)
	}
	if code, _ := serveIdem(t, mw, "k2"); code != http.StatusCreated {
		t.Fatalf("fresh key: expected 201, got %d", code)
	}
}

func TestIdempotency_PassThrough(t *testing.T) {
	cases := map[string]echo.MiddlewareFunc{
		"no store":      Idempotency(nil, zerolog.Nop()),
		"store failure": Idempotency(&memIdempotency{err: errors.New("redis down")}, zerolog.Nop()),
	}
	for name, mw := range cases {
		t.Run(name, func(t *testing.T) {
			for i := 0; i < 2; i++ {
				if code, called := serveIdem(t, mw, "same"); !called || code != http.StatusCreated {
					t.Fatalf("attempt %d: expected pass-through, got %d", i, code)
				}
			}
		})
	}

	mw := Idempotency(&memIdempotency{}, zerolog.Nop())
	for i := 0; i < 2; i++ {
		if _, called := serveIdem(t, mw, ""); !called {
			t.Fatalf("request without key must pass through")
		}
	}
}

func TestIdempotency_FailedRequestReleasesKey(t *testing.T) {
	store := &memIdempotency{}
	mw := Idempotency(store, zerolog.Nop())

	unprocessable := func(c echo.Context) error {
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "email is required"})
	}
	if code, _ := serveIdemWith(t, mw, "k1", unprocessable); code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d", code)
	}

	failing := func(echo.Context) error { return errors.New("hash failed") }
	if code, _ := serveIdemWith(t, mw, "k1", failing); code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", code)
	}

	if code, called := serveIdem(t, mw, "k1"); !called || code != http.StatusCreated {
		t.Fatalf("retry after failures: expected 201, got %d", code)
	}
	if code, called := serveIdem(t, mw, "k1"); called || code != http.StatusConflict {
		t.Fatalf("replay after success: expected 409, got %d", code)
	}
}
