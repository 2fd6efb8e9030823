package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func readiness(t *testing.T, h *HealthHandler) (int, readinessResponse) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health/ready", nil), rec)

	if err := h.Readiness(c); err != nil {
		t.Fatalf("readiness: %v", err)
	}
	var resp readinessResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return rec.Code, resp
}

func TestReadiness_AllHealthy(t *testing.T) {
	h := NewHealthHandler().
		With("mongodb", pingerFunc(func(context.Context) error { return nil })).
		With("redis", nil)

	code, resp := readiness(t, h)
	if code != http.StatusOK || resp.Status != "ok" {
		t.Fatalf("expected ok, got %d %+v", code, resp)
	}
	if resp.Dependencies["mongodb"].Status != "ok" || resp.Dependencies["redis"].Status != "disabled" {
		t.Fatalf("unexpected dependencies: %+v", resp.Dependencies)
	}
}

func TestReadiness_Degraded(t *testing.T) {
	h := NewHealthHandler().
		With("mongodb", pingerFunc(func(context.Context) error { return nil })).
		With("redis", pingerFunc(func(context.Context) error { return errors.New("connection refused") }))

	code, resp := readiness(t, h)
	if code != http.StatusServiceUnavailable || resp.Status != "degraded" {
		t.Fatalf("expected degraded, got %d %+v", code, resp)
	}
	if dep := resp.Dependencies["redis"]; dep.Status != "unhealthy" || dep.Error != "connection refused" {
		t.Fatalf("unexpected redis status: %+v", dep)
	}
}

func TestLiveness(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

	if err := NewHealthHandler().Liveness(c); err != nil {
		t.Fatalf("liveness: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
