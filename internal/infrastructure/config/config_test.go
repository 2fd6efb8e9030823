package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.Port != "8080" || cfg.Env != "development" || cfg.LogLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.SessionTTL != 12*time.Hour || cfg.GPU.MonitorInterval != 5*time.Second {
		t.Fatalf("unexpected durations: %v %v", cfg.SessionTTL, cfg.GPU.MonitorInterval)
	}
	if cfg.Mongo.URI != "" || cfg.Redis.Addr != "" {
		t.Fatalf("integrations must be disabled by default")
	}
	roles, err := cfg.GPU.GuardRoles()
	if err != nil || roles != nil {
		t.Fatalf("expected unguarded GPU console, got %v %v", roles, err)
	}
}

func TestLoad_GuardedGPUConsole(t *testing.T) {
	cfg, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"GUARD_GPU_CONSOLE": "true",
		"GPU_CONSOLE_ROLES": "admin, Administrator",
		"MONGO_URI":         "mongodb://localhost:27017",
		"AUDIT_WORKERS":     "2",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	roles, err := cfg.GPU.GuardRoles()
	if err != nil {
		t.Fatalf("GuardRoles: %v", err)
	}
	if len(roles) != 2 || roles[0] != domain.RoleAdmin || roles[1] != domain.RoleAdministrator {
		t.Fatalf("unexpected roles: %v", roles)
	}
	if cfg.AuditWorkers != 2 || cfg.Mongo.Database != "console" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoad_RejectsUnknownGuardRole(t *testing.T) {
	_, err := load(context.Background(), envconfig.MapLookuper(map[string]string{
		"GUARD_GPU_CONSOLE": "true",
		"GPU_CONSOLE_ROLES": "root",
	}))
	if err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
