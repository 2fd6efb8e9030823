package config

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"

	"github.com/crimsoninnovative/console/internal/core/domain"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=dev-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	SessionTTL     time.Duration `env:"SESSION_TTL,     default=12h"`
	IdempotencyTTL time.Duration `env:"IDEMPOTENCY_TTL, default=24h"`
	AuditWorkers   int           `env:"AUDIT_WORKERS,   default=4"`

	GPU   GPUConsoleConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// GPUConsoleConfig controls the GPU console. It ships unguarded; Guard turns
// on role checks for every GPU route using Roles.
type GPUConsoleConfig struct {
	Guard           bool          `env:"GUARD_GPU_CONSOLE, default=false"`
	Roles           string        `env:"GPU_CONSOLE_ROLES, default=admin"`
	MonitorInterval time.Duration `env:"MONITOR_INTERVAL,  default=5s"`
}

// An empty URI disables the Mongo audit sink.
type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=console"`
}

// An empty Addr disables Redis idempotency claims.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// GuardRoles parses Roles. It returns nil when the console is unguarded.
func (g GPUConsoleConfig) GuardRoles() ([]domain.Role, error) {
	if !g.Guard {
		return nil, nil
	}
	var roles []domain.Role
	for _, raw := range strings.Split(g.Roles, ",") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		r, err := domain.ParseRole(raw)
		if err != nil {
			return nil, fmt.Errorf("GPU_CONSOLE_ROLES: %w", err)
		}
		roles = append(roles, r)
	}
	if len(roles) == 0 {
		return nil, fmt.Errorf("GPU_CONSOLE_ROLES: no roles given while GUARD_GPU_CONSOLE is set")
	}
	return roles, nil
}

// Load reads configuration from environment variables using go-envconfig.
func Load(log zerolog.Logger) *Config {
	cfg, err := load(context.Background(), envconfig.OsLookuper())
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return cfg
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if _, err := cfg.GPU.GuardRoles(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
