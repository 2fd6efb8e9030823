// @title                       Console API
// @version                     1.0
// @description                 Session, route guard, attendance and GPU cluster consoles.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	_ "github.com/crimsoninnovative/console/docs"
	"github.com/crimsoninnovative/console/internal/api"
	"github.com/crimsoninnovative/console/internal/api/handler"
	"github.com/crimsoninnovative/console/internal/api/metrics"
	"github.com/crimsoninnovative/console/internal/core/ports"
	"github.com/crimsoninnovative/console/internal/core/service"
	"github.com/crimsoninnovative/console/internal/infrastructure/config"
	mongodb "github.com/crimsoninnovative/console/internal/infrastructure/db/mongo"
	redisdb "github.com/crimsoninnovative/console/internal/infrastructure/db/redis"
	"github.com/crimsoninnovative/console/internal/infrastructure/queue"
	"github.com/crimsoninnovative/console/internal/infrastructure/telemetry"
	"github.com/crimsoninnovative/console/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load(zerolog.New(os.Stderr).With().Timestamp().Logger())
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "console",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("console stopped")
	}
}

func run(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	gpuRoles, err := cfg.GPU.GuardRoles()
	if err != nil {
		return err
	}
	health := handler.NewHealthHandler()

	// --- Audit sink: Mongo when configured, the log otherwise ---
	var auditRepo ports.AuditRepository = queue.NewLogRepository(logger.Component("audit"))
	if cfg.Mongo.URI != "" {
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, AppName: "console"})
		if err != nil {
			return err
		}
		defer func() {
			dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = client.Disconnect(dctx)
		}()
		repo := mongodb.NewAuditRepository(db)
		if err := repo.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("audit indexes not created")
		}
		auditRepo = repo
		health.With("mongodb", mongodb.Pinger{Client: client})
		log.Info().Str("database", cfg.Mongo.Database).Msg("mongo audit sink connected")
	} else {
		health.With("mongodb", nil)
	}

	// --- Idempotency keys: Redis when configured ---
	var idem ports.IdempotencyStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return err
		}
		defer rdb.Close()
		idem = redisdb.NewIdempotencyStore(rdb, cfg.IdempotencyTTL)
		health.With("redis", redisdb.Pinger{Client: rdb})
		log.Info().Str("addr", cfg.Redis.Addr).Msg("redis idempotency store connected")
	} else {
		health.With("redis", nil)
	}

	dispatcher := queue.NewDispatcher(cfg.AuditWorkers, auditRepo, logger.Component("audit"))
	if err := metrics.RegisterAuditQueue(prometheus.DefaultRegisterer, dispatcher); err != nil {
		return err
	}
	// The dispatcher outlives ctx so Close can drain it after the server stops.
	dispatcher.Start(context.Background())

	sim := telemetry.NewSimulator(cfg.GPU.MonitorInterval, nil, logger.Component("telemetry"))
	go sim.Run(ctx)

	ids := service.UUIDGenerator{}
	sessions := service.NewSessionService(ids, dispatcher, logger.Component("session"))
	attendance := service.NewAttendanceService(ids, dispatcher, logger.Component("attendance"))
	cluster := service.NewClusterService(ids, dispatcher, logger.Component("gpu"))
	metrics.ObserveStats(cluster.Stats())

	e := api.NewRouter(api.Deps{
		JWTSecret:   cfg.JWTSecret,
		GPURoles:    gpuRoles,
		Sessions:    sessions,
		Tokens:      service.NewTokenService(cfg.JWTSecret, cfg.SessionTTL),
		Attendance:  attendance,
		Cluster:     cluster,
		Telemetry:   sim,
		Idempotency: idem,
		Health:      health,
		Registerer:  prometheus.DefaultRegisterer,
		Gatherer:    prometheus.DefaultGatherer,
		Log:         logger.Component("http"),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Bool("gpu_guarded", len(gpuRoles) > 0).Msg("console listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		dispatcher.Close()
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	dispatcher.Close()
	log.Info().Uint64("audit_written", dispatcher.Written()).Uint64("audit_dropped", dispatcher.Dropped()).Msg("bye")
	return nil
}
