package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/crimsoninnovative/console/internal/api/handler"
	"github.com/crimsoninnovative/console/internal/api/middleware"
	"github.com/crimsoninnovative/console/internal/core/domain"
	"github.com/crimsoninnovative/console/internal/core/ports"
	"github.com/crimsoninnovative/console/internal/core/service"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	JWTSecret string
	// GPURoles guards the GPU console. Empty leaves it open.
	GPURoles []domain.Role

	Sessions    ports.SessionStore
	Tokens      ports.TokenIssuer
	Attendance  ports.AttendanceStore
	Cluster     ports.ClusterStore
	Telemetry   handler.TelemetrySource
	Idempotency ports.IdempotencyStore
	Health      *handler.HealthHandler

	// Registerer and Gatherer back the request metrics and /metrics. Both
	// default to a fresh registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	Log zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	if d.Registerer == nil || d.Gatherer == nil {
		reg := prometheus.NewRegistry()
		d.Registerer, d.Gatherer = reg, reg
	}
	if d.Health == nil {
		d.Health = handler.NewHealthHandler()
	}

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(d.Log))
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "console",
		Registerer: d.Registerer,
	}))
	e.Use(middleware.Auth(d.JWTSecret, d.Sessions))

	// --- Probes, metrics, docs (no auth) ---
	e.GET("/health", d.Health.Liveness)
	e.GET("/health/ready", d.Health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: d.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	idem := middleware.Idempotency(d.Idempotency, d.Log)

	// --- Session ---
	navigators := map[domain.Console]ports.Navigator{
		domain.ConsoleAttendance: service.NewAttendanceNavigator(),
		domain.ConsoleGPU:        service.NewGPUNavigator(d.GPURoles...),
	}
	sessionHandler := handler.NewSessionHandler(d.Sessions, d.Tokens, navigators)

	v1 := e.Group("/v1")
	v1.POST("/session/login", sessionHandler.Login, idem)
	v1.POST("/session/logout", sessionHandler.Logout)
	v1.GET("/session", sessionHandler.Current)
	v1.GET("/session/navigation", sessionHandler.Navigation, middleware.Authenticated(domain.ConsoleAttendance))
	v1.GET("/navigation/:console", sessionHandler.Resolve)

	// --- Attendance console ---
	attendance := handler.NewAttendanceHandler(d.Attendance)
	admin := middleware.Guard(domain.ConsoleAttendance, domain.RoleAdmin)
	administrator := middleware.Guard(domain.ConsoleAttendance, domain.RoleAdministrator)
	employee := middleware.Guard(domain.ConsoleAttendance, domain.RoleUser)
	staff := middleware.Guard(domain.ConsoleAttendance, domain.RoleAdministrator, domain.RoleUser)

	att := v1.Group("/attendance")
	att.GET("/records", attendance.ListRecords, staff)
	att.POST("/records", attendance.AddRecord, administrator, idem)
	att.GET("/summary", attendance.Summary, staff)
	att.GET("/profile", attendance.Profile, employee)
	att.GET("/cameras", attendance.Cameras, admin)
	att.PATCH("/cameras/:id", attendance.UpdateCamera, admin)
	att.GET("/enrollments", attendance.Enrollments, admin)
	att.POST("/enrollments", attendance.Enroll, admin, idem)

	// --- GPU console ---
	gpu := handler.NewGPUHandler(d.Cluster, d.Telemetry)
	g := v1.Group("/gpu", middleware.Guard(domain.ConsoleGPU, d.GPURoles...))
	g.GET("/users", gpu.Users)
	g.POST("/users", gpu.AddUser, idem)
	g.PATCH("/users/:id", gpu.UpdateUser)
	g.DELETE("/users/:id", gpu.DeleteUser)
	g.GET("/nodes", gpu.Nodes)
	g.POST("/nodes", gpu.AddNode, idem)
	g.PATCH("/nodes/:id", gpu.UpdateNode)
	g.DELETE("/nodes/:id", gpu.DeleteNode)
	g.GET("/model", gpu.Model)
	g.PATCH("/model", gpu.UpdateModel)
	g.GET("/stats", gpu.Stats)
	g.GET("/monitoring", gpu.Monitoring)

	return e
}

// requestLogger writes one zerolog line per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			if v.Error != nil {
				ev = log.Warn().Err(v.Error)
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("request_id", v.RequestID).
				Msg("request")
			return nil
		},
	})
}
