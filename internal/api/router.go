package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/hawkins/simpletimeclock/docs"
	"github.com/hawkins/simpletimeclock/internal/api/handler"
	"github.com/hawkins/simpletimeclock/internal/api/middleware"
	"github.com/hawkins/simpletimeclock/internal/core/domain"
	"github.com/hawkins/simpletimeclock/internal/core/ports"
	"github.com/hawkins/simpletimeclock/internal/infrastructure/http/handlers"
)

// RouterConfig carries the wired dependencies of the HTTP surface.
type RouterConfig struct {
	Timeclock ports.TimeclockService
	Auth      ports.AuthService

	// AuthEnabled guards /admin with JWT + RBAC middleware. The service's
	// own role check on the report stays authoritative either way.
	AuthEnabled bool
	JWTSecret   string

	// HealthChecks follows the configured storage driver.
	HealthChecks map[string]handlers.Check

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("timeclock"))

	// --- Handlers ---
	userHandler := handler.NewUserHandler(cfg.Timeclock)
	timeclockHandler := handler.NewTimeclockHandler(cfg.Timeclock)
	reportHandler := handler.NewReportHandler(cfg.Timeclock)
	authHandler := handler.NewAuthHandler(cfg.Auth)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User and timeclock routes ---
	e.POST("/user/:userId", userHandler.Create)
	e.GET("/user/:userId", userHandler.Get)
	e.POST("/user/:userId/update", userHandler.Update)
	e.POST("/user/:userId/startShift", timeclockHandler.StartShift)
	e.POST("/user/:userId/endShift", timeclockHandler.EndShift)
	e.POST("/user/:userId/startBreak", timeclockHandler.StartBreak)
	e.POST("/user/:userId/endBreak", timeclockHandler.EndBreak)

	// --- Admin routes ---
	admin := e.Group("/admin")
	if cfg.AuthEnabled {
		admin.Use(middleware.Auth(cfg.JWTSecret))
		admin.Use(middleware.RBAC(string(domain.RoleAdministrator)))
	}
	admin.GET("/:adminUserId/userActivity", reportHandler.UserActivity)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(cfg.HealthChecks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
