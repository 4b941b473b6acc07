package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	echoswagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/gln-plastics/smartfix-api/docs"
	"github.com/gln-plastics/smartfix-api/internal/api/handler"
	"github.com/gln-plastics/smartfix-api/internal/api/middleware"
	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
	"github.com/gln-plastics/smartfix-api/internal/core/service"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/db/sqlite"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/storage"
	"github.com/gln-plastics/smartfix-api/pkg/logger"
)

// RouterConfig carries the collaborators the router wires together.
type RouterConfig struct {
	DB         *gorm.DB
	Classifier ports.Classifier
	Images     *storage.DiskImageStore
	JWTSecret  string
	TokenTTL   time.Duration
}

// NewRouter builds the Echo instance with all routes registered. It also
// returns the inspection service so the caller can drive the startup model
// load through the same workflow the handlers use.
func NewRouter(cfg RouterConfig) (*echo.Echo, *service.InspectionService) {
	log := logger.Get()

	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.BodyLimit("16M"))
	e.Use(echoprometheus.NewMiddleware("smartfix"))

	// --- Dependencies ---
	sessions := service.NewSessionRegistry()
	authRepo := sqlite.NewAuthRepository(cfg.DB)
	inspectionRepo := sqlite.NewInspectionRepository(cfg.DB)

	authService := service.NewAuthService(authRepo, sessions, cfg.JWTSecret, cfg.TokenTTL)
	inspectionService := service.NewInspectionService(inspectionRepo, cfg.Classifier, cfg.Images, log)

	authHandler := handler.NewAuthHandler(authService)
	inspectionHandler := handler.NewInspectionHandler(inspectionService)
	modelHandler := handler.NewModelHandler(inspectionService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, sessions)

	// --- Auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authMiddleware)

	// --- Inspection workflow (authenticated) ---
	v1 := e.Group("/v1", authMiddleware)
	v1.POST("/inspections", inspectionHandler.Submit)
	v1.GET("/inspections", inspectionHandler.History)
	v1.GET("/inspections/export", inspectionHandler.Export)
	v1.GET("/model", modelHandler.Status)
	v1.PUT("/model", modelHandler.Upload, middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(cfg.DB, cfg.Images, cfg.Classifier)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, inspectionService
}
