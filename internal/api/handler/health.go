package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/gln-plastics/smartfix-api/internal/core/ports"
	"github.com/gln-plastics/smartfix-api/internal/infrastructure/db/sqlite"
)

// HealthHandler handles GET /health — liveness probe.
// Returns 200 immediately; confirms the process is alive.
type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// ImageDirChecker reports whether the image directory accepts writes.
type ImageDirChecker interface {
	Writable() error
}

// ReadinessHandler handles GET /health/ready — readiness probe.
// Checks the database, the image directory, and reports model state before
// declaring the service ready. A missing model degrades but does not fail
// readiness: the service can still authenticate and serve history.
type ReadinessHandler struct {
	db         *gorm.DB
	images     ImageDirChecker
	classifier ports.Classifier
}

func NewReadinessHandler(db *gorm.DB, images ImageDirChecker, classifier ports.Classifier) *ReadinessHandler {
	return &ReadinessHandler{db: db, images: images, classifier: classifier}
}

type dependencyStatus struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type readinessResponse struct {
	Status       string                      `json:"status"`
	Dependencies map[string]dependencyStatus `json:"dependencies"`
}

func (h *ReadinessHandler) Readiness(c echo.Context) error {
	deps := make(map[string]dependencyStatus)
	healthy := true

	if err := sqlite.Ping(h.db); err != nil {
		deps["database"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["database"] = dependencyStatus{Status: "ok"}
	}

	if err := h.images.Writable(); err != nil {
		deps["image_dir"] = dependencyStatus{Status: "unhealthy", Error: err.Error()}
		healthy = false
	} else {
		deps["image_dir"] = dependencyStatus{Status: "ok"}
	}

	if h.classifier.Ready() {
		deps["model"] = dependencyStatus{Status: "ok"}
	} else {
		deps["model"] = dependencyStatus{Status: "not_loaded"}
	}

	status := "ok"
	httpStatus := http.StatusOK
	if !healthy {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	return c.JSON(httpStatus, readinessResponse{
		Status:       status,
		Dependencies: deps,
	})
}
