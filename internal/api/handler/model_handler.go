package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gln-plastics/smartfix-api/internal/api/metrics"
	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
)

// ModelHandler handles classifier model management.
type ModelHandler struct {
	service ports.InspectionService
}

func NewModelHandler(service ports.InspectionService) *ModelHandler {
	return &ModelHandler{service: service}
}

// Upload handles PUT /v1/model: replaces the active classification model.
// On a rejected artifact the previously active model stays in effect.
//
// @Summary      Replace the classification model
// @Tags         model
// @Accept       multipart/form-data
// @Security     BearerAuth
// @Param        model  formData  file  true  "Serialized model artifact (ONNX)"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Router       /v1/model [put]
func (h *ModelHandler) Upload(c echo.Context) error {
	fh, err := c.FormFile("model")
	if err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "model file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded model")
	}
	defer f.Close()

	artifact, err := io.ReadAll(f)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded model")
	}

	if err := h.service.ReloadModel(c.Request().Context(), artifact); err != nil {
		metrics.ModelReloadsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.ModelReloadsTotal.WithLabelValues("success").Inc()
	return c.NoContent(http.StatusNoContent)
}

// Status handles GET /v1/model.
//
// @Summary      Report classifier readiness
// @Tags         model
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  modelStatusResponse
// @Failure      401  {object}  errorResponse
// @Router       /v1/model [get]
func (h *ModelHandler) Status(c echo.Context) error {
	status := h.service.ModelStatus(c.Request().Context())
	resp := modelStatusResponse{Loaded: status.Loaded}
	if !status.LoadedAt.IsZero() {
		resp.LoadedAt = status.LoadedAt.Format(domain.TimestampLayout)
	}
	return c.JSON(http.StatusOK, resp)
}
