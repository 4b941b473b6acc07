package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gln-plastics/smartfix-api/internal/api/metrics"
	"github.com/gln-plastics/smartfix-api/internal/core/domain"
	"github.com/gln-plastics/smartfix-api/internal/core/ports"
)

// InspectionHandler handles HTTP requests for the inspection workflow.
type InspectionHandler struct {
	service ports.InspectionService
}

func NewInspectionHandler(service ports.InspectionService) *InspectionHandler {
	return &InspectionHandler{service: service}
}

// Submit handles POST /v1/inspections: multipart image + metadata in, one
// classified and persisted record out.
//
// @Summary      Submit a part image for classification and logging
// @Tags         inspections
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        image           formData  file    true  "Part photo (JPEG or PNG)"
// @Param        mold            formData  string  true  "Mold code"
// @Param        cavity          formData  string  true  "Cavity identifier"
// @Param        defect          formData  string  true  "Observed defect"
// @Param        shift           formData  string  true  "Shift label (A, B or C)"
// @Param        solution        formData  string  true  "Applied solution"
// @Param        equipment_type  formData  string  true  "Equipment type (Machine, Mold or Peripheral)"
// @Success      201  {object}  inspectionResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      422  {object}  errorResponse
// @Failure      503  {object}  errorResponse
// @Router       /v1/inspections [post]
func (h *InspectionHandler) Submit(c echo.Context) error {
	operator, err := ctxOperator(c)
	if err != nil {
		return err
	}

	var req submitInspectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		metrics.InspectionErrorsTotal.WithLabelValues("validation").Inc()
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	imageName, imageData, err := readImageFile(c)
	if err != nil {
		metrics.InspectionErrorsTotal.WithLabelValues("validation").Inc()
		return err
	}

	start := time.Now()
	record, err := h.service.Submit(c.Request().Context(), toSubmitInput(req, operator, imageName, imageData))
	if err != nil {
		metrics.InspectionErrorsTotal.WithLabelValues(failureReason(err)).Inc()
		return err
	}

	metrics.ClassificationDuration.Observe(time.Since(start).Seconds())
	metrics.InspectionsTotal.WithLabelValues(string(record.Result)).Inc()

	return c.JSON(http.StatusCreated, toInspectionResponse(record))
}

// History handles GET /v1/inspections.
//
// @Summary      List all inspection records, newest first
// @Tags         inspections
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  historyResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/inspections [get]
func (h *InspectionHandler) History(c echo.Context) error {
	records, err := h.service.History(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toHistoryResponse(records))
}

// Export handles GET /v1/inspections/export — the full history as a CSV
// download.
//
// @Summary      Export the inspection history as CSV
// @Tags         inspections
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200  {string}  string  "CSV payload"
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/inspections/export [get]
func (h *InspectionHandler) Export(c echo.Context) error {
	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/csv")
	res.Header().Set(echo.HeaderContentDisposition, `attachment; filename="smartfix_history.csv"`)

	// No explicit WriteHeader: the response must stay uncommitted until the
	// first body write, or a storage failure could no longer surface as 500.
	if err := h.service.ExportCSV(c.Request().Context(), res); err != nil {
		return err
	}
	metrics.ExportsTotal.Inc()
	return nil
}

// readImageFile pulls the uploaded image out of the multipart form.
func readImageFile(c echo.Context) (string, []byte, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusUnprocessableEntity, "image is required")
	}

	f, err := fh.Open()
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded image")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded image")
	}
	return fh.Filename, data, nil
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return "validation"
	case errors.Is(err, domain.ErrImageDecode):
		return "image_decode"
	case errors.Is(err, domain.ErrNoModelLoaded):
		return "no_model"
	case errors.Is(err, domain.ErrModelLoad), errors.Is(err, domain.ErrModelOutput):
		return "model"
	default:
		return "storage"
	}
}
