package ports

import (
	"context"
	"io"
	"time"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// SubmitInspectionInput carries one classification request from the transport
// layer to the workflow. Operator comes from the session, never the form.
type SubmitInspectionInput struct {
	Operator      string
	Mold          string
	Cavity        string
	Defect        string
	Shift         string
	Solution      string
	EquipmentType string
	ImageName     string
	ImageData     []byte
}

// ModelStatus describes the classifier's readiness.
type ModelStatus struct {
	Loaded   bool
	LoadedAt time.Time
}

// InspectionService defines the use-case operations of the inspection workflow.
type InspectionService interface {
	// Submit validates the input, classifies the image, persists the image
	// file and appends a history record. Any precondition failure aborts
	// before the first side effect.
	Submit(ctx context.Context, input SubmitInspectionInput) (*domain.InspectionRecord, error)

	// History returns the full record list, newest first.
	History(ctx context.Context) ([]domain.InspectionRecord, error)

	// ExportCSV writes the full record list as CSV with a header row matching
	// the persisted schema field order.
	ExportCSV(ctx context.Context, w io.Writer) error

	// ReloadModel replaces the active classification model.
	ReloadModel(ctx context.Context, artifact []byte) error

	ModelStatus(ctx context.Context) ModelStatus
}
