package ports

import (
	"context"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// InspectionRepository handles the append-only inspection history.
type InspectionRepository interface {
	// Append inserts one fully-populated record as a single atomic row and
	// assigns its surrogate id. Existing rows are never mutated.
	Append(ctx context.Context, record *domain.InspectionRecord) error

	// ListAll returns every record sorted by timestamp descending
	// (most recent first, id descending on equal timestamps).
	ListAll(ctx context.Context) ([]domain.InspectionRecord, error)
}
