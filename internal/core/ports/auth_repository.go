package ports

import (
	"context"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// AuthRepository defines the interface for operator credential persistence.
// Lookups are read-only at runtime; Create exists for out-of-band seeding.
type AuthRepository interface {
	FindByName(ctx context.Context, name string) (*domain.Operator, error)
	Create(ctx context.Context, operator *domain.Operator) (*domain.Operator, error)
}
