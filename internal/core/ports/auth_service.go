package ports

import (
	"context"

	"github.com/gln-plastics/smartfix-api/internal/core/domain"
)

// AuthService is the session gate: Login moves the caller from anonymous to
// authenticated, Logout unconditionally back. A failed login is a valid deny
// outcome and may be retried without limit.
type AuthService interface {
	Login(ctx context.Context, name, password string) (string, *domain.Operator, error)
	// Logout revokes the session identified by token id (jti claim).
	Logout(ctx context.Context, tokenID string) error
}
