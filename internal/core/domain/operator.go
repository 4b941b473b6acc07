package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
)

// Operator models an authenticated plant worker. Operators are provisioned
// out-of-band (see cmd/seed-operators); there is no self-registration.
type Operator struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
