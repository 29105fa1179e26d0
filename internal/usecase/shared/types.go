package shared

import (
	"shuttlebook/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the already-authenticated caller forwarded by the HTTP layer.
type Actor struct {
	UserID uuid.UUID
	Name   string
	Email  string
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role == user.RoleAdmin
}
