package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// FindByID finds a user by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*User, error)

	// FindByUsername finds a user by username within a tenant
	FindByUsername(ctx context.Context, tenantID uuid.UUID, username string) (*User, error)

	// Save creates or updates a user
	Save(ctx context.Context, user *User) error

	// CountForTenant counts users belonging to a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
