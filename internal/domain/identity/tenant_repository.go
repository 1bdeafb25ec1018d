package identity

import (
	"context"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// TenantRepository defines the interface for tenant persistence.
// Tenants are NOT tenant-scoped rows themselves; lookups here run
// outside the automatic tenant filter.
type TenantRepository interface {
	// FindByID finds a tenant by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// FindBySlug finds a tenant by its unique slug
	FindBySlug(ctx context.Context, slug string) (*Tenant, error)

	// FindActiveByID finds a tenant by ID, returning shared.ErrNotFound
	// for inactive tenants as well as missing ones
	FindActiveByID(ctx context.Context, id uuid.UUID) (*Tenant, error)

	// SearchActive finds active tenants whose name or slug contains the
	// query (case-insensitive), excluding the given tenant. Used by
	// partner search; results are limited, never paginated freely.
	SearchActive(ctx context.Context, query string, excludingID uuid.UUID, limit int) ([]Tenant, error)

	// FindByIDs finds multiple tenants by their IDs
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]Tenant, error)

	// FindAll finds all tenants matching the filter
	FindAll(ctx context.Context, filter shared.Filter) ([]Tenant, error)

	// Save creates or updates a tenant
	Save(ctx context.Context, tenant *Tenant) error

	// ExistsBySlug checks if a tenant with the given slug exists
	ExistsBySlug(ctx context.Context, slug string) (bool, error)

	// Count counts tenants matching the filter
	Count(ctx context.Context, filter shared.Filter) (int64, error)
}
