package partner

import (
	"context"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// WarehouseRepository defines the interface for warehouse persistence
type WarehouseRepository interface {
	// FindByID finds a warehouse by ID within a tenant
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Warehouse, error)

	// FindByCode finds a warehouse by its code within a tenant
	FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*Warehouse, error)

	// FindAll finds all warehouses for a tenant
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Warehouse, error)

	// FindDefault finds the default warehouse for a tenant
	FindDefault(ctx context.Context, tenantID uuid.UUID) (*Warehouse, error)

	// Save creates or updates a warehouse
	Save(ctx context.Context, warehouse *Warehouse) error

	// ExistsByCode checks if a warehouse with the given code exists in the tenant
	ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error)

	// CountForTenant counts warehouses for a tenant
	CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
