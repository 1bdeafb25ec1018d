package inventory

import (
	"context"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StockRepository defines the persistence interface for stock records
type StockRepository interface {
	// FindByProductAndWarehouse finds the stock row for a product in a
	// warehouse, returning shared.ErrNotFound when none exists.
	FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*Stock, error)

	// FindByProduct finds all stock rows for a product across warehouses
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]Stock, error)

	// Save creates or updates a stock record
	Save(ctx context.Context, stock *Stock) error

	// DebitConditional atomically decrements quantity with an
	// availability guard in the WHERE clause. Returns
	// shared.ErrInsufficientStock when no row qualified, so concurrent
	// debits cannot drive available stock negative.
	DebitConditional(ctx context.Context, tenantID, productID, warehouseID uuid.UUID, quantity decimal.Decimal) error
}

// StockMovementRepository defines the persistence interface for the
// stock movement ledger.
type StockMovementRepository interface {
	Save(ctx context.Context, movement *StockMovement) error
	FindByReference(ctx context.Context, tenantID uuid.UUID, referenceType ReferenceType, referenceID uuid.UUID) ([]StockMovement, error)
	FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[StockMovement], error)
}
