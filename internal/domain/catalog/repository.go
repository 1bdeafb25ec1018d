package catalog

import (
	"context"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ProductRepository defines the persistence interface for products
type ProductRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*Product, error)
	// FindByExactName looks up an active, non-deleted product by exact
	// name. Used when resolving an incoming transfer against the
	// receiver's catalog.
	FindByExactName(ctx context.Context, tenantID uuid.UUID, name string) (*Product, error)
	FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[Product], error)
	Save(ctx context.Context, product *Product) error
	Count(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// UOMRepository defines the persistence interface for units of measure
// and product unit conversions.
type UOMRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*UnitOfMeasure, error)
	// FindBySymbol matches the symbol case-insensitively.
	FindBySymbol(ctx context.Context, tenantID uuid.UUID, symbol string) (*UnitOfMeasure, error)
	// FindFirst returns the tenant's first unit by creation time, used
	// as the fallback when no symbol matches.
	FindFirst(ctx context.Context, tenantID uuid.UUID) (*UnitOfMeasure, error)
	FindAll(ctx context.Context, tenantID uuid.UUID) ([]UnitOfMeasure, error)
	Save(ctx context.Context, uom *UnitOfMeasure) error

	FindConversion(ctx context.Context, tenantID, productID, uomID uuid.UUID) (*ProductUOMConversion, error)
	SaveConversion(ctx context.Context, conversion *ProductUOMConversion) error
}
