package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormStockMovementRepository implements StockMovementRepository using GORM.
// Movement rows are append-only; there is no update or delete path.
type GormStockMovementRepository struct {
	db *gorm.DB
}

// NewGormStockMovementRepository creates a new GormStockMovementRepository
func NewGormStockMovementRepository(db *gorm.DB) *GormStockMovementRepository {
	return &GormStockMovementRepository{db: db}
}

// Save appends a movement to the ledger
func (r *GormStockMovementRepository) Save(ctx context.Context, movement *inventory.StockMovement) error {
	return r.db.WithContext(ctx).Create(movement).Error
}

// FindByReference finds movements produced by a source document
func (r *GormStockMovementRepository) FindByReference(ctx context.Context, tenantID uuid.UUID, referenceType inventory.ReferenceType, referenceID uuid.UUID) ([]inventory.StockMovement, error) {
	var movements []inventory.StockMovement
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND reference_type = ? AND reference_id = ?", tenantID, referenceType, referenceID).
		Order("created_at ASC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindByProduct lists movements for a product, newest first
func (r *GormStockMovementRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[inventory.StockMovement], error) {
	base := r.db.WithContext(ctx).
		Model(&inventory.StockMovement{}).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	var movements []inventory.StockMovement
	if err := base.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&movements).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(movements, total, page, pageSize)
	return &result, nil
}

// Ensure GormStockMovementRepository implements StockMovementRepository
var _ inventory.StockMovementRepository = (*GormStockMovementRepository)(nil)
