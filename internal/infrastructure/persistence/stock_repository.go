package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormStockRepository implements StockRepository using GORM
type GormStockRepository struct {
	db *gorm.DB
}

// NewGormStockRepository creates a new GormStockRepository
func NewGormStockRepository(db *gorm.DB) *GormStockRepository {
	return &GormStockRepository{db: db}
}

// FindByProductAndWarehouse finds the stock row for a product in a warehouse
func (r *GormStockRepository) FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*inventory.Stock, error) {
	var stock inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND warehouse_id = ?", tenantID, productID, warehouseID).
		First(&stock).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &stock, nil
}

// FindByProduct finds all stock rows for a product across warehouses
func (r *GormStockRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]inventory.Stock, error) {
	var stocks []inventory.Stock
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ?", tenantID, productID).
		Find(&stocks).Error; err != nil {
		return nil, err
	}
	return stocks, nil
}

// Save creates or updates a stock record
func (r *GormStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	return r.db.WithContext(ctx).Save(stock).Error
}

// DebitConditional atomically decrements quantity with an availability guard
// in the WHERE clause. Concurrent debits race on the same row; whichever
// UPDATE matches zero rows lost, and the caller gets ErrInsufficientStock
// instead of a negative balance.
func (r *GormStockRepository) DebitConditional(ctx context.Context, tenantID, productID, warehouseID uuid.UUID, quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Debit quantity must be positive")
	}

	result := r.db.WithContext(ctx).
		Model(&inventory.Stock{}).
		Where("tenant_id = ? AND product_id = ? AND warehouse_id = ?", tenantID, productID, warehouseID).
		Where("quantity - reserved_quantity >= ?", quantity).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity - ?", quantity),
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrInsufficientStock
	}
	return nil
}

// Ensure GormStockRepository implements StockRepository
var _ inventory.StockRepository = (*GormStockRepository)(nil)
