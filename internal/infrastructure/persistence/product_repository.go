package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by ID within a tenant
func (r *GormProductRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindByExactName looks up an active, non-deleted product by exact name
func (r *GormProductRepository) FindByExactName(ctx context.Context, tenantID uuid.UUID, name string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ? AND is_active = ? AND is_deleted = ?",
			tenantID, strings.TrimSpace(name), true, false).
		Order("created_at ASC").
		First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &product, nil
}

// FindAll finds products for a tenant matching the filter
func (r *GormProductRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	base := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("tenant_id = ? AND is_deleted = ?", tenantID, false)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR article ILIKE ? OR barcode ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	page, pageSize := normalizePage(filter)
	var products []catalog.Product
	if err := base.
		Order("name ASC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(products, total, page, pageSize)
	return &result, nil
}

// Save creates or updates a product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// Count counts non-deleted products for a tenant
func (r *GormProductRepository) Count(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("tenant_id = ? AND is_deleted = ?", tenantID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// normalizePage clamps pagination values to sane defaults
func normalizePage(filter shared.Filter) (page, pageSize int) {
	page = filter.Page
	if page < 1 {
		page = 1
	}
	pageSize = filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
