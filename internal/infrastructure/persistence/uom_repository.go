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

// GormUOMRepository implements UOMRepository using GORM
type GormUOMRepository struct {
	db *gorm.DB
}

// NewGormUOMRepository creates a new GormUOMRepository
func NewGormUOMRepository(db *gorm.DB) *GormUOMRepository {
	return &GormUOMRepository{db: db}
}

// FindByID finds a unit of measure by ID within a tenant
func (r *GormUOMRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.UnitOfMeasure, error) {
	var uom catalog.UnitOfMeasure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&uom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &uom, nil
}

// FindBySymbol matches the unit symbol case-insensitively within a tenant
func (r *GormUOMRepository) FindBySymbol(ctx context.Context, tenantID uuid.UUID, symbol string) (*catalog.UnitOfMeasure, error) {
	var uom catalog.UnitOfMeasure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND LOWER(symbol) = LOWER(?)", tenantID, strings.TrimSpace(symbol)).
		Order("created_at ASC").
		First(&uom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &uom, nil
}

// FindFirst returns the tenant's oldest unit of measure
func (r *GormUOMRepository) FindFirst(ctx context.Context, tenantID uuid.UUID) (*catalog.UnitOfMeasure, error) {
	var uom catalog.UnitOfMeasure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		First(&uom).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &uom, nil
}

// FindAll finds all units of measure for a tenant
func (r *GormUOMRepository) FindAll(ctx context.Context, tenantID uuid.UUID) ([]catalog.UnitOfMeasure, error) {
	var uoms []catalog.UnitOfMeasure
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at ASC").
		Find(&uoms).Error; err != nil {
		return nil, err
	}
	return uoms, nil
}

// Save creates or updates a unit of measure
func (r *GormUOMRepository) Save(ctx context.Context, uom *catalog.UnitOfMeasure) error {
	return r.db.WithContext(ctx).Save(uom).Error
}

// FindConversion finds the conversion factor for a product and unit
func (r *GormUOMRepository) FindConversion(ctx context.Context, tenantID, productID, uomID uuid.UUID) (*catalog.ProductUOMConversion, error) {
	var conversion catalog.ProductUOMConversion
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND product_id = ? AND uom_id = ?", tenantID, productID, uomID).
		First(&conversion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &conversion, nil
}

// SaveConversion creates or updates a product unit conversion
func (r *GormUOMRepository) SaveConversion(ctx context.Context, conversion *catalog.ProductUOMConversion) error {
	return r.db.WithContext(ctx).Save(conversion).Error
}

// Ensure GormUOMRepository implements UOMRepository
var _ catalog.UOMRepository = (*GormUOMRepository)(nil)
