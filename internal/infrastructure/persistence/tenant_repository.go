package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormTenantRepository implements TenantRepository using GORM
type GormTenantRepository struct {
	db *gorm.DB
}

// NewGormTenantRepository creates a new GormTenantRepository
func NewGormTenantRepository(db *gorm.DB) *GormTenantRepository {
	return &GormTenantRepository{db: db}
}

// FindByID finds a tenant by its ID
func (r *GormTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindBySlug finds a tenant by its unique slug
func (r *GormTenantRepository) FindBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// FindActiveByID finds a tenant by ID, treating deactivated tenants as missing
func (r *GormTenantRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	var tenant identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ?", id, true).
		First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &tenant, nil
}

// SearchActive finds active tenants whose name or slug contains the query,
// excluding the caller's own tenant. Results are capped by limit.
func (r *GormTenantRepository) SearchActive(ctx context.Context, query string, excludingID uuid.UUID, limit int) ([]identity.Tenant, error) {
	if limit <= 0 {
		limit = 20
	}

	pattern := "%" + strings.TrimSpace(query) + "%"
	var tenants []identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id <> ?", excludingID).
		Where("name ILIKE ? OR slug ILIKE ?", pattern, pattern).
		Order("name ASC").
		Limit(limit).
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindByIDs finds multiple tenants by their IDs
func (r *GormTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Tenant, error) {
	if len(ids) == 0 {
		return []identity.Tenant{}, nil
	}

	var tenants []identity.Tenant
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// FindAll finds all tenants matching the filter
func (r *GormTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, error) {
	var tenants []identity.Tenant
	query := r.db.WithContext(ctx).Model(&identity.Tenant{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", pattern, pattern)
	}
	if filter.Page > 0 && filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	if err := query.Order("created_at DESC").Find(&tenants).Error; err != nil {
		return nil, err
	}
	return tenants, nil
}

// Save creates or updates a tenant
func (r *GormTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	return r.db.WithContext(ctx).Save(tenant).Error
}

// ExistsBySlug checks if a tenant with the given slug exists
func (r *GormTenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&identity.Tenant{}).
		Where("slug = ?", strings.ToLower(strings.TrimSpace(slug))).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Count counts tenants matching the filter
func (r *GormTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&identity.Tenant{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR slug ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormTenantRepository implements TenantRepository
var _ identity.TenantRepository = (*GormTenantRepository)(nil)
