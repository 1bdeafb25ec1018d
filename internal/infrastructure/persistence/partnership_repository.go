package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormPartnershipRepository implements PartnershipRepository using GORM.
// The partnerships table carries no tenant_id column; rows belong to a
// pair of tenants and the automatic tenant filter leaves them alone.
type GormPartnershipRepository struct {
	db *gorm.DB
}

// NewGormPartnershipRepository creates a new GormPartnershipRepository
func NewGormPartnershipRepository(db *gorm.DB) *GormPartnershipRepository {
	return &GormPartnershipRepository{db: db}
}

// FindByID finds a partnership by its ID
func (r *GormPartnershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.Partnership, error) {
	var partnership sharing.Partnership
	if err := r.db.WithContext(ctx).First(&partnership, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &partnership, nil
}

// FindActiveForPair finds the pending or accepted partnership between two
// tenants, in either direction
func (r *GormPartnershipRepository) FindActiveForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*sharing.Partnership, error) {
	return r.findForPair(ctx, tenantA, tenantB,
		[]sharing.PartnershipStatus{sharing.PartnershipStatusPending, sharing.PartnershipStatusAccepted})
}

// FindAcceptedForPair finds the accepted partnership between two tenants,
// in either direction
func (r *GormPartnershipRepository) FindAcceptedForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*sharing.Partnership, error) {
	return r.findForPair(ctx, tenantA, tenantB,
		[]sharing.PartnershipStatus{sharing.PartnershipStatusAccepted})
}

func (r *GormPartnershipRepository) findForPair(ctx context.Context, tenantA, tenantB uuid.UUID, statuses []sharing.PartnershipStatus) (*sharing.Partnership, error) {
	var partnership sharing.Partnership
	if err := r.db.WithContext(ctx).
		Where("(requester_tenant_id = ? AND target_tenant_id = ?) OR (requester_tenant_id = ? AND target_tenant_id = ?)",
			tenantA, tenantB, tenantB, tenantA).
		Where("status IN ?", statuses).
		Order("created_at DESC").
		First(&partnership).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &partnership, nil
}

// FindForTenant finds all pending and accepted partnerships where the
// tenant is either side
func (r *GormPartnershipRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID) ([]sharing.Partnership, error) {
	var partnerships []sharing.Partnership
	if err := r.db.WithContext(ctx).
		Where("requester_tenant_id = ? OR target_tenant_id = ?", tenantID, tenantID).
		Where("status IN ?", []sharing.PartnershipStatus{
			sharing.PartnershipStatusPending, sharing.PartnershipStatusAccepted,
		}).
		Order("created_at DESC").
		Find(&partnerships).Error; err != nil {
		return nil, err
	}
	return partnerships, nil
}

// Save creates or updates a partnership
func (r *GormPartnershipRepository) Save(ctx context.Context, partnership *sharing.Partnership) error {
	return r.db.WithContext(ctx).Save(partnership).Error
}

// Ensure GormPartnershipRepository implements PartnershipRepository
var _ sharing.PartnershipRepository = (*GormPartnershipRepository)(nil)
