package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormProductMappingRepository implements ProductMappingRepository using GORM
type GormProductMappingRepository struct {
	db *gorm.DB
}

// NewGormProductMappingRepository creates a new GormProductMappingRepository
func NewGormProductMappingRepository(db *gorm.DB) *GormProductMappingRepository {
	return &GormProductMappingRepository{db: db}
}

// FindMapping finds the receiver-side product a sender product maps to
func (r *GormProductMappingRepository) FindMapping(ctx context.Context, senderTenantID, receiverTenantID, senderProductID uuid.UUID) (*sharing.PartnerProductMapping, error) {
	var mapping sharing.PartnerProductMapping
	if err := r.db.WithContext(ctx).
		Where("sender_tenant_id = ? AND receiver_tenant_id = ? AND sender_product_id = ?",
			senderTenantID, receiverTenantID, senderProductID).
		First(&mapping).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &mapping, nil
}

// Save upserts a mapping; a re-accepted product overwrites its target
func (r *GormProductMappingRepository) Save(ctx context.Context, mapping *sharing.PartnerProductMapping) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "sender_tenant_id"}, {Name: "receiver_tenant_id"}, {Name: "sender_product_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{"receiver_product_id", "updated_at"}),
		}).
		Create(mapping).Error
}

// Ensure GormProductMappingRepository implements ProductMappingRepository
var _ sharing.ProductMappingRepository = (*GormProductMappingRepository)(nil)
