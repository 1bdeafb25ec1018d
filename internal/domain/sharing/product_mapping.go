package sharing

import (
	"context"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartnerProductMapping links a sender's product to the receiver's
// product it lands on when a transfer is accepted. Once recorded, later
// transfers of the same product resolve directly to the mapped product
// instead of matching by name.
type PartnerProductMapping struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	SenderTenantID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mapping_pair_product,priority:1"`
	ReceiverTenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mapping_pair_product,priority:2"`
	SenderProductID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_mapping_pair_product,priority:3"`
	ReceiverProductID uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt         time.Time `gorm:"not null"`
	UpdatedAt         time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PartnerProductMapping) TableName() string {
	return "partner_product_mappings"
}

// NewPartnerProductMapping records the correspondence established by an
// accepted transfer item.
func NewPartnerProductMapping(senderTenantID, receiverTenantID, senderProductID, receiverProductID uuid.UUID) (*PartnerProductMapping, error) {
	if senderTenantID == uuid.Nil || receiverTenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Mapping requires both tenants")
	}
	if senderProductID == uuid.Nil || receiverProductID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Mapping requires both products")
	}

	now := time.Now()
	return &PartnerProductMapping{
		ID:                uuid.New(),
		SenderTenantID:    senderTenantID,
		ReceiverTenantID:  receiverTenantID,
		SenderProductID:   senderProductID,
		ReceiverProductID: receiverProductID,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// ProductMappingRepository defines the persistence interface for
// partner product mappings.
type ProductMappingRepository interface {
	// FindMapping finds the receiver-side product a sender product maps
	// to, returning shared.ErrNotFound when none was recorded.
	FindMapping(ctx context.Context, senderTenantID, receiverTenantID, senderProductID uuid.UUID) (*PartnerProductMapping, error)

	Save(ctx context.Context, mapping *PartnerProductMapping) error
}
