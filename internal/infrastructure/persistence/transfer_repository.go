package persistence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormTransferRepository implements TransferRepository using GORM.
// Transfers span two tenants and are stored without a tenant_id column;
// visibility is enforced by the explicit sender/receiver predicates below.
type GormTransferRepository struct {
	db *gorm.DB
}

// NewGormTransferRepository creates a new GormTransferRepository
func NewGormTransferRepository(db *gorm.DB) *GormTransferRepository {
	return &GormTransferRepository{db: db}
}

// FindByID loads a transfer with its items
func (r *GormTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.CrossTenantTransfer, error) {
	var transfer sharing.CrossTenantTransfer
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&transfer, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &transfer, nil
}

// FindOutgoing lists transfers sent by the tenant, newest first
func (r *GormTransferRepository) FindOutgoing(ctx context.Context, senderTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.CrossTenantTransfer], error) {
	return r.findPaginated(ctx, filter, "sender_tenant_id = ?", senderTenantID)
}

// FindIncoming lists transfers addressed to the tenant, newest first
func (r *GormTransferRepository) FindIncoming(ctx context.Context, receiverTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.CrossTenantTransfer], error) {
	return r.findPaginated(ctx, filter, "receiver_tenant_id = ?", receiverTenantID)
}

func (r *GormTransferRepository) findPaginated(ctx context.Context, filter shared.Filter, cond string, tenantID uuid.UUID) (*shared.Paginated[sharing.CrossTenantTransfer], error) {
	base := r.db.WithContext(ctx).
		Model(&sharing.CrossTenantTransfer{}).
		Where(cond, tenantID)

	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}
	if filter.Search != "" {
		base = base.Where("transfer_number ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	sortField := ValidateSortField(filter.OrderBy, TransferSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	page, pageSize := normalizePage(filter)
	var transfers []sharing.CrossTenantTransfer
	if err := base.
		Preload("Items").
		Order(sortField + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&transfers).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(transfers, total, page, pageSize)
	return &result, nil
}

// NextSequenceForPrefix returns one plus the highest numeric suffix among
// transfer numbers sharing the date prefix. The suffix is compared
// numerically, so the sequence keeps counting past 999 even though the
// padding stops there.
func (r *GormTransferRepository) NextSequenceForPrefix(ctx context.Context, prefix string) (int, error) {
	var maxSeq sql.NullInt64
	if err := r.db.WithContext(ctx).
		Model(&sharing.CrossTenantTransfer{}).
		Select("MAX(CAST(SPLIT_PART(transfer_number, '-', 3) AS INTEGER))").
		Where("transfer_number LIKE ?", prefix+"-%").
		Scan(&maxSeq).Error; err != nil {
		return 0, err
	}
	if !maxSeq.Valid {
		return 1, nil
	}
	return int(maxSeq.Int64) + 1, nil
}

// SumAcceptedValue totals the item values of accepted transfers from
// sender to receiver
func (r *GormTransferRepository) SumAcceptedValue(ctx context.Context, senderTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&sharing.CrossTenantTransferItem{}).
		Select("COALESCE(SUM(cross_tenant_transfer_items.total), 0)").
		Joins("JOIN cross_tenant_transfers ON cross_tenant_transfers.id = cross_tenant_transfer_items.transfer_id").
		Where("cross_tenant_transfers.sender_tenant_id = ?", senderTenantID).
		Where("cross_tenant_transfers.receiver_tenant_id = ?", receiverTenantID).
		Where("cross_tenant_transfers.status = ?", sharing.TransferStatusAccepted).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// CountBetween counts transfers between two tenants in either direction,
// optionally restricted by status
func (r *GormTransferRepository) CountBetween(ctx context.Context, tenantA, tenantB uuid.UUID, status *sharing.TransferStatus) (int64, error) {
	query := r.db.WithContext(ctx).
		Model(&sharing.CrossTenantTransfer{}).
		Where("(sender_tenant_id = ? AND receiver_tenant_id = ?) OR (sender_tenant_id = ? AND receiver_tenant_id = ?)",
			tenantA, tenantB, tenantB, tenantA)
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a transfer together with its items
func (r *GormTransferRepository) Save(ctx context.Context, transfer *sharing.CrossTenantTransfer) error {
	return r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(transfer).Error
}

// Ensure GormTransferRepository implements TransferRepository
var _ sharing.TransferRepository = (*GormTransferRepository)(nil)
