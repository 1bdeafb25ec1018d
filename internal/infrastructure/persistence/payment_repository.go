package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormPaymentRepository implements PaymentRepository using GORM.
// Payments are pair rows without a tenant_id column; both parties read
// the same record.
type GormPaymentRepository struct {
	db *gorm.DB
}

// NewGormPaymentRepository creates a new GormPaymentRepository
func NewGormPaymentRepository(db *gorm.DB) *GormPaymentRepository {
	return &GormPaymentRepository{db: db}
}

// FindByID finds a payment by its ID
func (r *GormPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.PartnerPayment, error) {
	var payment sharing.PartnerPayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindBetween lists payments between two tenants in either direction,
// newest first
func (r *GormPaymentRepository) FindBetween(ctx context.Context, tenantA, tenantB uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.PartnerPayment], error) {
	base := r.db.WithContext(ctx).
		Model(&sharing.PartnerPayment{}).
		Where("(payer_tenant_id = ? AND receiver_tenant_id = ?) OR (payer_tenant_id = ? AND receiver_tenant_id = ?)",
			tenantA, tenantB, tenantB, tenantA)

	if status, ok := filter.Filters["status"]; ok {
		base = base.Where("status = ?", status)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	sortField := ValidateSortField(filter.OrderBy, PaymentSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	page, pageSize := normalizePage(filter)
	var payments []sharing.PartnerPayment
	if err := base.
		Order(sortField + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&payments).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(payments, total, page, pageSize)
	return &result, nil
}

// SumConfirmed totals confirmed payments from payer to receiver
func (r *GormPaymentRepository) SumConfirmed(ctx context.Context, payerTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.Decimal
	if err := r.db.WithContext(ctx).
		Model(&sharing.PartnerPayment{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("payer_tenant_id = ? AND receiver_tenant_id = ? AND status = ?",
			payerTenantID, receiverTenantID, sharing.PaymentStatusConfirmed).
		Scan(&total).Error; err != nil {
		return decimal.Zero, err
	}
	return total, nil
}

// Save creates or updates a payment
func (r *GormPaymentRepository) Save(ctx context.Context, payment *sharing.PartnerPayment) error {
	return r.db.WithContext(ctx).Save(payment).Error
}

// Ensure GormPaymentRepository implements PaymentRepository
var _ sharing.PaymentRepository = (*GormPaymentRepository)(nil)
