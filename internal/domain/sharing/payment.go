package sharing

import (
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the status of a partner payment
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

// PaymentMethod classifies how a payment was made
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "cash"
	PaymentMethodTransfer PaymentMethod = "bank_transfer"
	PaymentMethodCard     PaymentMethod = "card"
	PaymentMethodOther    PaymentMethod = "other"
)

// PartnerPayment settles debt between two partnered tenants. Either
// party may record a payment; only the other party may confirm or
// reject it. CreatedByTenantID is the turn marker that makes
// self-confirmation structurally impossible. Only confirmed payments
// participate in debt computation.
//
// Payment rows belong to both tenants at once, so the aggregate is not
// tenant-scoped and the automatic tenant filter never applies to it.
type PartnerPayment struct {
	shared.BaseAggregateRoot
	PayerTenantID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiverTenantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CreatedByTenantID uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedByUserID   uuid.UUID       `gorm:"type:uuid;not null"`
	ConfirmedByUserID *uuid.UUID      `gorm:"type:uuid"`
	Amount            decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	Method            PaymentMethod   `gorm:"type:varchar(30);not null;default:'cash'"`
	Status            PaymentStatus   `gorm:"type:varchar(20);not null;default:'pending';index"`
	Notes             string          `gorm:"type:text"`
	RejectReason      string          `gorm:"type:text"`
	RespondedAt       *time.Time
}

// TableName returns the table name for GORM
func (PartnerPayment) TableName() string {
	return "partner_payments"
}

// NewPartnerPayment records a pending payment from payer to receiver,
// created by one of the two parties.
func NewPartnerPayment(
	payerTenantID, receiverTenantID, createdByTenantID, createdByUserID uuid.UUID,
	amount decimal.Decimal,
	method PaymentMethod,
	notes string,
) (*PartnerPayment, error) {
	if payerTenantID == receiverTenantID {
		return nil, shared.NewDomainError("SELF_PAYMENT", "Payer and receiver must be different tenants")
	}
	if createdByTenantID != payerTenantID && createdByTenantID != receiverTenantID {
		return nil, shared.NewDomainError("NOT_PARTY", "Payment creator must be the payer or the receiver")
	}
	if !amount.IsPositive() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Payment amount must be positive")
	}
	if method == "" {
		method = PaymentMethodCash
	}

	payment := &PartnerPayment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PayerTenantID:     payerTenantID,
		ReceiverTenantID:  receiverTenantID,
		CreatedByTenantID: createdByTenantID,
		CreatedByUserID:   createdByUserID,
		Amount:            amount,
		Method:            method,
		Status:            PaymentStatusPending,
		Notes:             notes,
	}

	payment.AddDomainEvent(NewPaymentRecordedEvent(payment))

	return payment, nil
}

// Involves reports whether the tenant is a party to this payment
func (p *PartnerPayment) Involves(tenantID uuid.UUID) bool {
	return p.PayerTenantID == tenantID || p.ReceiverTenantID == tenantID
}

// CounterpartOf returns the other tenant of the pair
func (p *PartnerPayment) CounterpartOf(tenantID uuid.UUID) uuid.UUID {
	if p.PayerTenantID == tenantID {
		return p.ReceiverTenantID
	}
	return p.PayerTenantID
}

// CanConfirm reports whether the tenant may confirm or reject this
// payment: it must be a party, must not be the creator, and the
// payment must still be pending.
func (p *PartnerPayment) CanConfirm(tenantID uuid.UUID) bool {
	return p.Status == PaymentStatusPending && p.Involves(tenantID) && tenantID != p.CreatedByTenantID
}

// Confirm marks the payment as confirmed and records who confirmed it.
// Only the party that did not create the payment may confirm.
func (p *PartnerPayment) Confirm(actingTenantID, actingUserID uuid.UUID) error {
	if !p.Involves(actingTenantID) {
		return shared.NewDomainError("NOT_PARTY", "Only a party to the payment can confirm it")
	}
	if p.Status != PaymentStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot confirm a payment in status %s", p.Status)
	}
	if actingTenantID == p.CreatedByTenantID {
		return shared.NewDomainError("SELF_CONFIRM", "The creator of a payment cannot confirm it")
	}

	now := time.Now()
	p.Status = PaymentStatusConfirmed
	p.ConfirmedByUserID = &actingUserID
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	p.AddDomainEvent(NewPaymentConfirmedEvent(p))

	return nil
}

// RejectPayment marks the payment as rejected with a reason. Only the
// party that did not create the payment may reject.
func (p *PartnerPayment) RejectPayment(actingTenantID uuid.UUID, reason string) error {
	if !p.Involves(actingTenantID) {
		return shared.NewDomainError("NOT_PARTY", "Only a party to the payment can reject it")
	}
	if p.Status != PaymentStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot reject a payment in status %s", p.Status)
	}
	if actingTenantID == p.CreatedByTenantID {
		return shared.NewDomainError("SELF_CONFIRM", "The creator of a payment cannot reject it")
	}

	now := time.Now()
	p.Status = PaymentStatusRejected
	p.RejectReason = reason
	p.RespondedAt = &now
	p.UpdatedAt = now
	p.IncrementVersion()

	return nil
}
