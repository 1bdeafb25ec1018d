package sharing

import (
	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constants
const (
	AggregateTypePartnership = "Partnership"
	AggregateTypeTransfer    = "CrossTenantTransfer"
	AggregateTypePayment     = "PartnerPayment"
)

// Event type constants
const (
	EventTypePartnershipRequested = "PartnershipRequested"
	EventTypePartnershipAccepted  = "PartnershipAccepted"
	EventTypeTransferCreated      = "TransferCreated"
	EventTypeTransferAccepted     = "TransferAccepted"
	EventTypeTransferRejected     = "TransferRejected"
	EventTypePaymentRecorded      = "PaymentRecorded"
	EventTypePaymentConfirmed     = "PaymentConfirmed"
)

// PartnershipRequestedEvent is published when a partnership is requested
type PartnershipRequestedEvent struct {
	shared.BaseDomainEvent
	PartnershipID  uuid.UUID `json:"partnership_id"`
	TargetTenantID uuid.UUID `json:"target_tenant_id"`
}

// NewPartnershipRequestedEvent creates a new PartnershipRequestedEvent
func NewPartnershipRequestedEvent(p *Partnership) *PartnershipRequestedEvent {
	return &PartnershipRequestedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnershipRequested, AggregateTypePartnership, p.ID, p.RequesterTenantID),
		PartnershipID:   p.ID,
		TargetTenantID:  p.TargetTenantID,
	}
}

// PartnershipAcceptedEvent is published when a partnership is accepted
type PartnershipAcceptedEvent struct {
	shared.BaseDomainEvent
	PartnershipID     uuid.UUID `json:"partnership_id"`
	RequesterTenantID uuid.UUID `json:"requester_tenant_id"`
}

// NewPartnershipAcceptedEvent creates a new PartnershipAcceptedEvent
func NewPartnershipAcceptedEvent(p *Partnership) *PartnershipAcceptedEvent {
	return &PartnershipAcceptedEvent{
		BaseDomainEvent:   shared.NewBaseDomainEvent(EventTypePartnershipAccepted, AggregateTypePartnership, p.ID, p.TargetTenantID),
		PartnershipID:     p.ID,
		RequesterTenantID: p.RequesterTenantID,
	}
}

// TransferCreatedEvent is published when a transfer is created
type TransferCreatedEvent struct {
	shared.BaseDomainEvent
	TransferID       uuid.UUID       `json:"transfer_id"`
	TransferNumber   string          `json:"transfer_number"`
	ReceiverTenantID uuid.UUID       `json:"receiver_tenant_id"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

// NewTransferCreatedEvent creates a new TransferCreatedEvent
func NewTransferCreatedEvent(t *CrossTenantTransfer) *TransferCreatedEvent {
	return &TransferCreatedEvent{
		BaseDomainEvent:  shared.NewBaseDomainEvent(EventTypeTransferCreated, AggregateTypeTransfer, t.ID, t.SenderTenantID),
		TransferID:       t.ID,
		TransferNumber:   t.TransferNumber,
		ReceiverTenantID: t.ReceiverTenantID,
		TotalValue:       t.TotalValue(),
	}
}

// TransferAcceptedEvent is published when a transfer is accepted
type TransferAcceptedEvent struct {
	shared.BaseDomainEvent
	TransferID     uuid.UUID `json:"transfer_id"`
	TransferNumber string    `json:"transfer_number"`
	SenderTenantID uuid.UUID `json:"sender_tenant_id"`
}

// NewTransferAcceptedEvent creates a new TransferAcceptedEvent
func NewTransferAcceptedEvent(t *CrossTenantTransfer) *TransferAcceptedEvent {
	return &TransferAcceptedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferAccepted, AggregateTypeTransfer, t.ID, t.ReceiverTenantID),
		TransferID:      t.ID,
		TransferNumber:  t.TransferNumber,
		SenderTenantID:  t.SenderTenantID,
	}
}

// TransferRejectedEvent is published when a transfer is rejected
type TransferRejectedEvent struct {
	shared.BaseDomainEvent
	TransferID     uuid.UUID `json:"transfer_id"`
	TransferNumber string    `json:"transfer_number"`
	Reason         string    `json:"reason,omitempty"`
}

// NewTransferRejectedEvent creates a new TransferRejectedEvent
func NewTransferRejectedEvent(t *CrossTenantTransfer) *TransferRejectedEvent {
	return &TransferRejectedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeTransferRejected, AggregateTypeTransfer, t.ID, t.ReceiverTenantID),
		TransferID:      t.ID,
		TransferNumber:  t.TransferNumber,
		Reason:          t.RejectReason,
	}
}

// PaymentRecordedEvent is published when a payment is recorded
type PaymentRecordedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewPaymentRecordedEvent creates a new PaymentRecordedEvent
func NewPaymentRecordedEvent(p *PartnerPayment) *PaymentRecordedEvent {
	return &PaymentRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentRecorded, AggregateTypePayment, p.ID, p.CreatedByTenantID),
		PaymentID:       p.ID,
		Amount:          p.Amount,
	}
}

// PaymentConfirmedEvent is published when a payment is confirmed
type PaymentConfirmedEvent struct {
	shared.BaseDomainEvent
	PaymentID uuid.UUID       `json:"payment_id"`
	Amount    decimal.Decimal `json:"amount"`
}

// NewPaymentConfirmedEvent creates a new PaymentConfirmedEvent
func NewPaymentConfirmedEvent(p *PartnerPayment) *PaymentConfirmedEvent {
	return &PaymentConfirmedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePaymentConfirmed, AggregateTypePayment, p.ID, p.PayerTenantID),
		PaymentID:       p.ID,
		Amount:          p.Amount,
	}
}
