package sharing

import (
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// NotificationType classifies a partner notification
type NotificationType string

const (
	NotificationPartnershipRequested NotificationType = "partnership_requested"
	NotificationPartnershipAccepted  NotificationType = "partnership_accepted"
	NotificationPartnershipRejected  NotificationType = "partnership_rejected"
	NotificationTransferIncoming     NotificationType = "transfer_incoming"
	NotificationTransferEdited       NotificationType = "transfer_edited"
	NotificationTransferConfirmed    NotificationType = "transfer_confirmed"
	NotificationTransferAccepted     NotificationType = "transfer_accepted"
	NotificationTransferRejected     NotificationType = "transfer_rejected"
	NotificationTransferCancelled    NotificationType = "transfer_cancelled"
	NotificationPaymentRecorded      NotificationType = "payment_recorded"
	NotificationPaymentConfirmed     NotificationType = "payment_confirmed"
	NotificationPaymentRejected      NotificationType = "payment_rejected"
)

// ReferenceKind names the entity a notification points at
type ReferenceKind string

const (
	ReferencePartnership ReferenceKind = "partnership"
	ReferenceTransfer    ReferenceKind = "transfer"
	ReferencePayment     ReferenceKind = "payment"
)

// PartnerNotification informs one tenant about a counterparty action.
// Notifications are informational only; creating one must never fail a
// business transaction.
type PartnerNotification struct {
	shared.TenantAggregateRoot
	Type          NotificationType `gorm:"type:varchar(40);not null;index"`
	FromTenantID  uuid.UUID        `gorm:"type:uuid;not null"`
	ReferenceKind ReferenceKind    `gorm:"type:varchar(30);not null"`
	ReferenceID   uuid.UUID        `gorm:"type:uuid;not null;index"`
	Message       string           `gorm:"type:text"`
	IsRead        bool             `gorm:"not null;default:false;index"`
	ReadAt        *time.Time
}

// TableName returns the table name for GORM
func (PartnerNotification) TableName() string {
	return "partner_notifications"
}

// NewPartnerNotification creates an unread notification owned by the
// recipient tenant.
func NewPartnerNotification(
	recipientTenantID, fromTenantID uuid.UUID,
	notificationType NotificationType,
	referenceKind ReferenceKind,
	referenceID uuid.UUID,
	message string,
) (*PartnerNotification, error) {
	if recipientTenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Notification recipient is required")
	}

	return &PartnerNotification{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(recipientTenantID),
		Type:                notificationType,
		FromTenantID:        fromTenantID,
		ReferenceKind:       referenceKind,
		ReferenceID:         referenceID,
		Message:             message,
	}, nil
}

// MarkRead marks the notification as read. Idempotent.
func (n *PartnerNotification) MarkRead() {
	if n.IsRead {
		return
	}
	now := time.Now()
	n.IsRead = true
	n.ReadAt = &now
	n.UpdatedAt = now
	n.IncrementVersion()
}
