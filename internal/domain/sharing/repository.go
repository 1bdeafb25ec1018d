package sharing

import (
	"context"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartnershipRepository defines the persistence interface for
// partnerships. Partnerships span two tenants; implementations query
// them with the tenant filter bypassed and rely on the explicit tenant
// parameters below.
type PartnershipRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Partnership, error)

	// FindActiveForPair finds the pending or accepted partnership
	// between two tenants, in either direction. Returns
	// shared.ErrNotFound when the slot is free.
	FindActiveForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*Partnership, error)

	// FindAcceptedForPair finds the accepted partnership between two
	// tenants, in either direction.
	FindAcceptedForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*Partnership, error)

	// FindForTenant finds all pending and accepted partnerships where
	// the tenant is either side.
	FindForTenant(ctx context.Context, tenantID uuid.UUID) ([]Partnership, error)

	Save(ctx context.Context, partnership *Partnership) error
}

// TransferRepository defines the persistence interface for cross-tenant
// transfers.
type TransferRepository interface {
	// FindByID loads a transfer with its items
	FindByID(ctx context.Context, id uuid.UUID) (*CrossTenantTransfer, error)

	// FindOutgoing lists transfers sent by the tenant, newest first
	FindOutgoing(ctx context.Context, senderTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[CrossTenantTransfer], error)

	// FindIncoming lists transfers addressed to the tenant, newest first
	FindIncoming(ctx context.Context, receiverTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[CrossTenantTransfer], error)

	// NextSequenceForPrefix returns one plus the highest numeric suffix
	// among transfer numbers sharing the date prefix, starting at 1.
	NextSequenceForPrefix(ctx context.Context, prefix string) (int, error)

	// SumAcceptedValue totals the item values of accepted transfers
	// from sender to receiver.
	SumAcceptedValue(ctx context.Context, senderTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error)

	// CountBetween counts transfers between two tenants in either
	// direction, optionally restricted by status.
	CountBetween(ctx context.Context, tenantA, tenantB uuid.UUID, status *TransferStatus) (int64, error)

	Save(ctx context.Context, transfer *CrossTenantTransfer) error
}

// PaymentRepository defines the persistence interface for partner
// payments.
type PaymentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PartnerPayment, error)

	// FindBetween lists payments between two tenants in either
	// direction, newest first.
	FindBetween(ctx context.Context, tenantA, tenantB uuid.UUID, filter shared.Filter) (*shared.Paginated[PartnerPayment], error)

	// SumConfirmed totals confirmed payments from payer to receiver
	SumConfirmed(ctx context.Context, payerTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error)

	Save(ctx context.Context, payment *PartnerPayment) error
}

// NotificationRepository defines the persistence interface for partner
// notifications. Notifications are tenant-scoped rows owned by their
// recipient.
type NotificationRepository interface {
	FindByID(ctx context.Context, tenantID, id uuid.UUID) (*PartnerNotification, error)
	FindForTenant(ctx context.Context, tenantID uuid.UUID, unreadOnly bool, filter shared.Filter) (*shared.Paginated[PartnerNotification], error)
	CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Save(ctx context.Context, notification *PartnerNotification) error
	// MarkAllRead marks every unread notification as read and returns
	// the number of rows affected.
	MarkAllRead(ctx context.Context, tenantID uuid.UUID) (int64, error)
}
