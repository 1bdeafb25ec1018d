package sharing

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// PaymentService records and settles payments between partners. A
// payment is declared by one side and only counts toward debt once the
// other side confirms it. Every state change commits together with the
// notification describing it.
type PaymentService struct {
	paymentRepo     sharing.PaymentRepository
	partnershipRepo sharing.PartnershipRepository
	tenantRepo      identity.TenantRepository
	txScope         TransactionScope
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(
	paymentRepo sharing.PaymentRepository,
	partnershipRepo sharing.PartnershipRepository,
	tenantRepo identity.TenantRepository,
	txScope TransactionScope,
) *PaymentService {
	return &PaymentService{
		paymentRepo:     paymentRepo,
		partnershipRepo: partnershipRepo,
		tenantRepo:      tenantRepo,
		txScope:         txScope,
	}
}

// Record declares a payment toward a partner. Direction "paid" means
// the caller paid the partner, "received" means the partner paid the
// caller.
func (s *PaymentService) Record(ctx context.Context, tenantID, userID uuid.UUID, req RecordPaymentRequest) (*PaymentResponse, error) {
	if _, err := s.partnershipRepo.FindAcceptedForPair(ctx, tenantID, req.PartnerTenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoPartnership
		}
		return nil, err
	}

	payerID, receiverID := tenantID, req.PartnerTenantID
	if req.Direction == "received" {
		payerID, receiverID = req.PartnerTenantID, tenantID
	}

	payment, err := sharing.NewPartnerPayment(
		payerID, receiverID, tenantID, userID,
		req.Amount, sharing.PaymentMethod(req.Method), req.Notes,
	)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, req.PartnerTenantID, tenantID,
			sharing.NotificationPaymentRecorded, payment.ID,
			fmt.Sprintf("%s recorded a payment of %s awaiting your confirmation",
				s.tenantName(ctx, tenantID), payment.Amount.StringFixed(2)))
	})
	if err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment, tenantID), nil
}

// Confirm acknowledges a payment declared by the other party
func (s *PaymentService) Confirm(ctx context.Context, tenantID, userID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.loadForParty(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.Confirm(tenantID, userID); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, payment.CounterpartOf(tenantID), tenantID,
			sharing.NotificationPaymentConfirmed, payment.ID,
			fmt.Sprintf("%s confirmed a payment of %s",
				s.tenantName(ctx, tenantID), payment.Amount.StringFixed(2)))
	})
	if err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment, tenantID), nil
}

// Reject disputes a payment declared by the other party
func (s *PaymentService) Reject(ctx context.Context, tenantID, paymentID uuid.UUID, req RejectPaymentRequest) (*PaymentResponse, error) {
	payment, err := s.loadForParty(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	if err := payment.RejectPayment(tenantID, req.Reason); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Payments().Save(ctx, payment); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, payment.CounterpartOf(tenantID), tenantID,
			sharing.NotificationPaymentRejected, payment.ID,
			fmt.Sprintf("%s rejected a payment of %s",
				s.tenantName(ctx, tenantID), payment.Amount.StringFixed(2)))
	})
	if err != nil {
		return nil, err
	}

	return ToPaymentResponse(payment, tenantID), nil
}

// ListWithPartner returns payments between the caller and one partner
func (s *PaymentService) ListWithPartner(ctx context.Context, tenantID, partnerTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[PaymentResponse], error) {
	page, err := s.paymentRepo.FindBetween(ctx, tenantID, partnerTenantID, filter)
	if err != nil {
		return nil, err
	}

	items := make([]PaymentResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToPaymentResponse(&page.Items[i], tenantID)
	}
	return &shared.Paginated[PaymentResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

func (s *PaymentService) loadForParty(ctx context.Context, tenantID, paymentID uuid.UUID) (*sharing.PartnerPayment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if !payment.Involves(tenantID) {
		return nil, shared.ErrNotFound
	}
	return payment, nil
}

// notifyTx writes the notification inside the surrounding transaction
// so the payment change and its notification commit together.
func (s *PaymentService) notifyTx(ctx context.Context, repos TransactionalRepositories, recipientID, fromID uuid.UUID, notificationType sharing.NotificationType, referenceID uuid.UUID, message string) error {
	notification, err := sharing.NewPartnerNotification(
		recipientID, fromID, notificationType, sharing.ReferencePayment, referenceID, message)
	if err != nil {
		return err
	}
	return repos.Notifications().Save(ctx, notification)
}

func (s *PaymentService) tenantName(ctx context.Context, tenantID uuid.UUID) string {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return "A partner company"
	}
	return tenant.Name
}
