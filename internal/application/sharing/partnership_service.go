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

const partnerSearchLimit = 20

// PartnershipService manages partnership requests between tenants.
// Every state change commits together with the notification telling
// the other side about it.
type PartnershipService struct {
	partnershipRepo sharing.PartnershipRepository
	tenantRepo      identity.TenantRepository
	txScope         TransactionScope
}

// NewPartnershipService creates a new PartnershipService
func NewPartnershipService(
	partnershipRepo sharing.PartnershipRepository,
	tenantRepo identity.TenantRepository,
	txScope TransactionScope,
) *PartnershipService {
	return &PartnershipService{
		partnershipRepo: partnershipRepo,
		tenantRepo:      tenantRepo,
		txScope:         txScope,
	}
}

// Search finds active tenants matching the query, excluding the caller,
// and annotates each result with the state of any partnership between
// the pair.
func (s *PartnershipService) Search(ctx context.Context, tenantID uuid.UUID, query string) ([]PartnerSearchResult, error) {
	tenants, err := s.tenantRepo.SearchActive(ctx, query, tenantID, partnerSearchLimit)
	if err != nil {
		return nil, err
	}

	results := make([]PartnerSearchResult, 0, len(tenants))
	for _, t := range tenants {
		result := PartnerSearchResult{
			TenantID: t.ID,
			Name:     t.Name,
			Slug:     t.Slug,
			LogoURL:  t.LogoURL,
			Phone:    t.Phone,
		}

		partnership, err := s.partnershipRepo.FindActiveForPair(ctx, tenantID, t.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if partnership != nil {
			result.PartnershipStatus = string(partnership.Status)
		}

		results = append(results, result)
	}
	return results, nil
}

// List returns the caller's pending and accepted partnerships
func (s *PartnershipService) List(ctx context.Context, tenantID uuid.UUID) ([]PartnershipResponse, error) {
	partnerships, err := s.partnershipRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	partnerIDs := make([]uuid.UUID, 0, len(partnerships))
	for _, p := range partnerships {
		partnerIDs = append(partnerIDs, p.CounterpartOf(tenantID))
	}
	partners, err := s.tenantRepo.FindByIDs(ctx, partnerIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]identity.Tenant, len(partners))
	for _, t := range partners {
		byID[t.ID] = t
	}

	responses := make([]PartnershipResponse, 0, len(partnerships))
	for i := range partnerships {
		p := &partnerships[i]
		partner := byID[p.CounterpartOf(tenantID)]
		responses = append(responses, *ToPartnershipResponse(p, tenantID, partner.Name, partner.Slug))
	}
	return responses, nil
}

// SendRequest creates a pending partnership request toward another tenant
func (s *PartnershipService) SendRequest(ctx context.Context, tenantID uuid.UUID, req SendPartnershipRequest) (*PartnershipResponse, error) {
	target, err := s.tenantRepo.FindActiveByID(ctx, req.TargetTenantID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Target company not found")
		}
		return nil, err
	}

	existing, err := s.partnershipRepo.FindActiveForPair(ctx, tenantID, req.TargetTenantID)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainErrorf("ALREADY_EXISTS", "A %s partnership with this company already exists", existing.Status)
	}

	partnership, err := sharing.NewPartnership(tenantID, req.TargetTenantID, req.Notes)
	if err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Partnerships().Save(ctx, partnership); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, req.TargetTenantID, tenantID,
			sharing.NotificationPartnershipRequested, partnership.ID,
			fmt.Sprintf("Partnership request from %s", s.tenantName(ctx, tenantID)))
	})
	if err != nil {
		return nil, err
	}

	return ToPartnershipResponse(partnership, tenantID, target.Name, target.Slug), nil
}

// Accept accepts a pending partnership request addressed to the caller
func (s *PartnershipService) Accept(ctx context.Context, tenantID, partnershipID uuid.UUID) (*PartnershipResponse, error) {
	return s.respond(ctx, tenantID, partnershipID, func(p *sharing.Partnership) error {
		return p.Accept(tenantID)
	}, sharing.NotificationPartnershipAccepted, "accepted your partnership request")
}

// Reject rejects a pending partnership request addressed to the caller
func (s *PartnershipService) Reject(ctx context.Context, tenantID, partnershipID uuid.UUID) (*PartnershipResponse, error) {
	return s.respond(ctx, tenantID, partnershipID, func(p *sharing.Partnership) error {
		return p.Reject(tenantID)
	}, sharing.NotificationPartnershipRejected, "rejected your partnership request")
}

// Remove cancels a partnership. Either party may remove it; past
// transfers are unaffected.
func (s *PartnershipService) Remove(ctx context.Context, tenantID, partnershipID uuid.UUID) error {
	partnership, err := s.partnershipRepo.FindByID(ctx, partnershipID)
	if err != nil {
		return err
	}
	if !partnership.Involves(tenantID) {
		return shared.ErrNotFound
	}

	if err := partnership.Cancel(tenantID); err != nil {
		return err
	}
	return s.partnershipRepo.Save(ctx, partnership)
}

// ArePartners reports whether two tenants have an accepted partnership
func (s *PartnershipService) ArePartners(ctx context.Context, tenantA, tenantB uuid.UUID) (bool, error) {
	_, err := s.partnershipRepo.FindAcceptedForPair(ctx, tenantA, tenantB)
	if errors.Is(err, shared.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *PartnershipService) respond(
	ctx context.Context,
	tenantID, partnershipID uuid.UUID,
	action func(*sharing.Partnership) error,
	notificationType sharing.NotificationType,
	message string,
) (*PartnershipResponse, error) {
	partnership, err := s.partnershipRepo.FindByID(ctx, partnershipID)
	if err != nil {
		return nil, err
	}
	if !partnership.Involves(tenantID) {
		// Outsiders cannot tell the partnership exists
		return nil, shared.ErrNotFound
	}

	if err := action(partnership); err != nil {
		return nil, err
	}

	partnerID := partnership.CounterpartOf(tenantID)
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := repos.Partnerships().Save(ctx, partnership); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, partnerID, tenantID, notificationType, partnership.ID,
			fmt.Sprintf("%s %s", s.tenantName(ctx, tenantID), message))
	})
	if err != nil {
		return nil, err
	}

	partnerName, partnerSlug := "", ""
	if partner, err := s.tenantRepo.FindByID(ctx, partnerID); err == nil {
		partnerName, partnerSlug = partner.Name, partner.Slug
	}
	return ToPartnershipResponse(partnership, tenantID, partnerName, partnerSlug), nil
}

// notifyTx writes the notification inside the surrounding transaction
// so the partnership change and its notification commit together.
func (s *PartnershipService) notifyTx(ctx context.Context, repos TransactionalRepositories, recipientID, fromID uuid.UUID, notificationType sharing.NotificationType, referenceID uuid.UUID, message string) error {
	notification, err := sharing.NewPartnerNotification(
		recipientID, fromID, notificationType, sharing.ReferencePartnership, referenceID, message)
	if err != nil {
		return err
	}
	return repos.Notifications().Save(ctx, notification)
}

func (s *PartnershipService) tenantName(ctx context.Context, tenantID uuid.UUID) string {
	tenant, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return "A partner company"
	}
	return tenant.Name
}
