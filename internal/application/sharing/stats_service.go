package sharing

import (
	"context"

	"github.com/google/uuid"

	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// StatsService computes mutual debt between partners. Debt toward a
// partner is the accepted value of goods received from them minus the
// confirmed payments already made to them.
type StatsService struct {
	partnershipRepo sharing.PartnershipRepository
	transferRepo    sharing.TransferRepository
	paymentRepo     sharing.PaymentRepository
	tenantRepo      identity.TenantRepository
}

// NewStatsService creates a new StatsService
func NewStatsService(
	partnershipRepo sharing.PartnershipRepository,
	transferRepo sharing.TransferRepository,
	paymentRepo sharing.PaymentRepository,
	tenantRepo identity.TenantRepository,
) *StatsService {
	return &StatsService{
		partnershipRepo: partnershipRepo,
		transferRepo:    transferRepo,
		paymentRepo:     paymentRepo,
		tenantRepo:      tenantRepo,
	}
}

// GetPartnerStats returns debt figures and transfer volume for a
// single partner relationship.
func (s *StatsService) GetPartnerStats(ctx context.Context, tenantID, partnerTenantID uuid.UUID) (*PartnerStatsResponse, error) {
	if _, err := s.partnershipRepo.FindActiveForPair(ctx, tenantID, partnerTenantID); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.ErrNoPartnership
		}
		return nil, err
	}

	partnerName := ""
	if tenant, err := s.tenantRepo.FindByID(ctx, partnerTenantID); err == nil {
		partnerName = tenant.Name
	}

	return s.buildStats(ctx, tenantID, partnerTenantID, partnerName)
}

// GetAllPartnerStats returns debt figures for every active partnership
func (s *StatsService) GetAllPartnerStats(ctx context.Context, tenantID uuid.UUID) ([]PartnerStatsResponse, error) {
	partnerships, err := s.partnershipRepo.FindForTenant(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	partnerIDs := make([]uuid.UUID, 0, len(partnerships))
	for i := range partnerships {
		if partnerships[i].Status != sharing.PartnershipStatusAccepted {
			continue
		}
		partnerIDs = append(partnerIDs, partnerships[i].CounterpartOf(tenantID))
	}

	names := make(map[uuid.UUID]string, len(partnerIDs))
	if tenants, err := s.tenantRepo.FindByIDs(ctx, partnerIDs); err == nil {
		for i := range tenants {
			names[tenants[i].ID] = tenants[i].Name
		}
	}

	results := make([]PartnerStatsResponse, 0, len(partnerIDs))
	for _, partnerID := range partnerIDs {
		stats, err := s.buildStats(ctx, tenantID, partnerID, names[partnerID])
		if err != nil {
			return nil, err
		}
		results = append(results, *stats)
	}
	return results, nil
}

func (s *StatsService) buildStats(ctx context.Context, tenantID, partnerTenantID uuid.UUID, partnerName string) (*PartnerStatsResponse, error) {
	receivedValue, err := s.transferRepo.SumAcceptedValue(ctx, partnerTenantID, tenantID)
	if err != nil {
		return nil, err
	}
	sentValue, err := s.transferRepo.SumAcceptedValue(ctx, tenantID, partnerTenantID)
	if err != nil {
		return nil, err
	}
	paidToPartner, err := s.paymentRepo.SumConfirmed(ctx, tenantID, partnerTenantID)
	if err != nil {
		return nil, err
	}
	paidByPartner, err := s.paymentRepo.SumConfirmed(ctx, partnerTenantID, tenantID)
	if err != nil {
		return nil, err
	}
	transferCount, err := s.transferRepo.CountBetween(ctx, tenantID, partnerTenantID, nil)
	if err != nil {
		return nil, err
	}

	myDebt := receivedValue.Sub(paidToPartner)
	partnerDebt := sentValue.Sub(paidByPartner)

	return &PartnerStatsResponse{
		PartnerTenantID: partnerTenantID,
		PartnerName:     partnerName,
		MyDebt:          myDebt,
		PartnerDebt:     partnerDebt,
		Balance:         partnerDebt.Sub(myDebt),
		TransferCount:   transferCount,
	}, nil
}
