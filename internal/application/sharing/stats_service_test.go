package sharing

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

type statsServiceFixture struct {
	service         *StatsService
	partnershipRepo *MockPartnershipRepository
	transferRepo    *MockTransferRepository
	paymentRepo     *MockPaymentRepository
	tenantRepo      *MockTenantRepository
}

func newStatsServiceFixture() *statsServiceFixture {
	f := &statsServiceFixture{
		partnershipRepo: new(MockPartnershipRepository),
		transferRepo:    new(MockTransferRepository),
		paymentRepo:     new(MockPaymentRepository),
		tenantRepo:      new(MockTenantRepository),
	}
	f.service = NewStatsService(f.partnershipRepo, f.transferRepo, f.paymentRepo, f.tenantRepo)
	return f
}

func TestStatsService_GetPartnerStats(t *testing.T) {
	ctx := context.Background()

	t.Run("nets accepted transfers against confirmed payments", func(t *testing.T) {
		f := newStatsServiceFixture()
		callerID, partnerID := uuid.New(), uuid.New()

		f.partnershipRepo.On("FindActiveForPair", ctx, callerID, partnerID).
			Return(acceptedPartnership(t, callerID, partnerID), nil)
		f.tenantRepo.On("FindByID", ctx, partnerID).Return(testTenant(t, "Partner Co"), nil)

		// The caller received 1000 worth of goods and paid 400 back
		f.transferRepo.On("SumAcceptedValue", ctx, partnerID, callerID).Return(decimal.NewFromInt(1000), nil)
		f.paymentRepo.On("SumConfirmed", ctx, callerID, partnerID).Return(decimal.NewFromInt(400), nil)
		// The partner received 300 worth of goods and paid nothing
		f.transferRepo.On("SumAcceptedValue", ctx, callerID, partnerID).Return(decimal.NewFromInt(300), nil)
		f.paymentRepo.On("SumConfirmed", ctx, partnerID, callerID).Return(decimal.Zero, nil)
		f.transferRepo.On("CountBetween", ctx, callerID, partnerID, (*sharing.TransferStatus)(nil)).Return(int64(5), nil)

		stats, err := f.service.GetPartnerStats(ctx, callerID, partnerID)

		require.NoError(t, err)
		assert.True(t, stats.MyDebt.Equal(decimal.NewFromInt(600)))
		assert.True(t, stats.PartnerDebt.Equal(decimal.NewFromInt(300)))
		// Negative balance: on net the caller owes the partner
		assert.True(t, stats.Balance.Equal(decimal.NewFromInt(-300)))
		assert.Equal(t, int64(5), stats.TransferCount)
		assert.Equal(t, "Partner Co", stats.PartnerName)
	})

	t.Run("requires a partnership", func(t *testing.T) {
		f := newStatsServiceFixture()
		callerID, partnerID := uuid.New(), uuid.New()

		f.partnershipRepo.On("FindActiveForPair", ctx, callerID, partnerID).
			Return(nil, shared.ErrNotFound)

		_, err := f.service.GetPartnerStats(ctx, callerID, partnerID)

		assert.ErrorIs(t, err, shared.ErrNoPartnership)
	})
}

func TestStatsService_GetAllPartnerStats(t *testing.T) {
	ctx := context.Background()

	t.Run("skips pending partnerships", func(t *testing.T) {
		f := newStatsServiceFixture()
		callerID := uuid.New()
		acceptedPartnerID, pendingPartnerID := uuid.New(), uuid.New()

		accepted := acceptedPartnership(t, callerID, acceptedPartnerID)
		pending, err := sharing.NewPartnership(callerID, pendingPartnerID, "")
		require.NoError(t, err)

		f.partnershipRepo.On("FindForTenant", ctx, callerID).
			Return([]sharing.Partnership{*accepted, *pending}, nil)

		partnerTenant := testTenant(t, "Partner Co")
		f.tenantRepo.On("FindByIDs", ctx, []uuid.UUID{acceptedPartnerID}).
			Return([]identity.Tenant{*partnerTenant}, nil)

		f.transferRepo.On("SumAcceptedValue", ctx, acceptedPartnerID, callerID).Return(decimal.Zero, nil)
		f.transferRepo.On("SumAcceptedValue", ctx, callerID, acceptedPartnerID).Return(decimal.NewFromInt(200), nil)
		f.paymentRepo.On("SumConfirmed", ctx, callerID, acceptedPartnerID).Return(decimal.Zero, nil)
		f.paymentRepo.On("SumConfirmed", ctx, acceptedPartnerID, callerID).Return(decimal.NewFromInt(50), nil)
		f.transferRepo.On("CountBetween", ctx, callerID, acceptedPartnerID, (*sharing.TransferStatus)(nil)).Return(int64(2), nil)

		stats, err := f.service.GetAllPartnerStats(ctx, callerID)

		require.NoError(t, err)
		require.Len(t, stats, 1)
		assert.Equal(t, acceptedPartnerID, stats[0].PartnerTenantID)
		assert.True(t, stats[0].PartnerDebt.Equal(decimal.NewFromInt(150)))
	})
}
