package sharing

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/partner"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

type MockPartnershipRepository struct {
	mock.Mock
}

func (m *MockPartnershipRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.Partnership, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.Partnership), args.Error(1)
}

func (m *MockPartnershipRepository) FindActiveForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*sharing.Partnership, error) {
	args := m.Called(ctx, tenantA, tenantB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.Partnership), args.Error(1)
}

func (m *MockPartnershipRepository) FindAcceptedForPair(ctx context.Context, tenantA, tenantB uuid.UUID) (*sharing.Partnership, error) {
	args := m.Called(ctx, tenantA, tenantB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.Partnership), args.Error(1)
}

func (m *MockPartnershipRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID) ([]sharing.Partnership, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]sharing.Partnership), args.Error(1)
}

func (m *MockPartnershipRepository) Save(ctx context.Context, partnership *sharing.Partnership) error {
	args := m.Called(ctx, partnership)
	return args.Error(0)
}

type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.CrossTenantTransfer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.CrossTenantTransfer), args.Error(1)
}

func (m *MockTransferRepository) FindOutgoing(ctx context.Context, senderTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.CrossTenantTransfer], error) {
	args := m.Called(ctx, senderTenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[sharing.CrossTenantTransfer]), args.Error(1)
}

func (m *MockTransferRepository) FindIncoming(ctx context.Context, receiverTenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.CrossTenantTransfer], error) {
	args := m.Called(ctx, receiverTenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[sharing.CrossTenantTransfer]), args.Error(1)
}

func (m *MockTransferRepository) NextSequenceForPrefix(ctx context.Context, prefix string) (int, error) {
	args := m.Called(ctx, prefix)
	return args.Int(0), args.Error(1)
}

func (m *MockTransferRepository) SumAcceptedValue(ctx context.Context, senderTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, senderTenantID, receiverTenantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTransferRepository) CountBetween(ctx context.Context, tenantA, tenantB uuid.UUID, status *sharing.TransferStatus) (int64, error) {
	args := m.Called(ctx, tenantA, tenantB, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransferRepository) Save(ctx context.Context, transfer *sharing.CrossTenantTransfer) error {
	args := m.Called(ctx, transfer)
	return args.Error(0)
}

type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*sharing.PartnerPayment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.PartnerPayment), args.Error(1)
}

func (m *MockPaymentRepository) FindBetween(ctx context.Context, tenantA, tenantB uuid.UUID, filter shared.Filter) (*shared.Paginated[sharing.PartnerPayment], error) {
	args := m.Called(ctx, tenantA, tenantB, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[sharing.PartnerPayment]), args.Error(1)
}

func (m *MockPaymentRepository) SumConfirmed(ctx context.Context, payerTenantID, receiverTenantID uuid.UUID) (decimal.Decimal, error) {
	args := m.Called(ctx, payerTenantID, receiverTenantID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) Save(ctx context.Context, payment *sharing.PartnerPayment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*sharing.PartnerNotification, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.PartnerNotification), args.Error(1)
}

func (m *MockNotificationRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID, unreadOnly bool, filter shared.Filter) (*shared.Paginated[sharing.PartnerNotification], error) {
	args := m.Called(ctx, tenantID, unreadOnly, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[sharing.PartnerNotification]), args.Error(1)
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepository) Save(ctx context.Context, notification *sharing.PartnerNotification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTenantRepository struct {
	mock.Mock
}

func (m *MockTenantRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindBySlug(ctx context.Context, slug string) (*identity.Tenant, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindActiveByID(ctx context.Context, id uuid.UUID) (*identity.Tenant, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) SearchActive(ctx context.Context, query string, excludingID uuid.UUID, limit int) ([]identity.Tenant, error) {
	args := m.Called(ctx, query, excludingID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]identity.Tenant, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) FindAll(ctx context.Context, filter shared.Filter) ([]identity.Tenant, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]identity.Tenant), args.Error(1)
}

func (m *MockTenantRepository) Save(ctx context.Context, tenant *identity.Tenant) error {
	args := m.Called(ctx, tenant)
	return args.Error(0)
}

func (m *MockTenantRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	args := m.Called(ctx, slug)
	return args.Bool(0), args.Error(1)
}

func (m *MockTenantRepository) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

type MockWarehouseRepository struct {
	mock.Mock
}

func (m *MockWarehouseRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*partner.Warehouse, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindByCode(ctx context.Context, tenantID uuid.UUID, code string) (*partner.Warehouse, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]partner.Warehouse, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) FindDefault(ctx context.Context, tenantID uuid.UUID) (*partner.Warehouse, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Warehouse), args.Error(1)
}

func (m *MockWarehouseRepository) Save(ctx context.Context, warehouse *partner.Warehouse) error {
	args := m.Called(ctx, warehouse)
	return args.Error(0)
}

func (m *MockWarehouseRepository) ExistsByCode(ctx context.Context, tenantID uuid.UUID, code string) (bool, error) {
	args := m.Called(ctx, tenantID, code)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByExactName(ctx context.Context, tenantID uuid.UUID, name string) (*catalog.Product, error) {
	args := m.Called(ctx, tenantID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[catalog.Product], error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

type MockUOMRepository struct {
	mock.Mock
}

func (m *MockUOMRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*catalog.UnitOfMeasure, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UnitOfMeasure), args.Error(1)
}

func (m *MockUOMRepository) FindBySymbol(ctx context.Context, tenantID uuid.UUID, symbol string) (*catalog.UnitOfMeasure, error) {
	args := m.Called(ctx, tenantID, symbol)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UnitOfMeasure), args.Error(1)
}

func (m *MockUOMRepository) FindFirst(ctx context.Context, tenantID uuid.UUID) (*catalog.UnitOfMeasure, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.UnitOfMeasure), args.Error(1)
}

func (m *MockUOMRepository) FindAll(ctx context.Context, tenantID uuid.UUID) ([]catalog.UnitOfMeasure, error) {
	args := m.Called(ctx, tenantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.UnitOfMeasure), args.Error(1)
}

func (m *MockUOMRepository) Save(ctx context.Context, uom *catalog.UnitOfMeasure) error {
	args := m.Called(ctx, uom)
	return args.Error(0)
}

func (m *MockUOMRepository) FindConversion(ctx context.Context, tenantID, productID, uomID uuid.UUID) (*catalog.ProductUOMConversion, error) {
	args := m.Called(ctx, tenantID, productID, uomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductUOMConversion), args.Error(1)
}

func (m *MockUOMRepository) SaveConversion(ctx context.Context, conversion *catalog.ProductUOMConversion) error {
	args := m.Called(ctx, conversion)
	return args.Error(0)
}

type MockStockRepository struct {
	mock.Mock
}

func (m *MockStockRepository) FindByProductAndWarehouse(ctx context.Context, tenantID, productID, warehouseID uuid.UUID) (*inventory.Stock, error) {
	args := m.Called(ctx, tenantID, productID, warehouseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID) ([]inventory.Stock, error) {
	args := m.Called(ctx, tenantID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.Stock), args.Error(1)
}

func (m *MockStockRepository) Save(ctx context.Context, stock *inventory.Stock) error {
	args := m.Called(ctx, stock)
	return args.Error(0)
}

func (m *MockStockRepository) DebitConditional(ctx context.Context, tenantID, productID, warehouseID uuid.UUID, quantity decimal.Decimal) error {
	args := m.Called(ctx, tenantID, productID, warehouseID, quantity)
	return args.Error(0)
}

type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Save(ctx context.Context, movement *inventory.StockMovement) error {
	args := m.Called(ctx, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) FindByReference(ctx context.Context, tenantID uuid.UUID, referenceType inventory.ReferenceType, referenceID uuid.UUID) ([]inventory.StockMovement, error) {
	args := m.Called(ctx, tenantID, referenceType, referenceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]inventory.StockMovement), args.Error(1)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, tenantID, productID uuid.UUID, filter shared.Filter) (*shared.Paginated[inventory.StockMovement], error) {
	args := m.Called(ctx, tenantID, productID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.Paginated[inventory.StockMovement]), args.Error(1)
}

type MockMappingRepository struct {
	mock.Mock
}

func (m *MockMappingRepository) FindMapping(ctx context.Context, senderTenantID, receiverTenantID, senderProductID uuid.UUID) (*sharing.PartnerProductMapping, error) {
	args := m.Called(ctx, senderTenantID, receiverTenantID, senderProductID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sharing.PartnerProductMapping), args.Error(1)
}

func (m *MockMappingRepository) Save(ctx context.Context, mapping *sharing.PartnerProductMapping) error {
	args := m.Called(ctx, mapping)
	return args.Error(0)
}

type MockUnreadCache struct {
	mock.Mock
}

func (m *MockUnreadCache) Get(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	args := m.Called(ctx, tenantID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUnreadCache) Seed(ctx context.Context, tenantID uuid.UUID, count int64) error {
	args := m.Called(ctx, tenantID, count)
	return args.Error(0)
}

func (m *MockUnreadCache) Invalidate(ctx context.Context, tenantID uuid.UUID) error {
	args := m.Called(ctx, tenantID)
	return args.Error(0)
}

// fakeTxScope runs the callback immediately against the test's mocks,
// standing in for a real database transaction.
type fakeTxScope struct {
	partnerships  *MockPartnershipRepository
	transfers     *MockTransferRepository
	payments      *MockPaymentRepository
	stocks        *MockStockRepository
	movements     *MockMovementRepository
	products      *MockProductRepository
	uoms          *MockUOMRepository
	mappings      *MockMappingRepository
	notifications *MockNotificationRepository
}

func (s *fakeTxScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

func (s *fakeTxScope) Partnerships() sharing.PartnershipRepository { return s.partnerships }

func (s *fakeTxScope) Payments() sharing.PaymentRepository { return s.payments }

func (s *fakeTxScope) Transfers() sharing.TransferRepository { return s.transfers }

func (s *fakeTxScope) Stocks() inventory.StockRepository { return s.stocks }

func (s *fakeTxScope) Movements() inventory.StockMovementRepository { return s.movements }

func (s *fakeTxScope) Products() catalog.ProductRepository { return s.products }

func (s *fakeTxScope) UOMs() catalog.UOMRepository { return s.uoms }

func (s *fakeTxScope) Mappings() sharing.ProductMappingRepository { return s.mappings }

func (s *fakeTxScope) Notifications() sharing.NotificationRepository { return s.notifications }
