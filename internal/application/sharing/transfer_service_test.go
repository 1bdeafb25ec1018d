package sharing

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/partner"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

type transferServiceFixture struct {
	service         *TransferService
	partnershipRepo *MockPartnershipRepository
	transferRepo    *MockTransferRepository
	warehouseRepo   *MockWarehouseRepository
	tenantRepo      *MockTenantRepository
	notifications   *MockNotificationRepository
	tx              *fakeTxScope
}

func newTransferServiceFixture() *transferServiceFixture {
	f := &transferServiceFixture{
		partnershipRepo: new(MockPartnershipRepository),
		transferRepo:    new(MockTransferRepository),
		warehouseRepo:   new(MockWarehouseRepository),
		tenantRepo:      new(MockTenantRepository),
		notifications:   new(MockNotificationRepository),
	}
	f.tx = &fakeTxScope{
		transfers:     new(MockTransferRepository),
		stocks:        new(MockStockRepository),
		movements:     new(MockMovementRepository),
		products:      new(MockProductRepository),
		uoms:          new(MockUOMRepository),
		mappings:      new(MockMappingRepository),
		notifications: new(MockNotificationRepository),
	}
	f.service = NewTransferService(
		f.partnershipRepo, f.transferRepo, f.notifications,
		f.warehouseRepo, f.tenantRepo, f.tx,
	)
	return f
}

func acceptedPartnership(t *testing.T, a, b uuid.UUID) *sharing.Partnership {
	t.Helper()
	p, err := sharing.NewPartnership(a, b, "")
	require.NoError(t, err)
	require.NoError(t, p.Accept(b))
	return p
}

func testTenant(t *testing.T, name string) *identity.Tenant {
	t.Helper()
	tenant, err := identity.NewTenant(name, "tenant-"+uuid.NewString()[:8])
	require.NoError(t, err)
	return tenant
}

func testWarehouse(t *testing.T, tenantID uuid.UUID) *partner.Warehouse {
	t.Helper()
	w, err := partner.NewWarehouse(tenantID, "MAIN", "Main Warehouse")
	require.NoError(t, err)
	return w
}

func testProduct(t *testing.T, tenantID, baseUOMID uuid.UUID, name string) *catalog.Product {
	t.Helper()
	p, err := catalog.NewProduct(tenantID, baseUOMID, name)
	require.NoError(t, err)
	require.NoError(t, p.SetPrices(decimal.NewFromInt(80), decimal.NewFromInt(100)))
	return p
}

func testUOM(t *testing.T, tenantID uuid.UUID) *catalog.UnitOfMeasure {
	t.Helper()
	u, err := catalog.NewUnitOfMeasure(tenantID, "Pieces", "pcs")
	require.NoError(t, err)
	return u
}

func stockWith(tenantID, warehouseID, productID uuid.UUID, quantity, avgCost decimal.Decimal) *inventory.Stock {
	s := inventory.NewStock(tenantID, warehouseID, productID)
	_ = s.Credit(quantity, avgCost)
	return s
}

func pendingTransfer(t *testing.T, senderID, receiverID uuid.UUID) *sharing.CrossTenantTransfer {
	t.Helper()
	item, err := sharing.NewTransferItem(
		uuid.New(), "Olive Oil 1L", "OO-1", "4731111111111",
		uuid.New(), "pcs",
		decimal.NewFromInt(10), decimal.NewFromInt(10),
		decimal.NewFromInt(95), decimal.Zero,
	)
	require.NoError(t, err)

	transfer, err := sharing.NewCrossTenantTransfer(
		"CT-20260831-001", senderID, uuid.New(), uuid.New(), receiverID, "", []sharing.CrossTenantTransferItem{*item},
	)
	require.NoError(t, err)
	return transfer
}

func TestTransferService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("debits stock and creates a numbered pending transfer", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		userID := uuid.New()

		uom := testUOM(t, senderID)
		product := testProduct(t, senderID, uom.ID, "Olive Oil 1L")
		warehouse := testWarehouse(t, senderID)
		stock := stockWith(senderID, warehouse.ID, product.ID, decimal.NewFromInt(50), decimal.NewFromInt(80))

		f.partnershipRepo.On("FindAcceptedForPair", ctx, senderID, receiverID).
			Return(acceptedPartnership(t, senderID, receiverID), nil)
		f.tenantRepo.On("FindActiveByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.tenantRepo.On("FindByID", ctx, senderID).Return(testTenant(t, "Sender Co"), nil)
		f.warehouseRepo.On("FindByID", ctx, senderID, warehouse.ID).Return(warehouse, nil)

		f.tx.products.On("FindByID", ctx, senderID, product.ID).Return(product, nil)
		f.tx.uoms.On("FindByID", ctx, senderID, uom.ID).Return(uom, nil)
		f.tx.transfers.On("NextSequenceForPrefix", ctx, mock.AnythingOfType("string")).Return(7, nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, senderID, product.ID, warehouse.ID).Return(stock, nil)
		f.tx.stocks.On("DebitConditional", ctx, senderID, product.ID, warehouse.ID, decimal.NewFromInt(10)).Return(nil)
		f.tx.movements.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)

		var saved *sharing.CrossTenantTransfer
		f.tx.transfers.On("Save", ctx, mock.AnythingOfType("*sharing.CrossTenantTransfer")).
			Run(func(args mock.Arguments) { saved = args.Get(1).(*sharing.CrossTenantTransfer) }).
			Return(nil)
		f.tx.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).Return(nil)

		resp, err := f.service.Create(ctx, senderID, userID, CreateTransferRequest{
			ReceiverTenantID:  receiverID,
			SenderWarehouseID: warehouse.ID,
			Items: []CreateTransferItemRequest{
				{ProductID: product.ID, UOMID: uom.ID, Quantity: decimal.NewFromInt(10)},
			},
		})

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Regexp(t, `^CT-\d{8}-007$`, saved.TransferNumber)
		assert.Equal(t, sharing.TransferStatusPending, saved.Status)
		assert.Equal(t, "outgoing", resp.Direction)
		// No item price given, so the product's sale price is snapshotted
		assert.True(t, resp.Items[0].SalePrice.Equal(decimal.NewFromInt(100)))
		f.tx.movements.AssertNumberOfCalls(t, "Save", 1)
	})

	t.Run("converts quantity to the base unit before debiting", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()

		baseUOM := testUOM(t, senderID)
		product := testProduct(t, senderID, baseUOM.ID, "Flour")
		boxUOM, err := catalog.NewUnitOfMeasure(senderID, "Box", "box")
		require.NoError(t, err)
		conversion, err := catalog.NewProductUOMConversion(senderID, product.ID, boxUOM.ID, decimal.NewFromInt(12))
		require.NoError(t, err)
		warehouse := testWarehouse(t, senderID)
		stock := stockWith(senderID, warehouse.ID, product.ID, decimal.NewFromInt(100), decimal.NewFromInt(80))

		f.partnershipRepo.On("FindAcceptedForPair", ctx, senderID, receiverID).
			Return(acceptedPartnership(t, senderID, receiverID), nil)
		f.tenantRepo.On("FindActiveByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.tenantRepo.On("FindByID", ctx, senderID).Return(testTenant(t, "Sender Co"), nil)
		f.warehouseRepo.On("FindByID", ctx, senderID, warehouse.ID).Return(warehouse, nil)

		f.tx.products.On("FindByID", ctx, senderID, product.ID).Return(product, nil)
		f.tx.uoms.On("FindByID", ctx, senderID, boxUOM.ID).Return(boxUOM, nil)
		f.tx.uoms.On("FindConversion", ctx, senderID, product.ID, boxUOM.ID).Return(conversion, nil)
		f.tx.transfers.On("NextSequenceForPrefix", ctx, mock.AnythingOfType("string")).Return(1, nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, senderID, product.ID, warehouse.ID).Return(stock, nil)
		// 5 boxes of 12 debit 60 base units
		f.tx.stocks.On("DebitConditional", ctx, senderID, product.ID, warehouse.ID, decimal.NewFromInt(60)).Return(nil)
		f.tx.movements.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		f.tx.transfers.On("Save", ctx, mock.AnythingOfType("*sharing.CrossTenantTransfer")).Return(nil)
		f.tx.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).Return(nil)

		_, err = f.service.Create(ctx, senderID, uuid.New(), CreateTransferRequest{
			ReceiverTenantID:  receiverID,
			SenderWarehouseID: warehouse.ID,
			Items: []CreateTransferItemRequest{
				{ProductID: product.ID, UOMID: boxUOM.ID, Quantity: decimal.NewFromInt(5)},
			},
		})

		require.NoError(t, err)
		f.tx.stocks.AssertExpectations(t)
	})

	t.Run("fails without an accepted partnership", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()

		f.partnershipRepo.On("FindAcceptedForPair", ctx, senderID, receiverID).
			Return(nil, shared.ErrNotFound)

		_, err := f.service.Create(ctx, senderID, uuid.New(), CreateTransferRequest{
			ReceiverTenantID:  receiverID,
			SenderWarehouseID: uuid.New(),
			Items:             []CreateTransferItemRequest{{ProductID: uuid.New(), UOMID: uuid.New(), Quantity: decimal.NewFromInt(1)}},
		})

		assert.ErrorIs(t, err, shared.ErrNoPartnership)
	})

	t.Run("aborts the whole transfer when stock is insufficient", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()

		uom := testUOM(t, senderID)
		product := testProduct(t, senderID, uom.ID, "Olive Oil 1L")
		warehouse := testWarehouse(t, senderID)
		stock := stockWith(senderID, warehouse.ID, product.ID, decimal.NewFromInt(3), decimal.NewFromInt(80))

		f.partnershipRepo.On("FindAcceptedForPair", ctx, senderID, receiverID).
			Return(acceptedPartnership(t, senderID, receiverID), nil)
		f.tenantRepo.On("FindActiveByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.warehouseRepo.On("FindByID", ctx, senderID, warehouse.ID).Return(warehouse, nil)

		f.tx.products.On("FindByID", ctx, senderID, product.ID).Return(product, nil)
		f.tx.uoms.On("FindByID", ctx, senderID, uom.ID).Return(uom, nil)
		f.tx.transfers.On("NextSequenceForPrefix", ctx, mock.AnythingOfType("string")).Return(1, nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, senderID, product.ID, warehouse.ID).Return(stock, nil)
		f.tx.stocks.On("DebitConditional", ctx, senderID, product.ID, warehouse.ID, decimal.NewFromInt(10)).
			Return(shared.ErrInsufficientStock)

		_, err := f.service.Create(ctx, senderID, uuid.New(), CreateTransferRequest{
			ReceiverTenantID:  receiverID,
			SenderWarehouseID: warehouse.ID,
			Items: []CreateTransferItemRequest{
				{ProductID: product.ID, UOMID: uom.ID, Quantity: decimal.NewFromInt(10)},
			},
		})

		assert.ErrorIs(t, err, shared.ErrInsufficientStock)
		// The error names the failing line and what is left
		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Contains(t, domainErr.Message, "Olive Oil 1L")
		assert.Contains(t, domainErr.Message, "Available: 3")
		f.tx.transfers.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
		f.tx.movements.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestTransferService_EditAndConfirm(t *testing.T) {
	ctx := context.Background()

	t.Run("receiver edit flips the confirmation turn", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)
		itemID := transfer.Items[0].ID

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.transferRepo.On("Save", ctx, transfer).Return(nil)
		f.tenantRepo.On("FindByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).Return(nil)

		resp, err := f.service.Edit(ctx, receiverID, transfer.ID, EditTransferRequest{
			Prices: []TransferItemPriceUpdate{
				{ItemID: itemID, SalePrice: decimal.NewFromInt(90)},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, receiverID, transfer.LastEditedByTenantID)
		assert.True(t, transfer.Items[0].Total.Equal(decimal.NewFromInt(900)))
		// The editor now waits; the sender sees the pending confirm
		assert.False(t, resp.AwaitingMyConfirm)
	})

	t.Run("editor cannot confirm its own edit", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)

		_, err := f.service.ConfirmEdit(ctx, senderID, transfer.ID)

		assert.ErrorIs(t, err, shared.ErrNotYourTurn)
		f.transferRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("strangers get not found", func(t *testing.T) {
		f := newTransferServiceFixture()
		transfer := pendingTransfer(t, uuid.New(), uuid.New())

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)

		_, err := f.service.GetDetail(ctx, uuid.New(), transfer.ID)

		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTransferService_GetDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("carries both parties' company and warehouse names", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)

		senderWh, err := partner.NewWarehouse(senderID, "MAIN", "Sender Depot")
		require.NoError(t, err)
		receiverWh, err := partner.NewWarehouse(receiverID, "MAIN", "Receiver Depot")
		require.NoError(t, err)
		transfer.ReceiverWarehouseID = &receiverWh.ID

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.tenantRepo.On("FindByID", ctx, senderID).Return(testTenant(t, "Sender Co"), nil)
		f.tenantRepo.On("FindByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		// Warehouse lookups cross tenant boundaries, so the context differs
		f.warehouseRepo.On("FindByID", mock.Anything, senderID, transfer.SenderWarehouseID).Return(senderWh, nil)
		f.warehouseRepo.On("FindByID", mock.Anything, receiverID, receiverWh.ID).Return(receiverWh, nil)

		resp, err := f.service.GetDetail(ctx, senderID, transfer.ID)

		require.NoError(t, err)
		assert.Equal(t, "Sender Co", resp.SenderTenantName)
		assert.Equal(t, "Receiver Co", resp.ReceiverTenantName)
		assert.Equal(t, "Sender Depot", resp.SenderWarehouseName)
		assert.Equal(t, "Receiver Depot", resp.ReceiverWarehouseName)
	})

	t.Run("leaves warehouse names empty when the rows are gone", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.tenantRepo.On("FindByID", ctx, senderID).Return(testTenant(t, "Sender Co"), nil)
		f.tenantRepo.On("FindByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.warehouseRepo.On("FindByID", mock.Anything, senderID, transfer.SenderWarehouseID).
			Return(nil, shared.ErrNotFound)

		resp, err := f.service.GetDetail(ctx, receiverID, transfer.ID)

		require.NoError(t, err)
		assert.Empty(t, resp.SenderWarehouseName)
		assert.Empty(t, resp.ReceiverWarehouseName)
	})
}

func TestTransferService_Accept(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*transferServiceFixture, uuid.UUID, uuid.UUID, *sharing.CrossTenantTransfer, *partner.Warehouse) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)
		warehouse := testWarehouse(t, receiverID)

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.warehouseRepo.On("FindByID", ctx, receiverID, warehouse.ID).Return(warehouse, nil)
		f.tenantRepo.On("FindByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.tx.transfers.On("Save", ctx, transfer).Return(nil)
		f.tx.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).Return(nil)
		f.tx.movements.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		return f, senderID, receiverID, transfer, warehouse
	}

	t.Run("mapped product wins and is credited at the transfer price", func(t *testing.T) {
		f, senderID, receiverID, transfer, warehouse := setup(t)
		item := &transfer.Items[0]

		uom := testUOM(t, receiverID)
		product := testProduct(t, receiverID, uom.ID, "Local Olive Oil")
		mapping, err := sharing.NewPartnerProductMapping(senderID, receiverID, item.ProductID, product.ID)
		require.NoError(t, err)
		stock := stockWith(receiverID, warehouse.ID, product.ID, decimal.NewFromInt(10), decimal.NewFromInt(50))

		f.tx.mappings.On("FindMapping", ctx, senderID, receiverID, item.ProductID).Return(mapping, nil)
		f.tx.products.On("FindByID", ctx, receiverID, product.ID).Return(product, nil)
		f.tx.products.On("Save", ctx, product).Return(nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, receiverID, product.ID, warehouse.ID).Return(stock, nil)
		f.tx.stocks.On("Save", ctx, stock).Return(nil)

		resp, err := f.service.Accept(ctx, receiverID, uuid.New(), transfer.ID, AcceptTransferRequest{WarehouseID: warehouse.ID})

		require.NoError(t, err)
		assert.Equal(t, sharing.TransferStatusAccepted, transfer.Status)
		require.Len(t, resp.Resolutions, 1)
		assert.Equal(t, ResolutionMapped, resp.Resolutions[0].Resolution)
		assert.Equal(t, product.ID, resp.Resolutions[0].ProductID)
		// 10 @ 50 plus 10 @ 95 averages to 72.5
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(20)))
		assert.True(t, stock.AverageCost.Equal(decimal.NewFromFloat(72.5)), "got %s", stock.AverageCost)
		assert.True(t, product.CostPrice.Equal(item.SalePrice))
	})

	t.Run("caller-directed mapping wins and is remembered", func(t *testing.T) {
		f, _, receiverID, transfer, warehouse := setup(t)
		item := &transfer.Items[0]

		uom := testUOM(t, receiverID)
		chosen := testProduct(t, receiverID, uom.ID, "House Olive Oil")
		stock := stockWith(receiverID, warehouse.ID, chosen.ID, decimal.NewFromInt(4), decimal.NewFromInt(95))

		f.tx.products.On("FindByID", ctx, receiverID, chosen.ID).Return(chosen, nil)
		f.tx.products.On("Save", ctx, chosen).Return(nil)
		f.tx.mappings.On("Save", ctx, mock.MatchedBy(func(m *sharing.PartnerProductMapping) bool {
			return m.SenderProductID == item.ProductID && m.ReceiverProductID == chosen.ID
		})).Return(nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, receiverID, chosen.ID, warehouse.ID).Return(stock, nil)
		f.tx.stocks.On("Save", ctx, stock).Return(nil)

		resp, err := f.service.Accept(ctx, receiverID, uuid.New(), transfer.ID, AcceptTransferRequest{
			WarehouseID:     warehouse.ID,
			ProductMappings: map[uuid.UUID]uuid.UUID{item.ID: chosen.ID},
		})

		require.NoError(t, err)
		assert.Equal(t, ResolutionMapped, resp.Resolutions[0].Resolution)
		assert.Equal(t, chosen.ID, resp.Resolutions[0].ProductID)
		assert.True(t, chosen.CostPrice.Equal(item.SalePrice))
		// The explicit choice bypasses the recorded-mapping lookup
		f.tx.mappings.AssertNotCalled(t, "FindMapping", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		f.tx.mappings.AssertExpectations(t)
	})

	t.Run("rejects a mapping to a product outside the receiver's catalog", func(t *testing.T) {
		f, _, receiverID, transfer, warehouse := setup(t)
		item := &transfer.Items[0]
		strangerProductID := uuid.New()

		f.tx.products.On("FindByID", ctx, receiverID, strangerProductID).Return(nil, shared.ErrNotFound)

		_, err := f.service.Accept(ctx, receiverID, uuid.New(), transfer.ID, AcceptTransferRequest{
			WarehouseID:     warehouse.ID,
			ProductMappings: map[uuid.UUID]uuid.UUID{item.ID: strangerProductID},
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		f.tx.stocks.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("falls back to exact name match and records the mapping", func(t *testing.T) {
		f, senderID, receiverID, transfer, warehouse := setup(t)
		item := &transfer.Items[0]

		uom := testUOM(t, receiverID)
		product := testProduct(t, receiverID, uom.ID, item.ProductName)
		stock := stockWith(receiverID, warehouse.ID, product.ID, decimal.NewFromInt(5), decimal.NewFromInt(95))

		f.tx.mappings.On("FindMapping", ctx, senderID, receiverID, item.ProductID).Return(nil, shared.ErrNotFound)
		f.tx.products.On("FindByExactName", ctx, receiverID, item.ProductName).Return(product, nil)
		f.tx.products.On("Save", ctx, product).Return(nil)
		f.tx.mappings.On("Save", ctx, mock.MatchedBy(func(m *sharing.PartnerProductMapping) bool {
			return m.SenderProductID == item.ProductID && m.ReceiverProductID == product.ID
		})).Return(nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, receiverID, product.ID, warehouse.ID).Return(stock, nil)
		f.tx.stocks.On("Save", ctx, stock).Return(nil)

		resp, err := f.service.Accept(ctx, receiverID, uuid.New(), transfer.ID, AcceptTransferRequest{WarehouseID: warehouse.ID})

		require.NoError(t, err)
		assert.Equal(t, ResolutionMatched, resp.Resolutions[0].Resolution)
		f.tx.mappings.AssertExpectations(t)
	})

	t.Run("creates the product when nothing matches", func(t *testing.T) {
		f, senderID, receiverID, transfer, warehouse := setup(t)
		item := &transfer.Items[0]

		uom := testUOM(t, receiverID)

		f.tx.mappings.On("FindMapping", ctx, senderID, receiverID, item.ProductID).Return(nil, shared.ErrNotFound)
		f.tx.products.On("FindByExactName", ctx, receiverID, item.ProductName).Return(nil, shared.ErrNotFound)
		f.tx.uoms.On("FindBySymbol", ctx, receiverID, item.UOMSymbol).Return(uom, nil)

		var created *catalog.Product
		f.tx.products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).
			Run(func(args mock.Arguments) { created = args.Get(1).(*catalog.Product) }).
			Return(nil)
		f.tx.mappings.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerProductMapping")).Return(nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, receiverID, mock.AnythingOfType("uuid.UUID"), warehouse.ID).
			Return(nil, shared.ErrNotFound)

		var credited *inventory.Stock
		f.tx.stocks.On("Save", ctx, mock.AnythingOfType("*inventory.Stock")).
			Run(func(args mock.Arguments) { credited = args.Get(1).(*inventory.Stock) }).
			Return(nil)

		resp, err := f.service.Accept(ctx, receiverID, uuid.New(), transfer.ID, AcceptTransferRequest{WarehouseID: warehouse.ID})

		require.NoError(t, err)
		assert.Equal(t, ResolutionCreated, resp.Resolutions[0].Resolution)
		require.NotNil(t, created)
		assert.Equal(t, item.ProductName, created.Name)
		assert.Equal(t, item.Article, created.Article)
		assert.True(t, created.CostPrice.Equal(item.SalePrice))
		require.NotNil(t, credited)
		// Fresh stock row starts at the transfer quantity and price
		assert.True(t, credited.Quantity.Equal(item.BaseQuantity))
		assert.True(t, credited.AverageCost.Equal(item.SalePrice))
	})

	t.Run("sender cannot accept its own transfer", func(t *testing.T) {
		f, senderID, _, transfer, _ := setup(t)
		warehouse := testWarehouse(t, senderID)
		f.warehouseRepo.On("FindByID", ctx, senderID, warehouse.ID).Return(warehouse, nil)

		_, err := f.service.Accept(ctx, senderID, uuid.New(), transfer.ID, AcceptTransferRequest{WarehouseID: warehouse.ID})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_RECEIVER", domainErr.Code)
	})
}

func TestTransferService_RejectAndCancel(t *testing.T) {
	ctx := context.Background()

	t.Run("reject restores the sender's stock at its current average", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)
		item := &transfer.Items[0]
		stock := stockWith(senderID, transfer.SenderWarehouseID, item.ProductID, decimal.NewFromInt(40), decimal.NewFromInt(80))

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.tenantRepo.On("FindByID", ctx, receiverID).Return(testTenant(t, "Receiver Co"), nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, senderID, item.ProductID, transfer.SenderWarehouseID).Return(stock, nil)
		f.tx.stocks.On("Save", ctx, stock).Return(nil)
		f.tx.movements.On("Save", ctx, mock.MatchedBy(func(m *inventory.StockMovement) bool {
			return m.Type == inventory.MovementTypeTransferIn && m.TenantID == senderID
		})).Return(nil)
		f.tx.transfers.On("Save", ctx, transfer).Return(nil)
		f.tx.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).Return(nil)

		_, err := f.service.Reject(ctx, receiverID, transfer.ID, RejectTransferRequest{Reason: "wrong goods"})

		require.NoError(t, err)
		assert.Equal(t, sharing.TransferStatusRejected, transfer.Status)
		assert.Equal(t, "wrong goods", transfer.RejectReason)
		assert.True(t, stock.Quantity.Equal(decimal.NewFromInt(50)))
		// Returning at the running average leaves valuation untouched
		assert.True(t, stock.AverageCost.Equal(decimal.NewFromInt(80)))
	})

	t.Run("only the sender can cancel", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)

		_, err := f.service.Cancel(ctx, receiverID, transfer.ID)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "NOT_SENDER", domainErr.Code)
	})

	t.Run("cancel restores stock and notifies the receiver", func(t *testing.T) {
		f := newTransferServiceFixture()
		senderID, receiverID := uuid.New(), uuid.New()
		transfer := pendingTransfer(t, senderID, receiverID)
		item := &transfer.Items[0]
		stock := stockWith(senderID, transfer.SenderWarehouseID, item.ProductID, decimal.NewFromInt(40), decimal.NewFromInt(80))

		f.transferRepo.On("FindByID", ctx, transfer.ID).Return(transfer, nil)
		f.tenantRepo.On("FindByID", ctx, senderID).Return(testTenant(t, "Sender Co"), nil)
		f.tx.stocks.On("FindByProductAndWarehouse", ctx, senderID, item.ProductID, transfer.SenderWarehouseID).Return(stock, nil)
		f.tx.stocks.On("Save", ctx, stock).Return(nil)
		f.tx.movements.On("Save", ctx, mock.AnythingOfType("*inventory.StockMovement")).Return(nil)
		f.tx.transfers.On("Save", ctx, transfer).Return(nil)

		var note *sharing.PartnerNotification
		f.tx.notifications.On("Save", ctx, mock.AnythingOfType("*sharing.PartnerNotification")).
			Run(func(args mock.Arguments) { note = args.Get(1).(*sharing.PartnerNotification) }).
			Return(nil)

		_, err := f.service.Cancel(ctx, senderID, transfer.ID)

		require.NoError(t, err)
		assert.Equal(t, sharing.TransferStatusCancelled, transfer.Status)
		require.NotNil(t, note)
		assert.Equal(t, receiverID, note.TenantID)
		assert.Equal(t, sharing.NotificationTransferCancelled, note.Type)
	})
}
