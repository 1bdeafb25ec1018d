package sharing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/identity"
	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/partner"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/crosserp/backend/internal/infrastructure/persistence/tenant"
)

// TransferService handles the cross-tenant transfer lifecycle. Stock
// changes and transfer writes always share one transaction so a failed
// debit or credit aborts the whole operation.
type TransferService struct {
	partnershipRepo  sharing.PartnershipRepository
	transferRepo     sharing.TransferRepository
	notificationRepo sharing.NotificationRepository
	warehouseRepo    partner.WarehouseRepository
	tenantRepo       identity.TenantRepository
	txScope          TransactionScope
}

// NewTransferService creates a new TransferService
func NewTransferService(
	partnershipRepo sharing.PartnershipRepository,
	transferRepo sharing.TransferRepository,
	notificationRepo sharing.NotificationRepository,
	warehouseRepo partner.WarehouseRepository,
	tenantRepo identity.TenantRepository,
	txScope TransactionScope,
) *TransferService {
	return &TransferService{
		partnershipRepo:  partnershipRepo,
		transferRepo:     transferRepo,
		notificationRepo: notificationRepo,
		warehouseRepo:    warehouseRepo,
		tenantRepo:       tenantRepo,
		txScope:          txScope,
	}
}

// Create sends stock to a partner. All item debits and the transfer row
// are committed together or not at all.
func (s *TransferService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateTransferRequest) (*TransferResponse, error) {
	if _, err := s.partnershipRepo.FindAcceptedForPair(ctx, tenantID, req.ReceiverTenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.ErrNoPartnership
		}
		return nil, err
	}

	if _, err := s.tenantRepo.FindActiveByID(ctx, req.ReceiverTenantID); err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("NOT_FOUND", "Receiving company not found")
		}
		return nil, err
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, tenantID, req.SenderWarehouseID)
	if err != nil {
		return nil, err
	}
	if !warehouse.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Sender warehouse is not active")
	}

	var transfer *sharing.CrossTenantTransfer
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		items := make([]sharing.CrossTenantTransferItem, 0, len(req.Items))
		for _, line := range req.Items {
			item, err := s.buildItem(ctx, repos, tenantID, line)
			if err != nil {
				return err
			}
			items = append(items, *item)
		}

		now := time.Now()
		seq, err := repos.Transfers().NextSequenceForPrefix(ctx, sharing.TransferNumberDatePrefix(now))
		if err != nil {
			return err
		}

		transfer, err = sharing.NewCrossTenantTransfer(
			sharing.FormatTransferNumber(now, seq),
			tenantID, req.SenderWarehouseID, userID, req.ReceiverTenantID,
			req.Notes, items,
		)
		if err != nil {
			return err
		}

		for i := range transfer.Items {
			if err := s.debitItem(ctx, repos, tenantID, req.SenderWarehouseID, transfer.ID, &transfer.Items[i]); err != nil {
				return err
			}
		}

		if err := repos.Transfers().Save(ctx, transfer); err != nil {
			return err
		}

		return s.notifyTx(ctx, repos, req.ReceiverTenantID, tenantID,
			sharing.NotificationTransferIncoming, transfer.ID,
			fmt.Sprintf("Incoming transfer %s from %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))
	})
	if err != nil {
		return nil, err
	}

	return ToTransferResponse(transfer, tenantID), nil
}

// buildItem snapshots one product line into a transfer item, converting
// the requested quantity to the product's base unit.
func (s *TransferService) buildItem(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, line CreateTransferItemRequest) (*sharing.CrossTenantTransferItem, error) {
	product, err := repos.Products().FindByID(ctx, tenantID, line.ProductID)
	if err != nil {
		return nil, err
	}
	uom, err := repos.UOMs().FindByID(ctx, tenantID, line.UOMID)
	if err != nil {
		return nil, err
	}

	baseQuantity := line.Quantity
	if uom.ID != product.BaseUOMID {
		conversion, err := repos.UOMs().FindConversion(ctx, tenantID, product.ID, uom.ID)
		if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		// A missing conversion row means factor 1
		if conversion != nil {
			baseQuantity = conversion.ToBaseQuantity(line.Quantity)
		}
	}

	salePrice := product.SalePrice
	if line.SalePrice != nil {
		salePrice = *line.SalePrice
	}
	salePriceUSD := decimal.Zero
	if line.SalePriceUSD != nil {
		salePriceUSD = *line.SalePriceUSD
	}

	return sharing.NewTransferItem(
		product.ID, product.Name, product.Article, product.Barcode,
		uom.ID, uom.Symbol,
		line.Quantity, baseQuantity, salePrice, salePriceUSD,
	)
}

// debitItem takes the item's base quantity out of the sender's stock
// and writes the outbound movement.
func (s *TransferService) debitItem(ctx context.Context, repos TransactionalRepositories, tenantID, warehouseID, transferID uuid.UUID, item *sharing.CrossTenantTransferItem) error {
	stock, err := repos.Stocks().FindByProductAndWarehouse(ctx, tenantID, item.ProductID, warehouseID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return insufficientStockError(item.ProductName, decimal.Zero)
		}
		return err
	}

	before := stock.Quantity
	if err := repos.Stocks().DebitConditional(ctx, tenantID, item.ProductID, warehouseID, item.BaseQuantity); err != nil {
		if errors.Is(err, shared.ErrInsufficientStock) {
			return insufficientStockError(item.ProductName, stock.AvailableQuantity())
		}
		return err
	}

	movement, err := inventory.NewStockMovement(
		tenantID, item.ProductID, warehouseID,
		inventory.MovementTypeTransferOut,
		item.BaseQuantity, stock.AverageCost, before, before.Sub(item.BaseQuantity),
		inventory.ReferenceTypeCrossTransfer, transferID,
		"",
	)
	if err != nil {
		return err
	}
	return repos.Movements().Save(ctx, movement)
}

// insufficientStockError names the failing product and what is left so
// the sender knows which line to shrink.
func insufficientStockError(productName string, available decimal.Decimal) error {
	return shared.NewDomainError("INSUFFICIENT_STOCK",
		fmt.Sprintf("Not enough stock for '%s'. Available: %s", productName, available.String()))
}

// Edit changes a pending transfer's notes or item prices and passes the
// confirmation turn to the other party.
func (s *TransferService) Edit(ctx context.Context, tenantID, transferID uuid.UUID, req EditTransferRequest) (*TransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	if err := transfer.Edit(tenantID, req.Notes); err != nil {
		return nil, err
	}
	for _, update := range req.Prices {
		item := transfer.FindItem(update.ItemID)
		if item == nil {
			return nil, shared.NewDomainError("NOT_FOUND", "Transfer item not found")
		}
		salePriceUSD := item.SalePriceUSD
		if update.SalePriceUSD != nil {
			salePriceUSD = *update.SalePriceUSD
		}
		if err := item.SetSalePrice(update.SalePrice, salePriceUSD); err != nil {
			return nil, err
		}
	}

	if err := s.transferRepo.Save(ctx, transfer); err != nil {
		return nil, err
	}

	s.notify(ctx, transfer.CounterpartOf(tenantID), tenantID,
		sharing.NotificationTransferEdited, transfer.ID,
		fmt.Sprintf("Transfer %s was edited by %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))

	return ToTransferResponse(transfer, tenantID), nil
}

// ConfirmEdit acknowledges the other party's last edit
func (s *TransferService) ConfirmEdit(ctx context.Context, tenantID, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	if err := transfer.ConfirmEdit(tenantID); err != nil {
		return nil, err
	}
	if err := s.transferRepo.Save(ctx, transfer); err != nil {
		return nil, err
	}

	s.notify(ctx, transfer.CounterpartOf(tenantID), tenantID,
		sharing.NotificationTransferConfirmed, transfer.ID,
		fmt.Sprintf("Transfer %s was confirmed by %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))

	return ToTransferResponse(transfer, tenantID), nil
}

// Accept takes the transfer into the receiver's stock. Every item is
// resolved to a product in the receiver's catalog: a caller-supplied
// mapping wins, then a recorded mapping, then an exact name match, then
// a new product is created. The chosen product is credited at the
// transfer price.
func (s *TransferService) Accept(ctx context.Context, tenantID, userID uuid.UUID, transferID uuid.UUID, req AcceptTransferRequest) (*AcceptTransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	warehouse, err := s.warehouseRepo.FindByID(ctx, tenantID, req.WarehouseID)
	if err != nil {
		return nil, err
	}
	if !warehouse.IsActive() {
		return nil, shared.NewDomainError("INVALID_STATE", "Receiving warehouse is not active")
	}

	if err := transfer.Accept(tenantID, req.WarehouseID, userID); err != nil {
		return nil, err
	}

	resolutions := make([]ItemResolutionResult, 0, len(transfer.Items))
	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		for i := range transfer.Items {
			item := &transfer.Items[i]

			product, resolution, err := s.resolveProduct(ctx, repos, transfer.SenderTenantID, tenantID, item, req.ProductMappings[item.ID])
			if err != nil {
				return err
			}
			if err := s.creditItem(ctx, repos, tenantID, req.WarehouseID, transfer.ID, product.ID, item, inventory.MovementTypeTransferIn); err != nil {
				return err
			}

			resolutions = append(resolutions, ItemResolutionResult{
				ItemID:      item.ID,
				ProductID:   product.ID,
				ProductName: product.Name,
				Resolution:  resolution,
			})
		}

		if err := repos.Transfers().Save(ctx, transfer); err != nil {
			return err
		}

		return s.notifyTx(ctx, repos, transfer.SenderTenantID, tenantID,
			sharing.NotificationTransferAccepted, transfer.ID,
			fmt.Sprintf("Transfer %s was accepted by %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))
	})
	if err != nil {
		return nil, err
	}

	return &AcceptTransferResponse{
		Transfer:    ToTransferResponse(transfer, tenantID),
		Resolutions: resolutions,
	}, nil
}

// resolveProduct finds or creates the receiver-side product for an
// incoming item and keeps the partner product mapping current. A
// non-nil explicitProductID is the receiver directing the item into an
// existing product, which also becomes the remembered mapping.
func (s *TransferService) resolveProduct(ctx context.Context, repos TransactionalRepositories, senderTenantID, receiverTenantID uuid.UUID, item *sharing.CrossTenantTransferItem, explicitProductID uuid.UUID) (*catalog.Product, ProductResolution, error) {
	if explicitProductID != uuid.Nil {
		product, err := repos.Products().FindByID(ctx, receiverTenantID, explicitProductID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return nil, "", shared.NewDomainError("NOT_FOUND", "Mapped product not found in your catalog")
			}
			return nil, "", err
		}
		if err := product.SetCostPrice(item.SalePrice); err != nil {
			return nil, "", err
		}
		if err := repos.Products().Save(ctx, product); err != nil {
			return nil, "", err
		}
		mapping, err := sharing.NewPartnerProductMapping(senderTenantID, receiverTenantID, item.ProductID, product.ID)
		if err != nil {
			return nil, "", err
		}
		if err := repos.Mappings().Save(ctx, mapping); err != nil {
			return nil, "", err
		}
		return product, ResolutionMapped, nil
	}

	if mapping, err := repos.Mappings().FindMapping(ctx, senderTenantID, receiverTenantID, item.ProductID); err == nil {
		product, err := repos.Products().FindByID(ctx, receiverTenantID, mapping.ReceiverProductID)
		if err == nil {
			if err := product.SetCostPrice(item.SalePrice); err != nil {
				return nil, "", err
			}
			if err := repos.Products().Save(ctx, product); err != nil {
				return nil, "", err
			}
			return product, ResolutionMapped, nil
		}
		if !errors.Is(err, shared.ErrNotFound) {
			return nil, "", err
		}
		// Mapped product was deleted; fall through and re-resolve
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, "", err
	}

	product, err := repos.Products().FindByExactName(ctx, receiverTenantID, item.ProductName)
	resolution := ResolutionMatched
	switch {
	case err == nil:
		if err := product.SetCostPrice(item.SalePrice); err != nil {
			return nil, "", err
		}
	case errors.Is(err, shared.ErrNotFound):
		product, err = s.createProduct(ctx, repos, receiverTenantID, item)
		if err != nil {
			return nil, "", err
		}
		resolution = ResolutionCreated
	default:
		return nil, "", err
	}

	if err := repos.Products().Save(ctx, product); err != nil {
		return nil, "", err
	}

	mapping, err := sharing.NewPartnerProductMapping(senderTenantID, receiverTenantID, item.ProductID, product.ID)
	if err != nil {
		return nil, "", err
	}
	if err := repos.Mappings().Save(ctx, mapping); err != nil {
		return nil, "", err
	}

	return product, resolution, nil
}

// createProduct builds a receiver-side product from the item snapshot.
// The base unit is picked by symbol, falling back to the tenant's first
// unit, and the transfer price becomes the product's cost.
func (s *TransferService) createProduct(ctx context.Context, repos TransactionalRepositories, tenantID uuid.UUID, item *sharing.CrossTenantTransferItem) (*catalog.Product, error) {
	uom, err := repos.UOMs().FindBySymbol(ctx, tenantID, item.UOMSymbol)
	if errors.Is(err, shared.ErrNotFound) {
		uom, err = repos.UOMs().FindFirst(ctx, tenantID)
	}
	if errors.Is(err, shared.ErrNotFound) {
		uom, err = catalog.NewUnitOfMeasure(tenantID, item.UOMSymbol, item.UOMSymbol)
		if err != nil {
			return nil, err
		}
		if err := repos.UOMs().Save(ctx, uom); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	product, err := catalog.NewProduct(tenantID, uom.ID, item.ProductName)
	if err != nil {
		return nil, err
	}
	if err := product.SetIdentifiers(item.Article, item.Barcode); err != nil {
		return nil, err
	}
	if err := product.SetPrices(item.SalePrice, item.SalePrice); err != nil {
		return nil, err
	}
	return product, nil
}

// creditItem adds the item's base quantity to a stock row, creating the
// row if needed, and writes the inbound movement.
func (s *TransferService) creditItem(ctx context.Context, repos TransactionalRepositories, tenantID, warehouseID, transferID, productID uuid.UUID, item *sharing.CrossTenantTransferItem, movementType inventory.MovementType) error {
	stock, err := repos.Stocks().FindByProductAndWarehouse(ctx, tenantID, productID, warehouseID)
	if errors.Is(err, shared.ErrNotFound) {
		stock = inventory.NewStock(tenantID, warehouseID, productID)
	} else if err != nil {
		return err
	}

	unitCost := item.SalePrice
	before := stock.Quantity
	if err := stock.Credit(item.BaseQuantity, unitCost); err != nil {
		return err
	}
	if err := repos.Stocks().Save(ctx, stock); err != nil {
		return err
	}

	movement, err := inventory.NewStockMovement(
		tenantID, productID, warehouseID,
		movementType,
		item.BaseQuantity, unitCost, before, stock.Quantity,
		inventory.ReferenceTypeCrossTransfer, transferID,
		"",
	)
	if err != nil {
		return err
	}
	return repos.Movements().Save(ctx, movement)
}

// Reject declines an incoming transfer and restores the sender's stock
func (s *TransferService) Reject(ctx context.Context, tenantID, transferID uuid.UUID, req RejectTransferRequest) (*TransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	if err := transfer.Reject(tenantID, req.Reason); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.restoreSenderStock(ctx, repos, transfer); err != nil {
			return err
		}
		if err := repos.Transfers().Save(ctx, transfer); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, transfer.SenderTenantID, tenantID,
			sharing.NotificationTransferRejected, transfer.ID,
			fmt.Sprintf("Transfer %s was rejected by %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))
	})
	if err != nil {
		return nil, err
	}

	return ToTransferResponse(transfer, tenantID), nil
}

// Cancel withdraws a pending transfer. Only the sender may cancel, and
// the debited stock is restored exactly like reject.
func (s *TransferService) Cancel(ctx context.Context, tenantID, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	if err := transfer.Cancel(tenantID); err != nil {
		return nil, err
	}

	err = s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		if err := s.restoreSenderStock(ctx, repos, transfer); err != nil {
			return err
		}
		if err := repos.Transfers().Save(ctx, transfer); err != nil {
			return err
		}
		return s.notifyTx(ctx, repos, transfer.ReceiverTenantID, tenantID,
			sharing.NotificationTransferCancelled, transfer.ID,
			fmt.Sprintf("Transfer %s was cancelled by %s", transfer.TransferNumber, s.tenantName(ctx, tenantID)))
	})
	if err != nil {
		return nil, err
	}

	return ToTransferResponse(transfer, tenantID), nil
}

// restoreSenderStock credits all items back to the sender warehouse and
// writes inbound movements mirroring the original debits.
func (s *TransferService) restoreSenderStock(ctx context.Context, repos TransactionalRepositories, transfer *sharing.CrossTenantTransfer) error {
	for i := range transfer.Items {
		item := &transfer.Items[i]

		stock, err := repos.Stocks().FindByProductAndWarehouse(ctx, transfer.SenderTenantID, item.ProductID, transfer.SenderWarehouseID)
		if errors.Is(err, shared.ErrNotFound) {
			stock = inventory.NewStock(transfer.SenderTenantID, transfer.SenderWarehouseID, item.ProductID)
		} else if err != nil {
			return err
		}

		// Credit at the current average so the return does not move the
		// valuation; a fresh row falls back to the transfer price.
		unitCost := stock.AverageCost
		if unitCost.IsZero() {
			unitCost = item.SalePrice
		}

		before := stock.Quantity
		if err := stock.Credit(item.BaseQuantity, unitCost); err != nil {
			return err
		}
		if err := repos.Stocks().Save(ctx, stock); err != nil {
			return err
		}

		movement, err := inventory.NewStockMovement(
			transfer.SenderTenantID, item.ProductID, transfer.SenderWarehouseID,
			inventory.MovementTypeTransferIn,
			item.BaseQuantity, unitCost, before, stock.Quantity,
			inventory.ReferenceTypeCrossTransfer, transfer.ID,
			"",
		)
		if err != nil {
			return err
		}
		if err := repos.Movements().Save(ctx, movement); err != nil {
			return err
		}
	}
	return nil
}

// GetOutgoing lists transfers sent by the caller
func (s *TransferService) GetOutgoing(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[TransferResponse], error) {
	page, err := s.transferRepo.FindOutgoing(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	return mapTransferPage(page, tenantID), nil
}

// GetIncoming lists transfers addressed to the caller
func (s *TransferService) GetIncoming(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (*shared.Paginated[TransferResponse], error) {
	page, err := s.transferRepo.FindIncoming(ctx, tenantID, filter)
	if err != nil {
		return nil, err
	}
	return mapTransferPage(page, tenantID), nil
}

// GetDetail loads a transfer the caller is party to. The detail view
// carries both parties' company and warehouse names; the counterparty's
// warehouse sits in the other tenant, so the lookups run unscoped.
func (s *TransferService) GetDetail(ctx context.Context, tenantID, transferID uuid.UUID) (*TransferResponse, error) {
	transfer, err := s.loadForParty(ctx, tenantID, transferID)
	if err != nil {
		return nil, err
	}

	resp := ToTransferResponse(transfer, tenantID)
	resp.SenderTenantName = s.tenantName(ctx, transfer.SenderTenantID)
	resp.ReceiverTenantName = s.tenantName(ctx, transfer.ReceiverTenantID)

	_ = tenant.RunUnscoped(ctx, func(ctx context.Context) error {
		if wh, err := s.warehouseRepo.FindByID(ctx, transfer.SenderTenantID, transfer.SenderWarehouseID); err == nil {
			resp.SenderWarehouseName = wh.Name
		}
		if transfer.ReceiverWarehouseID != nil {
			if wh, err := s.warehouseRepo.FindByID(ctx, transfer.ReceiverTenantID, *transfer.ReceiverWarehouseID); err == nil {
				resp.ReceiverWarehouseName = wh.Name
			}
		}
		return nil
	})

	return resp, nil
}

// loadForParty loads a transfer, reporting NOT_FOUND for strangers so
// a transfer's existence leaks nothing to outsiders.
func (s *TransferService) loadForParty(ctx context.Context, tenantID, transferID uuid.UUID) (*sharing.CrossTenantTransfer, error) {
	transfer, err := s.transferRepo.FindByID(ctx, transferID)
	if err != nil {
		return nil, err
	}
	if !transfer.Involves(tenantID) {
		return nil, shared.ErrNotFound
	}
	return transfer, nil
}

func mapTransferPage(page *shared.Paginated[sharing.CrossTenantTransfer], viewerTenantID uuid.UUID) *shared.Paginated[TransferResponse] {
	items := make([]TransferResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToTransferResponse(&page.Items[i], viewerTenantID)
	}
	return &shared.Paginated[TransferResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}

func (s *TransferService) notify(ctx context.Context, recipientID, fromID uuid.UUID, notificationType sharing.NotificationType, referenceID uuid.UUID, message string) {
	notification, err := sharing.NewPartnerNotification(
		recipientID, fromID, notificationType, sharing.ReferenceTransfer, referenceID, message)
	if err != nil {
		return
	}
	_ = s.notificationRepo.Save(ctx, notification)
}

// notifyTx writes a notification inside the surrounding transaction so
// it appears together with the state change it describes.
func (s *TransferService) notifyTx(ctx context.Context, repos TransactionalRepositories, recipientID, fromID uuid.UUID, notificationType sharing.NotificationType, referenceID uuid.UUID, message string) error {
	notification, err := sharing.NewPartnerNotification(
		recipientID, fromID, notificationType, sharing.ReferenceTransfer, referenceID, message)
	if err != nil {
		return err
	}
	return repos.Notifications().Save(ctx, notification)
}

func (s *TransferService) tenantName(ctx context.Context, tenantID uuid.UUID) string {
	t, err := s.tenantRepo.FindByID(ctx, tenantID)
	if err != nil {
		return "A partner company"
	}
	return t.Name
}
