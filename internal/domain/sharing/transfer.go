package sharing

import (
	"fmt"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransferStatus represents the status of a cross-tenant transfer
type TransferStatus string

const (
	TransferStatusPending   TransferStatus = "pending"
	TransferStatusAccepted  TransferStatus = "accepted"
	TransferStatusRejected  TransferStatus = "rejected"
	TransferStatusCancelled TransferStatus = "cancelled"
)

// TransferNumberPrefix is the prefix of every transfer number
const TransferNumberPrefix = "CT"

// CrossTenantTransfer moves products from the sender tenant's warehouse
// into a receiver tenant's warehouse. Creation is not a draft: the
// sender's stock is debited when the transfer is created, and the items
// sit in limbo until the receiver accepts (credit receiver) or rejects
// (credit sender back).
//
// LastEditedByTenantID is the turn-taking marker. A party that changed
// the terms cannot also be the party that approves them: the receiver
// may only accept while the marker points at the sender, and only the
// non-marked party may confirm an edit.
//
// Transfer rows belong to both tenants at once, so the aggregate is not
// tenant-scoped and the automatic tenant filter never applies to it.
type CrossTenantTransfer struct {
	shared.BaseAggregateRoot
	TransferNumber       string         `gorm:"type:varchar(30);not null;uniqueIndex"`
	SenderTenantID       uuid.UUID      `gorm:"type:uuid;not null;index"`
	SenderWarehouseID    uuid.UUID      `gorm:"type:uuid;not null"`
	SenderUserID         uuid.UUID      `gorm:"type:uuid;not null"`
	ReceiverTenantID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	ReceiverWarehouseID  *uuid.UUID     `gorm:"type:uuid"`
	ReceiverUserID       *uuid.UUID     `gorm:"type:uuid"`
	Status               TransferStatus `gorm:"type:varchar(20);not null;default:'pending';index"`
	LastEditedByTenantID uuid.UUID      `gorm:"type:uuid;not null"`
	Notes                string         `gorm:"type:text"`
	RejectReason         string         `gorm:"type:text"`
	RespondedAt          *time.Time
	Items                []CrossTenantTransferItem `gorm:"foreignKey:TransferID"`
}

// TableName returns the table name for GORM
func (CrossTenantTransfer) TableName() string {
	return "cross_tenant_transfers"
}

// CrossTenantTransferItem is one line of a transfer. Quantity is what
// the sender entered in their chosen unit; BaseQuantity is the
// authoritative figure for stock arithmetic, converted via the sender's
// product-unit conversion table at creation time. ProductName, Article,
// Barcode and UOMSymbol snapshot the sender's product so the receiver
// can resolve or recreate it without reaching into the sender's catalog
// again.
type CrossTenantTransferItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransferID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID    uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName  string          `gorm:"type:varchar(300);not null"`
	Article      string          `gorm:"type:varchar(100)"`
	Barcode      string          `gorm:"type:varchar(100)"`
	UOMID        uuid.UUID       `gorm:"type:uuid;not null"`
	UOMSymbol    string          `gorm:"type:varchar(20);not null"`
	Quantity     decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	BaseQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	SalePrice    decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	SalePriceUSD decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	Total        decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	CreatedAt    time.Time       `gorm:"not null"`
	UpdatedAt    time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (CrossTenantTransferItem) TableName() string {
	return "cross_tenant_transfer_items"
}

// NewTransferItem builds a transfer line. The total is computed from
// the base quantity and sale price since base quantity is what the
// receiver capitalizes.
func NewTransferItem(
	productID uuid.UUID, productName, article, barcode string,
	uomID uuid.UUID, uomSymbol string,
	quantity, baseQuantity, salePrice, salePriceUSD decimal.Decimal,
) (*CrossTenantTransferItem, error) {
	if !quantity.IsPositive() || !baseQuantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
	}
	if salePrice.IsNegative() || salePriceUSD.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}
	if productName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Item product name is required")
	}

	now := time.Now()
	return &CrossTenantTransferItem{
		ID:           uuid.New(),
		ProductID:    productID,
		ProductName:  productName,
		Article:      article,
		Barcode:      barcode,
		UOMID:        uomID,
		UOMSymbol:    uomSymbol,
		Quantity:     quantity,
		BaseQuantity: baseQuantity,
		SalePrice:    salePrice,
		SalePriceUSD: salePriceUSD,
		Total:        baseQuantity.Mul(salePrice).Round(4),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// SetSalePrice changes the agreed price and recomputes the total
func (i *CrossTenantTransferItem) SetSalePrice(salePrice, salePriceUSD decimal.Decimal) error {
	if salePrice.IsNegative() || salePriceUSD.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
	}

	i.SalePrice = salePrice
	i.SalePriceUSD = salePriceUSD
	i.Total = i.BaseQuantity.Mul(salePrice).Round(4)
	i.UpdatedAt = time.Now()

	return nil
}

// FormatTransferNumber renders a transfer number from its date and
// daily sequence, e.g. CT-20260831-007.
func FormatTransferNumber(date time.Time, sequence int) string {
	return fmt.Sprintf("%s-%s-%03d", TransferNumberPrefix, date.Format("20060102"), sequence)
}

// TransferNumberDatePrefix returns the prefix shared by all transfer
// numbers of one day, e.g. CT-20260831.
func TransferNumberDatePrefix(date time.Time) string {
	return fmt.Sprintf("%s-%s", TransferNumberPrefix, date.Format("20060102"))
}

// NewCrossTenantTransfer creates a pending transfer authored by the
// sender. Stock debiting is the caller's responsibility and must happen
// in the same transaction that persists the transfer.
func NewCrossTenantTransfer(
	transferNumber string,
	senderTenantID, senderWarehouseID, senderUserID, receiverTenantID uuid.UUID,
	notes string,
	items []CrossTenantTransferItem,
) (*CrossTenantTransfer, error) {
	if senderTenantID == receiverTenantID {
		return nil, shared.NewDomainError("SELF_TRANSFER", "Cannot transfer to your own tenant")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("NO_ITEMS", "Transfer requires at least one item")
	}
	if transferNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transfer number is required")
	}

	transfer := &CrossTenantTransfer{
		BaseAggregateRoot:    shared.NewBaseAggregateRoot(),
		TransferNumber:       transferNumber,
		SenderTenantID:       senderTenantID,
		SenderWarehouseID:    senderWarehouseID,
		SenderUserID:         senderUserID,
		ReceiverTenantID:     receiverTenantID,
		Status:               TransferStatusPending,
		LastEditedByTenantID: senderTenantID,
		Notes:                notes,
		Items:                items,
	}
	for idx := range transfer.Items {
		transfer.Items[idx].TransferID = transfer.ID
	}

	transfer.AddDomainEvent(NewTransferCreatedEvent(transfer))

	return transfer, nil
}

// Involves reports whether the tenant is a party to this transfer
func (t *CrossTenantTransfer) Involves(tenantID uuid.UUID) bool {
	return t.SenderTenantID == tenantID || t.ReceiverTenantID == tenantID
}

// CounterpartOf returns the other tenant of the pair
func (t *CrossTenantTransfer) CounterpartOf(tenantID uuid.UUID) uuid.UUID {
	if t.SenderTenantID == tenantID {
		return t.ReceiverTenantID
	}
	return t.SenderTenantID
}

// TotalValue sums the item totals
func (t *CrossTenantTransfer) TotalValue() decimal.Decimal {
	total := decimal.Zero
	for i := range t.Items {
		total = total.Add(t.Items[i].Total)
	}
	return total
}

// FindItem returns the item with the given id, or nil
func (t *CrossTenantTransfer) FindItem(itemID uuid.UUID) *CrossTenantTransferItem {
	for i := range t.Items {
		if t.Items[i].ID == itemID {
			return &t.Items[i]
		}
	}
	return nil
}

// Edit applies a price/notes change by one of the parties while the
// transfer is pending. Stock is never touched by an edit. The turn
// marker flips to the editor, which blocks the editor from approving
// its own terms until the counterparty responds.
func (t *CrossTenantTransfer) Edit(editorTenantID uuid.UUID, notes *string) error {
	if !t.Involves(editorTenantID) {
		return shared.NewDomainError("NOT_PARTY", "Only a party to the transfer can edit it")
	}
	if t.Status != TransferStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot edit a transfer in status %s", t.Status)
	}

	if notes != nil {
		t.Notes = *notes
	}
	t.LastEditedByTenantID = editorTenantID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// ConfirmEdit acknowledges the counterparty's last edit. Only the
// party that did not make the last edit may confirm, which enforces
// strict alternation.
func (t *CrossTenantTransfer) ConfirmEdit(confirmerTenantID uuid.UUID) error {
	if !t.Involves(confirmerTenantID) {
		return shared.NewDomainError("NOT_PARTY", "Only a party to the transfer can confirm it")
	}
	if t.Status != TransferStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot confirm a transfer in status %s", t.Status)
	}
	if t.LastEditedByTenantID == confirmerTenantID {
		return shared.ErrNotYourTurn
	}

	t.LastEditedByTenantID = confirmerTenantID
	t.UpdatedAt = time.Now()
	t.IncrementVersion()

	return nil
}

// Accept transitions the transfer to accepted. Only the receiver may
// accept, and only while the turn marker points away from it: a
// receiver that edited the terms last must wait for the sender to
// confirm. Stock crediting is the caller's responsibility within the
// same transaction.
func (t *CrossTenantTransfer) Accept(receiverTenantID, receiverWarehouseID, receiverUserID uuid.UUID) error {
	if receiverTenantID != t.ReceiverTenantID {
		return shared.NewDomainError("NOT_RECEIVER", "Only the receiving tenant can accept a transfer")
	}
	if t.Status != TransferStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot accept a transfer in status %s", t.Status)
	}
	if t.LastEditedByTenantID == receiverTenantID {
		return shared.ErrNotYourTurn
	}

	now := time.Now()
	t.Status = TransferStatusAccepted
	t.ReceiverWarehouseID = &receiverWarehouseID
	t.ReceiverUserID = &receiverUserID
	t.RespondedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransferAcceptedEvent(t))

	return nil
}

// Reject transitions the transfer to rejected with an optional reason.
// Only the receiver may reject. Crediting the sender's stock back is
// the caller's responsibility within the same transaction.
func (t *CrossTenantTransfer) Reject(receiverTenantID uuid.UUID, reason string) error {
	if receiverTenantID != t.ReceiverTenantID {
		return shared.NewDomainError("NOT_RECEIVER", "Only the receiving tenant can reject a transfer")
	}
	if t.Status != TransferStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot reject a transfer in status %s", t.Status)
	}

	now := time.Now()
	t.Status = TransferStatusRejected
	t.RejectReason = reason
	t.RespondedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	t.AddDomainEvent(NewTransferRejectedEvent(t))

	return nil
}

// Cancel withdraws a pending transfer. Only the sender may cancel.
// Restoring the sender's stock is the caller's responsibility within
// the same transaction.
func (t *CrossTenantTransfer) Cancel(senderTenantID uuid.UUID) error {
	if senderTenantID != t.SenderTenantID {
		return shared.NewDomainError("NOT_SENDER", "Only the sending tenant can cancel a transfer")
	}
	if t.Status != TransferStatusPending {
		return shared.NewDomainErrorf("INVALID_STATE", "Cannot cancel a transfer in status %s", t.Status)
	}

	now := time.Now()
	t.Status = TransferStatusCancelled
	t.RespondedAt = &now
	t.UpdatedAt = now
	t.IncrementVersion()

	return nil
}

// IsFinal reports whether the transfer reached a terminal state
func (t *CrossTenantTransfer) IsFinal() bool {
	return t.Status != TransferStatusPending
}
