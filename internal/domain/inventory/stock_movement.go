package inventory

import (
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MovementType classifies a stock movement
type MovementType string

const (
	MovementTypeTransferOut MovementType = "transfer_out"
	MovementTypeTransferIn  MovementType = "transfer_in"
	MovementTypeAdjustment  MovementType = "adjustment"
)

// ReferenceType identifies the document that caused a movement
type ReferenceType string

const (
	ReferenceTypeCrossTransfer ReferenceType = "cross_transfer"
	ReferenceTypeManual        ReferenceType = "manual"
)

// StockMovement is an immutable audit record of a single stock change.
// QuantityBefore and QuantityAfter snapshot the stock level around the
// movement so the ledger can be read without replaying it.
type StockMovement struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WarehouseID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Type           MovementType    `gorm:"type:varchar(30);not null;index"`
	Quantity       decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	UnitCost       decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	QuantityBefore decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	QuantityAfter  decimal.Decimal `gorm:"type:decimal(20,4);not null"`
	ReferenceType  ReferenceType   `gorm:"type:varchar(30);not null"`
	ReferenceID    uuid.UUID       `gorm:"type:uuid;index"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (StockMovement) TableName() string {
	return "stock_movements"
}

// NewStockMovement records a stock change against a reference document
func NewStockMovement(
	tenantID, productID, warehouseID uuid.UUID,
	movementType MovementType,
	quantity, unitCost, quantityBefore, quantityAfter decimal.Decimal,
	referenceType ReferenceType,
	referenceID uuid.UUID,
	notes string,
) (*StockMovement, error) {
	if !quantity.IsPositive() {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Movement quantity must be positive")
	}

	return &StockMovement{
		ID:             uuid.New(),
		TenantID:       tenantID,
		ProductID:      productID,
		WarehouseID:    warehouseID,
		Type:           movementType,
		Quantity:       quantity,
		UnitCost:       unitCost,
		QuantityBefore: quantityBefore,
		QuantityAfter:  quantityAfter,
		ReferenceType:  referenceType,
		ReferenceID:    referenceID,
		Notes:          notes,
		CreatedAt:      time.Now(),
	}, nil
}

// IsInbound returns true for movements that increase stock
func (m *StockMovement) IsInbound() bool {
	return m.Type == MovementTypeTransferIn
}
