package inventory

import (
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Stock tracks the on-hand quantity and moving average cost of one
// product in one warehouse. Quantities are kept in the product's base
// unit of measure.
type Stock struct {
	shared.TenantAggregateRoot
	ProductID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_tenant_wh_product,priority:3"`
	WarehouseID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_stock_tenant_wh_product,priority:2"`
	Quantity         decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	ReservedQuantity decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	AverageCost      decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (Stock) TableName() string {
	return "stocks"
}

// NewStock creates an empty stock record for a product in a warehouse
func NewStock(tenantID, warehouseID, productID uuid.UUID) *Stock {
	return &Stock{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		ProductID:           productID,
		WarehouseID:         warehouseID,
		Quantity:            decimal.Zero,
		ReservedQuantity:    decimal.Zero,
		AverageCost:         decimal.Zero,
	}
}

// AvailableQuantity returns quantity on hand minus reservations
func (s *Stock) AvailableQuantity() decimal.Decimal {
	return s.Quantity.Sub(s.ReservedQuantity)
}

// Debit removes quantity from stock. Fails when the available quantity
// (on hand minus reserved) is insufficient. The average cost is not
// changed by a debit.
func (s *Stock) Debit(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Debit quantity must be positive")
	}
	if s.AvailableQuantity().LessThan(quantity) {
		return shared.ErrInsufficientStock
	}

	s.Quantity = s.Quantity.Sub(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Credit adds quantity to stock at the given unit cost and recomputes
// the weighted average cost:
//
//	newAvg = (oldQty*oldAvg + qty*unitCost) / (oldQty + qty)
//
// When the prior quantity is zero or negative the average resets to the
// incoming unit cost.
func (s *Stock) Credit(quantity, unitCost decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Credit quantity must be positive")
	}
	if unitCost.IsNegative() {
		return shared.NewDomainError("INVALID_COST", "Unit cost cannot be negative")
	}

	newQuantity := s.Quantity.Add(quantity)
	if s.Quantity.IsPositive() {
		totalValue := s.Quantity.Mul(s.AverageCost).Add(quantity.Mul(unitCost))
		s.AverageCost = totalValue.Div(newQuantity).Round(4)
	} else {
		s.AverageCost = unitCost
	}

	s.Quantity = newQuantity
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Reserve holds quantity against future debits
func (s *Stock) Reserve(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Reserve quantity must be positive")
	}
	if s.AvailableQuantity().LessThan(quantity) {
		return shared.ErrInsufficientStock
	}

	s.ReservedQuantity = s.ReservedQuantity.Add(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}

// Release frees previously reserved quantity
func (s *Stock) Release(quantity decimal.Decimal) error {
	if !quantity.IsPositive() {
		return shared.NewDomainError("INVALID_QUANTITY", "Release quantity must be positive")
	}
	if s.ReservedQuantity.LessThan(quantity) {
		return shared.NewDomainError("INVALID_QUANTITY", "Cannot release more than is reserved")
	}

	s.ReservedQuantity = s.ReservedQuantity.Sub(quantity)
	s.UpdatedAt = time.Now()
	s.IncrementVersion()

	return nil
}
