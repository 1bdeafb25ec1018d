package catalog

import (
	"strings"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitOfMeasure is a per-tenant unit definition (e.g. "Piece"/"pcs",
// "Kilogram"/"kg"). Symbols are matched case-insensitively when a
// receiving tenant resolves units from an incoming transfer.
type UnitOfMeasure struct {
	shared.TenantAggregateRoot
	Name   string `gorm:"type:varchar(100);not null"`
	Symbol string `gorm:"type:varchar(20);not null;index"`
}

// TableName returns the table name for GORM
func (UnitOfMeasure) TableName() string {
	return "units_of_measure"
}

// NewUnitOfMeasure creates a new unit of measure for a tenant
func NewUnitOfMeasure(tenantID uuid.UUID, name, symbol string) (*UnitOfMeasure, error) {
	name = strings.TrimSpace(name)
	symbol = strings.TrimSpace(symbol)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_UOM", "Unit name cannot be empty")
	}
	if symbol == "" {
		return nil, shared.NewDomainError("INVALID_UOM", "Unit symbol cannot be empty")
	}
	if len(symbol) > 20 {
		return nil, shared.NewDomainError("INVALID_UOM", "Unit symbol cannot exceed 20 characters")
	}

	return &UnitOfMeasure{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Symbol:              symbol,
	}, nil
}

// SymbolMatches reports whether the unit's symbol equals the given
// symbol ignoring case.
func (u *UnitOfMeasure) SymbolMatches(symbol string) bool {
	return strings.EqualFold(u.Symbol, strings.TrimSpace(symbol))
}

// ProductUOMConversion maps an alternate unit of a product to its base
// unit. Quantity in the alternate unit times Factor gives quantity in
// the base unit. A product/unit pair with no conversion row is treated
// as factor 1.
type ProductUOMConversion struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TenantID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index:idx_uom_conv_product_unit,unique"`
	UOMID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_uom_conv_product_unit,unique"`
	Factor    decimal.Decimal `gorm:"type:decimal(20,6);not null"`
	CreatedAt time.Time       `gorm:"not null"`
	UpdatedAt time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (ProductUOMConversion) TableName() string {
	return "product_uom_conversions"
}

// NewProductUOMConversion creates a conversion from the given unit to
// the product's base unit.
func NewProductUOMConversion(tenantID, productID, uomID uuid.UUID, factor decimal.Decimal) (*ProductUOMConversion, error) {
	if !factor.IsPositive() {
		return nil, shared.NewDomainError("INVALID_CONVERSION", "Conversion factor must be positive")
	}

	now := time.Now()
	return &ProductUOMConversion{
		ID:        uuid.New(),
		TenantID:  tenantID,
		ProductID: productID,
		UOMID:     uomID,
		Factor:    factor,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ToBaseQuantity converts a quantity in the conversion's unit to the
// product's base unit.
func (c *ProductUOMConversion) ToBaseQuantity(quantity decimal.Decimal) decimal.Decimal {
	return quantity.Mul(c.Factor)
}
