package catalog

import (
	"strings"
	"time"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a product/SKU in a tenant's catalog.
// It is the aggregate root for product-related operations.
type Product struct {
	shared.TenantAggregateRoot
	Name      string          `gorm:"type:varchar(300);not null;index:idx_products_tenant_name"`
	Article   string          `gorm:"type:varchar(100);index"`
	Barcode   string          `gorm:"type:varchar(100);index"`
	BaseUOMID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CostPrice decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	SalePrice decimal.Decimal `gorm:"type:decimal(20,4);not null;default:0"`
	IsActive  bool            `gorm:"not null;default:true;index"`
	IsDeleted bool            `gorm:"not null;default:false;index"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new product in the given tenant's catalog
func NewProduct(tenantID, baseUOMID uuid.UUID, name string) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 300 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 300 characters")
	}
	if baseUOMID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UOM", "Base unit of measure is required")
	}

	return &Product{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		BaseUOMID:           baseUOMID,
		CostPrice:           decimal.Zero,
		SalePrice:           decimal.Zero,
		IsActive:            true,
	}, nil
}

// SetIdentifiers sets the article and barcode identifiers
func (p *Product) SetIdentifiers(article, barcode string) error {
	if len(article) > 100 {
		return shared.NewDomainError("INVALID_ARTICLE", "Article cannot exceed 100 characters")
	}
	if len(barcode) > 100 {
		return shared.NewDomainError("INVALID_BARCODE", "Barcode cannot exceed 100 characters")
	}

	p.Article = strings.TrimSpace(article)
	p.Barcode = strings.TrimSpace(barcode)
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetPrices sets the cost and sale prices
func (p *Product) SetPrices(costPrice, salePrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}

// SetCostPrice overwrites the cost price. Used when stock arrives at a
// known unit cost (e.g. an accepted partner transfer).
func (p *Product) SetCostPrice(costPrice decimal.Decimal) error {
	if costPrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}

	p.CostPrice = costPrice
	p.UpdatedAt = time.Now()
	p.IncrementVersion()

	return nil
}
