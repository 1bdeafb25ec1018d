package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	tenantID := uuid.New()
	uomID := uuid.New()

	t.Run("valid product", func(t *testing.T) {
		product, err := NewProduct(tenantID, uomID, "  Steel Pipe 20mm  ")
		require.NoError(t, err)
		assert.Equal(t, "Steel Pipe 20mm", product.Name)
		assert.Equal(t, tenantID, product.TenantID)
		assert.Equal(t, uomID, product.BaseUOMID)
		assert.True(t, product.IsActive)
		assert.False(t, product.IsDeleted)
		assert.True(t, product.CostPrice.IsZero())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewProduct(tenantID, uomID, "   ")
		assert.Error(t, err)
	})

	t.Run("name too long", func(t *testing.T) {
		_, err := NewProduct(tenantID, uomID, strings.Repeat("a", 301))
		assert.Error(t, err)
	})

	t.Run("missing base unit", func(t *testing.T) {
		_, err := NewProduct(tenantID, uuid.Nil, "Steel Pipe")
		assert.Error(t, err)
	})
}

func TestProduct_SetPrices(t *testing.T) {
	product, err := NewProduct(uuid.New(), uuid.New(), "Cement 50kg")
	require.NoError(t, err)

	t.Run("valid prices", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(42000), decimal.NewFromInt(55000))
		require.NoError(t, err)
		assert.True(t, product.CostPrice.Equal(decimal.NewFromInt(42000)))
		assert.True(t, product.SalePrice.Equal(decimal.NewFromInt(55000)))
	})

	t.Run("negative cost price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(-1), decimal.NewFromInt(55000))
		assert.Error(t, err)
	})

	t.Run("negative sale price", func(t *testing.T) {
		err := product.SetPrices(decimal.NewFromInt(42000), decimal.NewFromInt(-1))
		assert.Error(t, err)
	})
}

func TestUnitOfMeasure_SymbolMatches(t *testing.T) {
	uom, err := NewUnitOfMeasure(uuid.New(), "Kilogram", "kg")
	require.NoError(t, err)

	assert.True(t, uom.SymbolMatches("kg"))
	assert.True(t, uom.SymbolMatches("KG"))
	assert.True(t, uom.SymbolMatches(" Kg "))
	assert.False(t, uom.SymbolMatches("g"))
}

func TestProductUOMConversion(t *testing.T) {
	tenantID := uuid.New()

	t.Run("converts to base quantity", func(t *testing.T) {
		conv, err := NewProductUOMConversion(tenantID, uuid.New(), uuid.New(), decimal.NewFromInt(12))
		require.NoError(t, err)

		base := conv.ToBaseQuantity(decimal.NewFromFloat(2.5))
		assert.True(t, base.Equal(decimal.NewFromInt(30)))
	})

	t.Run("rejects non-positive factor", func(t *testing.T) {
		_, err := NewProductUOMConversion(tenantID, uuid.New(), uuid.New(), decimal.Zero)
		assert.Error(t, err)
	})
}
