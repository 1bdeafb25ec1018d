package tenant

import (
	"reflect"
	"strings"

	"github.com/crosserp/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TenantCallback provides GORM callback hooks for automatic tenant
// filtering and create-stamping.
type TenantCallback struct {
	tenantColumn string
	required     bool
}

// NewTenantCallback creates a new tenant callback handler
func NewTenantCallback(tenantColumn string, required bool) *TenantCallback {
	if tenantColumn == "" {
		tenantColumn = "tenant_id"
	}
	return &TenantCallback{
		tenantColumn: tenantColumn,
		required:     required,
	}
}

// RegisterCallbacks registers tenant callbacks with GORM
func (tc *TenantCallback) RegisterCallbacks(db *gorm.DB) {
	// Query callback - add tenant filter
	_ = db.Callback().Query().Before("gorm:query").Register("tenant:before_query", tc.beforeQuery)

	// Update callback - ensure tenant filter
	_ = db.Callback().Update().Before("gorm:update").Register("tenant:before_update", tc.beforeUpdate)

	// Delete callback - ensure tenant filter
	_ = db.Callback().Delete().Before("gorm:delete").Register("tenant:before_delete", tc.beforeDelete)

	// Row query callback - add tenant filter
	_ = db.Callback().Row().Before("gorm:row").Register("tenant:before_row", tc.beforeQuery)

	// Create callback - stamp ambient tenant onto rows that did not
	// set tenant_id explicitly
	_ = db.Callback().Create().Before("gorm:create").Register("tenant:before_create", tc.beforeCreate)
}

// beforeQuery adds tenant filter to SELECT queries
func (tc *TenantCallback) beforeQuery(db *gorm.DB) {
	tc.addTenantFilter(db)
}

// beforeUpdate adds tenant filter to UPDATE queries
func (tc *TenantCallback) beforeUpdate(db *gorm.DB) {
	tc.addTenantFilter(db)
}

// beforeDelete adds tenant filter to DELETE queries
func (tc *TenantCallback) beforeDelete(db *gorm.DB) {
	tc.addTenantFilter(db)
}

// beforeCreate stamps the ambient tenant onto new rows whose tenant_id
// is zero. Explicitly supplied tenant ids are never overwritten, and a
// bypassed context skips stamping entirely.
func (tc *TenantCallback) beforeCreate(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil || IsBypassed(ctx) {
		return
	}
	if db.Statement.Schema == nil {
		return
	}

	field := db.Statement.Schema.LookUpField(tc.tenantColumn)
	if field == nil {
		// Not a tenant-scoped table
		return
	}

	tenantID := CurrentTenantID(ctx)
	if tenantID == uuid.Nil {
		return
	}

	switch db.Statement.ReflectValue.Kind() {
	case reflect.Slice, reflect.Array:
		for i := 0; i < db.Statement.ReflectValue.Len(); i++ {
			rv := db.Statement.ReflectValue.Index(i)
			if _, isZero := field.ValueOf(ctx, rv); isZero {
				_ = field.Set(ctx, rv, tenantID)
			}
		}
	case reflect.Struct:
		if _, isZero := field.ValueOf(ctx, db.Statement.ReflectValue); isZero {
			_ = field.Set(ctx, db.Statement.ReflectValue, tenantID)
		}
	}
}

// addTenantFilter adds tenant filtering to the query
func (tc *TenantCallback) addTenantFilter(db *gorm.DB) {
	ctx := db.Statement.Context
	if ctx == nil {
		return
	}

	// A bypassed context reads across tenants by design; the caller is
	// fully responsible for manual filtering.
	if IsBypassed(ctx) {
		return
	}

	// Skip if unscoped
	if db.Statement.Unscoped {
		return
	}

	// Skip tables that carry no tenant column (partnerships, transfers,
	// payments span two tenants and are filtered manually)
	if db.Statement.Schema != nil && db.Statement.Schema.LookUpField(tc.tenantColumn) == nil {
		return
	}

	// Skip if already has tenant condition
	if tc.hasTenantCondition(db) {
		return
	}

	tenantID := logger.GetTenantID(ctx)
	if tenantID == "" {
		if tc.required {
			_ = db.AddError(ErrTenantIDRequired)
		}
		return
	}

	if _, err := uuid.Parse(tenantID); err != nil {
		_ = db.AddError(ErrInvalidTenantID)
		return
	}

	db.Statement.AddClause(clause.Where{
		Exprs: []clause.Expression{
			clause.Eq{
				Column: clause.Column{Table: clause.CurrentTable, Name: tc.tenantColumn},
				Value:  tenantID,
			},
		},
	})
}

// hasTenantCondition checks if tenant_id condition is already present
func (tc *TenantCallback) hasTenantCondition(db *gorm.DB) bool {
	if db.Statement.Unscoped {
		return true
	}

	if whereClause, ok := db.Statement.Clauses["WHERE"]; ok {
		if where, ok := whereClause.Expression.(clause.Where); ok {
			for _, expr := range where.Exprs {
				if tc.exprContainsTenant(expr) {
					return true
				}
			}
		}
	}

	// Also check the built SQL if available
	sql := db.Statement.SQL.String()
	if sql != "" && strings.Contains(sql, tc.tenantColumn) {
		return true
	}

	return false
}

// exprContainsTenant checks if an expression contains tenant_id column
func (tc *TenantCallback) exprContainsTenant(expr clause.Expression) bool {
	switch e := expr.(type) {
	case clause.Eq:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == tc.tenantColumn
		}
	case clause.IN:
		if col, ok := e.Column.(clause.Column); ok {
			return col.Name == tc.tenantColumn
		}
	case clause.Expr:
		return strings.Contains(e.SQL, tc.tenantColumn)
	case clause.AndConditions:
		for _, cond := range e.Exprs {
			if tc.exprContainsTenant(cond) {
				return true
			}
		}
	case clause.OrConditions:
		for _, cond := range e.Exprs {
			if tc.exprContainsTenant(cond) {
				return true
			}
		}
	}
	return false
}

// EnableAutoTenantFilter enables automatic tenant filtering on a GORM
// DB instance. This registers callbacks that add tenant_id filtering to
// all queries against tenant-scoped tables and stamp tenant_id onto
// newly created rows.
func EnableAutoTenantFilter(db *gorm.DB, required bool) {
	tc := NewTenantCallback("tenant_id", required)
	tc.RegisterCallbacks(db)
}

// DisableAutoTenantFilter removes the tenant callbacks (testing only)
func DisableAutoTenantFilter(db *gorm.DB) {
	_ = db.Callback().Query().Remove("tenant:before_query")
	_ = db.Callback().Update().Remove("tenant:before_update")
	_ = db.Callback().Delete().Remove("tenant:before_delete")
	_ = db.Callback().Row().Remove("tenant:before_row")
	_ = db.Callback().Create().Remove("tenant:before_create")
}
