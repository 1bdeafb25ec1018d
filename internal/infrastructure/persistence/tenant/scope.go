// Package tenant provides multi-tenant database scoping for GORM.
//
// This package implements automatic tenant_id filtering to prevent
// cross-tenant data access at the repository layer. It extracts the
// tenant ID from the request context and automatically applies
// WHERE tenant_id = ? conditions to all queries against tenant-scoped
// tables, and stamps tenant_id onto newly created rows that did not
// set it explicitly.
//
// Usage:
//
//	tenant.EnableAutoTenantFilter(gormDB, false)
//	db := tenant.NewTenantDB(gormDB)
//	scopedDB := db.WithContext(ctx) // automatically applies tenant filtering
//	scopedDB.Find(&products) // WHERE tenant_id = 'xxx' is auto-added
//
// Cross-tenant reads use tenant.Bypass(ctx) / tenant.RunUnscoped to
// derive a context that skips the filter without any mutable state.
package tenant

import (
	"context"
	"errors"

	"github.com/crosserp/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrTenantIDRequired is returned when tenant_id is required but not found
var ErrTenantIDRequired = errors.New("tenant_id is required but not found in context")

// ErrInvalidTenantID is returned when tenant_id format is invalid
var ErrInvalidTenantID = errors.New("invalid tenant_id format")

// TenantScope applies tenant filtering to GORM queries
func TenantScope(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// TenantScopeString applies tenant filtering using string tenant ID
func TenantScopeString(tenantID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("tenant_id = ?", tenantID)
	}
}

// TenantCreateScope sets tenant_id on create operations
func TenantCreateScope(tenantID uuid.UUID) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Set("tenant_id", tenantID)
	}
}

// CurrentTenantID returns the ambient tenant id from the context, or
// uuid.Nil when none is set or the value is malformed.
func CurrentTenantID(ctx context.Context) uuid.UUID {
	raw := logger.GetTenantID(ctx)
	if raw == "" {
		return uuid.Nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// TenantDB wraps GORM DB with automatic tenant scoping
type TenantDB struct {
	db       *gorm.DB
	required bool
}

// NewTenantDB creates a new TenantDB that requires an ambient tenant
func NewTenantDB(db *gorm.DB) *TenantDB {
	return &TenantDB{db: db, required: true}
}

// DB returns the underlying GORM DB without tenant scoping.
// Use with caution - this bypasses tenant isolation.
func (t *TenantDB) DB() *gorm.DB {
	return t.db
}

// WithContext returns a GORM DB scoped to the tenant from context.
// It extracts tenant_id from the context (set by tenant middleware)
// and applies the tenant filter to all queries. A bypassed context
// skips the filter entirely.
//
// If tenant_id is not found in context and the wrapper requires one,
// it returns a DB that will error on any operation.
func (t *TenantDB) WithContext(ctx context.Context) *gorm.DB {
	if IsBypassed(ctx) {
		return t.db.WithContext(ctx)
	}

	tenantID := logger.GetTenantID(ctx)
	if tenantID == "" {
		if t.required {
			db := t.db.WithContext(ctx)
			_ = db.AddError(ErrTenantIDRequired)
			return db
		}
		return t.db.WithContext(ctx)
	}

	if _, err := uuid.Parse(tenantID); err != nil {
		db := t.db.WithContext(ctx)
		_ = db.AddError(ErrInvalidTenantID)
		return db
	}

	return t.db.WithContext(ctx).Scopes(TenantScopeString(tenantID))
}

// WithTenant returns a GORM DB scoped to a specific tenant ID.
// Use this when you have the tenant ID directly rather than from context.
func (t *TenantDB) WithTenant(tenantID uuid.UUID) *gorm.DB {
	if tenantID == uuid.Nil {
		if t.required {
			db := t.db
			_ = db.AddError(ErrTenantIDRequired)
			return db
		}
		return t.db
	}
	return t.db.Scopes(TenantScope(tenantID))
}

// Transaction executes a function within a database transaction with
// tenant scope applied to the transaction handle.
func (t *TenantDB) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	tenantID := logger.GetTenantID(ctx)

	if tenantID == "" && t.required && !IsBypassed(ctx) {
		return ErrTenantIDRequired
	}

	return t.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tenantID != "" && !IsBypassed(ctx) {
			tx = tx.Scopes(TenantScopeString(tenantID))
		}
		return fn(tx)
	})
}

// SetRequired changes whether tenant_id is required
func (t *TenantDB) SetRequired(required bool) *TenantDB {
	return &TenantDB{db: t.db, required: required}
}
