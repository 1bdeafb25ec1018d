package persistence

import (
	"context"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/infrastructure/persistence/tenant"
	"gorm.io/gorm"
)

// GormSharingTransactionScope implements the sharing TransactionScope
// using GORM transactions: partnership, transfer and payment writes,
// stock changes, movements and notifications commit together or roll
// back together.
//
// Cross-tenant flows legitimately touch both partners' rows, so the scope
// runs with the automatic tenant filter bypassed. Every repository
// inside the scope still takes an explicit tenant parameter.
type GormSharingTransactionScope struct {
	db *gorm.DB
}

// NewGormSharingTransactionScope creates a new GormSharingTransactionScope
func NewGormSharingTransactionScope(db *gorm.DB) *GormSharingTransactionScope {
	return &GormSharingTransactionScope{db: db}
}

// Execute runs fn inside a database transaction and rolls back on error
func (s *GormSharingTransactionScope) Execute(ctx context.Context, fn func(repos appsharing.TransactionalRepositories) error) error {
	ctx = tenant.Bypass(ctx)
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormSharingRepositories{tx: tx})
	})
}

type gormSharingRepositories struct {
	tx *gorm.DB
}

func (r *gormSharingRepositories) Partnerships() sharing.PartnershipRepository {
	return NewGormPartnershipRepository(r.tx)
}

func (r *gormSharingRepositories) Transfers() sharing.TransferRepository {
	return NewGormTransferRepository(r.tx)
}

func (r *gormSharingRepositories) Payments() sharing.PaymentRepository {
	return NewGormPaymentRepository(r.tx)
}

func (r *gormSharingRepositories) Stocks() inventory.StockRepository {
	return NewGormStockRepository(r.tx)
}

func (r *gormSharingRepositories) Movements() inventory.StockMovementRepository {
	return NewGormStockMovementRepository(r.tx)
}

func (r *gormSharingRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

func (r *gormSharingRepositories) UOMs() catalog.UOMRepository {
	return NewGormUOMRepository(r.tx)
}

func (r *gormSharingRepositories) Mappings() sharing.ProductMappingRepository {
	return NewGormProductMappingRepository(r.tx)
}

func (r *gormSharingRepositories) Notifications() sharing.NotificationRepository {
	return NewGormNotificationRepository(r.tx)
}

var _ appsharing.TransactionScope = (*GormSharingTransactionScope)(nil)

var _ appsharing.TransactionalRepositories = (*gormSharingRepositories)(nil)
