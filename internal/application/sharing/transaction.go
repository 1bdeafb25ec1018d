package sharing

import (
	"context"

	"github.com/crosserp/backend/internal/domain/catalog"
	"github.com/crosserp/backend/internal/domain/inventory"
	"github.com/crosserp/backend/internal/domain/sharing"
)

// TransactionalRepositories exposes the repositories a cross-tenant
// operation touches, all bound to one database transaction.
type TransactionalRepositories interface {
	Partnerships() sharing.PartnershipRepository
	Transfers() sharing.TransferRepository
	Payments() sharing.PaymentRepository
	Stocks() inventory.StockRepository
	Movements() inventory.StockMovementRepository
	Products() catalog.ProductRepository
	UOMs() catalog.UOMRepository
	Mappings() sharing.ProductMappingRepository
	Notifications() sharing.NotificationRepository
}

// TransactionScope runs a unit of work atomically. If fn returns an
// error every repository write inside it is rolled back, so a failed
// stock debit can never leave a half-created transfer behind.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}
