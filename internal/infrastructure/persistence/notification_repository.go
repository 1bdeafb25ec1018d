package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
)

// GormNotificationRepository implements NotificationRepository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by ID within the recipient tenant
func (r *GormNotificationRepository) FindByID(ctx context.Context, tenantID, id uuid.UUID) (*sharing.PartnerNotification, error) {
	var notification sharing.PartnerNotification
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// FindForTenant lists a tenant's notifications, newest first
func (r *GormNotificationRepository) FindForTenant(ctx context.Context, tenantID uuid.UUID, unreadOnly bool, filter shared.Filter) (*shared.Paginated[sharing.PartnerNotification], error) {
	base := r.db.WithContext(ctx).
		Model(&sharing.PartnerNotification{}).
		Where("tenant_id = ?", tenantID)
	if unreadOnly {
		base = base.Where("is_read = ?", false)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return nil, err
	}

	sortField := ValidateSortField(filter.OrderBy, NotificationSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)

	page, pageSize := normalizePage(filter)
	var notifications []sharing.PartnerNotification
	if err := base.
		Order(sortField + " " + sortOrder).
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&notifications).Error; err != nil {
		return nil, err
	}

	result := shared.NewPaginated(notifications, total, page, pageSize)
	return &result, nil
}

// CountUnread counts unread notifications for a tenant
func (r *GormNotificationRepository) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&sharing.PartnerNotification{}).
		Where("tenant_id = ? AND is_read = ?", tenantID, false).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save creates or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, notification *sharing.PartnerNotification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

// MarkAllRead marks every unread notification for the tenant as read
// and returns how many rows were affected.
func (r *GormNotificationRepository) MarkAllRead(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&sharing.PartnerNotification{}).
		Where("tenant_id = ? AND is_read = ?", tenantID, false).
		Updates(map[string]interface{}{
			"is_read":    true,
			"read_at":    now,
			"updated_at": now,
		})
	return result.RowsAffected, result.Error
}

// Ensure GormNotificationRepository implements NotificationRepository
var _ sharing.NotificationRepository = (*GormNotificationRepository)(nil)
