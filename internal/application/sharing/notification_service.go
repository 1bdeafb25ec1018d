package sharing

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/crosserp/backend/internal/domain/sharing"
	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/crosserp/backend/internal/infrastructure/cache"
)

// UnreadCache caches the per-tenant unread notification count. The
// Redis-backed implementation lives in infrastructure/cache; a nil
// cache disables caching.
type UnreadCache interface {
	Get(ctx context.Context, tenantID uuid.UUID) (int64, error)
	Seed(ctx context.Context, tenantID uuid.UUID, count int64) error
	Invalidate(ctx context.Context, tenantID uuid.UUID) error
}

// NotificationService serves the partner notification feed
type NotificationService struct {
	notificationRepo sharing.NotificationRepository
	unreadCache      UnreadCache
}

// NewNotificationService creates a new NotificationService. unreadCache
// may be nil when Redis is not configured.
func NewNotificationService(notificationRepo sharing.NotificationRepository, unreadCache UnreadCache) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		unreadCache:      unreadCache,
	}
}

// List returns the caller's notifications, newest first
func (s *NotificationService) List(ctx context.Context, tenantID uuid.UUID, unreadOnly bool, filter shared.Filter) (*shared.Paginated[NotificationResponse], error) {
	page, err := s.notificationRepo.FindForTenant(ctx, tenantID, unreadOnly, filter)
	if err != nil {
		return nil, err
	}

	items := make([]NotificationResponse, len(page.Items))
	for i := range page.Items {
		items[i] = *ToNotificationResponse(&page.Items[i])
	}
	return &shared.Paginated[NotificationResponse]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}, nil
}

// CountUnread returns the unread badge count, served from cache when
// possible and reseeded from the database on a miss.
func (s *NotificationService) CountUnread(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	if s.unreadCache != nil {
		count, err := s.unreadCache.Get(ctx, tenantID)
		if err == nil {
			return count, nil
		}
		if !errors.Is(err, cache.ErrCounterMiss) {
			// Redis trouble is not worth failing the request over
			return s.notificationRepo.CountUnread(ctx, tenantID)
		}
	}

	count, err := s.notificationRepo.CountUnread(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if s.unreadCache != nil {
		_ = s.unreadCache.Seed(ctx, tenantID, count)
	}
	return count, nil
}

// MarkRead marks a single notification as read
func (s *NotificationService) MarkRead(ctx context.Context, tenantID, notificationID uuid.UUID) (*NotificationResponse, error) {
	notification, err := s.notificationRepo.FindByID(ctx, tenantID, notificationID)
	if err != nil {
		return nil, err
	}

	if !notification.IsRead {
		notification.MarkRead()
		if err := s.notificationRepo.Save(ctx, notification); err != nil {
			return nil, err
		}
		s.invalidate(ctx, tenantID)
	}
	return ToNotificationResponse(notification), nil
}

// MarkAllRead marks every unread notification as read and returns how
// many were affected.
func (s *NotificationService) MarkAllRead(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	affected, err := s.notificationRepo.MarkAllRead(ctx, tenantID)
	if err != nil {
		return 0, err
	}
	if affected > 0 {
		s.invalidate(ctx, tenantID)
	}
	return affected, nil
}

func (s *NotificationService) invalidate(ctx context.Context, tenantID uuid.UUID) {
	if s.unreadCache != nil {
		_ = s.unreadCache.Invalidate(ctx, tenantID)
	}
}
