package handler

import (
	"github.com/gin-gonic/gin"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
)

// NotificationHandler serves partner notification endpoints
type NotificationHandler struct {
	BaseHandler
	notificationService *appsharing.NotificationService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(notificationService *appsharing.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List handles GET /api/v1/notifications?unread=true
func (h *NotificationHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}
	unreadOnly := c.Query("unread") == "true"

	page, err := h.notificationService.List(c.Request.Context(), tenantID, unreadOnly, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// UnreadCount handles GET /api/v1/notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	count, err := h.notificationService.CountUnread(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"unread_count": count})
}

// MarkRead handles POST /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	notificationID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	notification, err := h.notificationService.MarkRead(c.Request.Context(), tenantID, notificationID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, notification)
}

// MarkAllRead handles POST /api/v1/notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	affected, err := h.notificationService.MarkAllRead(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"marked_read": affected})
}
