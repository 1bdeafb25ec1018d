package handler

import (
	"github.com/gin-gonic/gin"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
)

// StatsHandler serves partner debt and activity statistics
type StatsHandler struct {
	BaseHandler
	statsService *appsharing.StatsService
}

// NewStatsHandler creates a new StatsHandler
func NewStatsHandler(statsService *appsharing.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetPartnerStats handles GET /api/v1/partners/:id/stats
func (h *StatsHandler) GetPartnerStats(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	partnerTenantID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	stats, err := h.statsService.GetPartnerStats(c.Request.Context(), tenantID, partnerTenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// GetAllPartnerStats handles GET /api/v1/partners/stats
func (h *StatsHandler) GetAllPartnerStats(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	stats, err := h.statsService.GetAllPartnerStats(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}
