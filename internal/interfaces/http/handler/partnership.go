package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
)

// PartnershipHandler serves partner discovery and partnership lifecycle endpoints
type PartnershipHandler struct {
	BaseHandler
	partnershipService *appsharing.PartnershipService
}

// NewPartnershipHandler creates a new PartnershipHandler
func NewPartnershipHandler(partnershipService *appsharing.PartnershipService) *PartnershipHandler {
	return &PartnershipHandler{partnershipService: partnershipService}
}

// Search handles GET /api/v1/partners/search?q=
func (h *PartnershipHandler) Search(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		h.BadRequest(c, "Search query is required")
		return
	}

	results, err := h.partnershipService.Search(c.Request.Context(), tenantID, query)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, results)
}

// List handles GET /api/v1/partners
func (h *PartnershipHandler) List(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}

	partnerships, err := h.partnershipService.List(c.Request.Context(), tenantID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partnerships)
}

// SendRequest handles POST /api/v1/partners/requests
func (h *PartnershipHandler) SendRequest(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	var req appsharing.SendPartnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid partnership request payload: "+err.Error())
		return
	}

	partnership, err := h.partnershipService.SendRequest(c.Request.Context(), tenantID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, partnership)
}

// Accept handles POST /api/v1/partners/requests/:id/accept
func (h *PartnershipHandler) Accept(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	partnershipID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	partnership, err := h.partnershipService.Accept(c.Request.Context(), tenantID, partnershipID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partnership)
}

// Reject handles POST /api/v1/partners/requests/:id/reject
func (h *PartnershipHandler) Reject(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	partnershipID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	partnership, err := h.partnershipService.Reject(c.Request.Context(), tenantID, partnershipID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, partnership)
}

// Remove handles DELETE /api/v1/partners/:id
func (h *PartnershipHandler) Remove(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	partnershipID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.partnershipService.Remove(c.Request.Context(), tenantID, partnershipID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
