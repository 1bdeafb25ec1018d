package handler

import (
	"github.com/gin-gonic/gin"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
)

// PaymentHandler serves partner payment ledger endpoints
type PaymentHandler struct {
	BaseHandler
	paymentService *appsharing.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *appsharing.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Record handles POST /api/v1/payments
func (h *PaymentHandler) Record(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req appsharing.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid payment payload: "+err.Error())
		return
	}

	payment, err := h.paymentService.Record(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, payment)
}

// Confirm handles POST /api/v1/payments/:id/confirm
func (h *PaymentHandler) Confirm(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	paymentID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	payment, err := h.paymentService.Confirm(c.Request.Context(), tenantID, userID, paymentID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// Reject handles POST /api/v1/payments/:id/reject
func (h *PaymentHandler) Reject(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	paymentID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req appsharing.RejectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid reject payload: "+err.Error())
		return
	}

	payment, err := h.paymentService.Reject(c.Request.Context(), tenantID, paymentID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, payment)
}

// ListWithPartner handles GET /api/v1/partners/:id/payments
func (h *PaymentHandler) ListWithPartner(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	partnerTenantID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.paymentService.ListWithPartner(c.Request.Context(), tenantID, partnerTenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}
