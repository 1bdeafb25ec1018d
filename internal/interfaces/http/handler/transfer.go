package handler

import (
	"github.com/gin-gonic/gin"

	appsharing "github.com/crosserp/backend/internal/application/sharing"
)

// TransferHandler serves cross-tenant transfer endpoints
type TransferHandler struct {
	BaseHandler
	transferService *appsharing.TransferService
}

// NewTransferHandler creates a new TransferHandler
func NewTransferHandler(transferService *appsharing.TransferService) *TransferHandler {
	return &TransferHandler{transferService: transferService}
}

// Create handles POST /api/v1/transfers
func (h *TransferHandler) Create(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	var req appsharing.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid transfer payload: "+err.Error())
		return
	}

	transfer, err := h.transferService.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, transfer)
}

// ListOutgoing handles GET /api/v1/transfers/outgoing
func (h *TransferHandler) ListOutgoing(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.transferService.GetOutgoing(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// ListIncoming handles GET /api/v1/transfers/incoming
func (h *TransferHandler) ListIncoming(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	filter, ok := h.listFilter(c)
	if !ok {
		return
	}

	page, err := h.transferService.GetIncoming(c.Request.Context(), tenantID, filter)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, page.Items, page.Total, page.Page, page.PageSize, page.TotalPages)
}

// GetDetail handles GET /api/v1/transfers/:id
func (h *TransferHandler) GetDetail(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	transfer, err := h.transferService.GetDetail(c.Request.Context(), tenantID, transferID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transfer)
}

// Edit handles PUT /api/v1/transfers/:id
func (h *TransferHandler) Edit(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req appsharing.EditTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid edit payload: "+err.Error())
		return
	}

	transfer, err := h.transferService.Edit(c.Request.Context(), tenantID, transferID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transfer)
}

// ConfirmEdit handles POST /api/v1/transfers/:id/confirm-edit
func (h *TransferHandler) ConfirmEdit(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	transfer, err := h.transferService.ConfirmEdit(c.Request.Context(), tenantID, transferID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transfer)
}

// Accept handles POST /api/v1/transfers/:id/accept
func (h *TransferHandler) Accept(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	userID, ok := getUserID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req appsharing.AcceptTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid accept payload: "+err.Error())
		return
	}

	result, err := h.transferService.Accept(c.Request.Context(), tenantID, userID, transferID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Reject handles POST /api/v1/transfers/:id/reject
func (h *TransferHandler) Reject(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}
	var req appsharing.RejectTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid reject payload: "+err.Error())
		return
	}

	transfer, err := h.transferService.Reject(c.Request.Context(), tenantID, transferID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transfer)
}

// Cancel handles POST /api/v1/transfers/:id/cancel
func (h *TransferHandler) Cancel(c *gin.Context) {
	tenantID, ok := getTenantID(c)
	if !ok {
		return
	}
	transferID, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	transfer, err := h.transferService.Cancel(c.Request.Context(), tenantID, transferID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, transfer)
}
