package sharing

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crosserp/backend/internal/domain/sharing"
)

// =============================================================================
// Partnership DTOs
// =============================================================================

// SendPartnershipRequest represents a request for a new partnership
type SendPartnershipRequest struct {
	TargetTenantID uuid.UUID `json:"target_tenant_id" binding:"required"`
	Notes          string    `json:"notes" binding:"max=1000"`
}

// PartnershipResponse represents a partnership in API responses.
// PartnerTenantID is always the other side, regardless of who requested.
type PartnershipResponse struct {
	ID              uuid.UUID  `json:"id"`
	PartnerTenantID uuid.UUID  `json:"partner_tenant_id"`
	PartnerName     string     `json:"partner_name"`
	PartnerSlug     string     `json:"partner_slug"`
	Requested       bool       `json:"requested_by_me"`
	Status          string     `json:"status"`
	Notes           string     `json:"notes"`
	RespondedAt     *time.Time `json:"responded_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// PartnerSearchResult is the public projection of a tenant returned by
// partner search.
type PartnerSearchResult struct {
	TenantID          uuid.UUID `json:"tenant_id"`
	Name              string    `json:"name"`
	Slug              string    `json:"slug"`
	LogoURL           string    `json:"logo_url"`
	Phone             string    `json:"phone"`
	PartnershipStatus string    `json:"partnership_status,omitempty"`
}

// =============================================================================
// Transfer DTOs
// =============================================================================

// CreateTransferItemRequest is one line of a new transfer
type CreateTransferItemRequest struct {
	ProductID    uuid.UUID        `json:"product_id" binding:"required"`
	UOMID        uuid.UUID        `json:"uom_id" binding:"required"`
	Quantity     decimal.Decimal  `json:"quantity" binding:"required"`
	SalePrice    *decimal.Decimal `json:"sale_price"`
	SalePriceUSD *decimal.Decimal `json:"sale_price_usd"`
}

// CreateTransferRequest represents a request to send stock to a partner
type CreateTransferRequest struct {
	ReceiverTenantID  uuid.UUID                   `json:"receiver_tenant_id" binding:"required"`
	SenderWarehouseID uuid.UUID                   `json:"sender_warehouse_id" binding:"required"`
	Notes             string                      `json:"notes" binding:"max=2000"`
	Items             []CreateTransferItemRequest `json:"items" binding:"required,min=1,dive"`
}

// TransferItemPriceUpdate changes the agreed price of one line
type TransferItemPriceUpdate struct {
	ItemID       uuid.UUID        `json:"item_id" binding:"required"`
	SalePrice    decimal.Decimal  `json:"sale_price" binding:"required"`
	SalePriceUSD *decimal.Decimal `json:"sale_price_usd"`
}

// EditTransferRequest represents an edit by either party while pending
type EditTransferRequest struct {
	Notes  *string                   `json:"notes" binding:"omitempty,max=2000"`
	Prices []TransferItemPriceUpdate `json:"prices" binding:"omitempty,dive"`
}

// AcceptTransferRequest names the warehouse receiving the stock.
// ProductMappings optionally directs individual items into existing
// products in the receiver's catalog, keyed by transfer item id; items
// not listed are resolved automatically.
type AcceptTransferRequest struct {
	WarehouseID     uuid.UUID               `json:"warehouse_id" binding:"required"`
	ProductMappings map[uuid.UUID]uuid.UUID `json:"product_mappings"`
}

// RejectTransferRequest carries the optional rejection reason
type RejectTransferRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// TransferItemResponse represents one transfer line in API responses
type TransferItemResponse struct {
	ID           uuid.UUID       `json:"id"`
	ProductID    uuid.UUID       `json:"product_id"`
	ProductName  string          `json:"product_name"`
	Article      string          `json:"article"`
	Barcode      string          `json:"barcode"`
	UOMID        uuid.UUID       `json:"uom_id"`
	UOMSymbol    string          `json:"uom_symbol"`
	Quantity     decimal.Decimal `json:"quantity"`
	BaseQuantity decimal.Decimal `json:"base_quantity"`
	SalePrice    decimal.Decimal `json:"sale_price"`
	SalePriceUSD decimal.Decimal `json:"sale_price_usd"`
	Total        decimal.Decimal `json:"total"`
}

// TransferResponse represents a transfer in API responses. The
// projection flags are computed for the viewing tenant.
type TransferResponse struct {
	ID                    uuid.UUID              `json:"id"`
	TransferNumber        string                 `json:"transfer_number"`
	SenderTenantID        uuid.UUID              `json:"sender_tenant_id"`
	SenderTenantName      string                 `json:"sender_tenant_name,omitempty"`
	ReceiverTenantID      uuid.UUID              `json:"receiver_tenant_id"`
	ReceiverTenantName    string                 `json:"receiver_tenant_name,omitempty"`
	SenderWarehouseID     uuid.UUID              `json:"sender_warehouse_id"`
	SenderWarehouseName   string                 `json:"sender_warehouse_name,omitempty"`
	ReceiverWarehouseID   *uuid.UUID             `json:"receiver_warehouse_id,omitempty"`
	ReceiverWarehouseName string                 `json:"receiver_warehouse_name,omitempty"`
	Status                string                 `json:"status"`
	Direction             string                 `json:"direction"`
	LastEditedByTenantID  uuid.UUID              `json:"last_edited_by_tenant_id"`
	AwaitingMyConfirm     bool                   `json:"awaiting_my_confirm"`
	Notes                 string                 `json:"notes"`
	RejectReason          string                 `json:"reject_reason,omitempty"`
	TotalValue            decimal.Decimal        `json:"total_value"`
	Items                 []TransferItemResponse `json:"items"`
	RespondedAt           *time.Time             `json:"responded_at,omitempty"`
	CreatedAt             time.Time              `json:"created_at"`
	UpdatedAt             time.Time              `json:"updated_at"`
}

// ProductResolution names how an incoming transfer item landed on a
// product in the receiver's catalog.
type ProductResolution string

const (
	ResolutionMapped  ProductResolution = "mapped"
	ResolutionMatched ProductResolution = "matched"
	ResolutionCreated ProductResolution = "created"
)

// ItemResolutionResult reports the resolution of one accepted item
type ItemResolutionResult struct {
	ItemID      uuid.UUID         `json:"item_id"`
	ProductID   uuid.UUID         `json:"product_id"`
	ProductName string            `json:"product_name"`
	Resolution  ProductResolution `json:"resolution"`
}

// AcceptTransferResponse is the result of accepting a transfer
type AcceptTransferResponse struct {
	Transfer    *TransferResponse      `json:"transfer"`
	Resolutions []ItemResolutionResult `json:"resolutions"`
}

// =============================================================================
// Payment DTOs
// =============================================================================

// RecordPaymentRequest records a payment between the caller and a
// partner. Direction "paid" means the caller is the payer, "received"
// means the partner is.
type RecordPaymentRequest struct {
	PartnerTenantID uuid.UUID       `json:"partner_tenant_id" binding:"required"`
	Direction       string          `json:"direction" binding:"required,oneof=paid received"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Method          string          `json:"method" binding:"omitempty,oneof=cash bank_transfer card other"`
	Notes           string          `json:"notes" binding:"max=1000"`
}

// RejectPaymentRequest carries the optional rejection reason
type RejectPaymentRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// PaymentResponse represents a payment in API responses. CanConfirm is
// computed for the viewing tenant.
type PaymentResponse struct {
	ID                uuid.UUID       `json:"id"`
	PayerTenantID     uuid.UUID       `json:"payer_tenant_id"`
	ReceiverTenantID  uuid.UUID       `json:"receiver_tenant_id"`
	Amount            decimal.Decimal `json:"amount"`
	Method            string          `json:"method"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes"`
	RejectReason      string          `json:"reject_reason,omitempty"`
	CanConfirm        bool            `json:"can_confirm"`
	ConfirmedByUserID *uuid.UUID      `json:"confirmed_by_user_id,omitempty"`
	RespondedAt       *time.Time      `json:"responded_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// =============================================================================
// Stats DTOs
// =============================================================================

// PartnerStatsResponse summarizes the financial position against one
// partner. MyDebt is what the caller owes the partner for accepted
// transfers net of confirmed payments; PartnerDebt is the reverse.
// Balance is PartnerDebt minus MyDebt: positive means the partner owes
// the caller on net.
type PartnerStatsResponse struct {
	PartnerTenantID uuid.UUID       `json:"partner_tenant_id"`
	PartnerName     string          `json:"partner_name"`
	MyDebt          decimal.Decimal `json:"my_debt"`
	PartnerDebt     decimal.Decimal `json:"partner_debt"`
	Balance         decimal.Decimal `json:"balance"`
	TransferCount   int64           `json:"transfer_count"`
}

// =============================================================================
// Notification DTOs
// =============================================================================

// NotificationResponse represents a partner notification in API responses
type NotificationResponse struct {
	ID            uuid.UUID  `json:"id"`
	Type          string     `json:"type"`
	FromTenantID  uuid.UUID  `json:"from_tenant_id"`
	ReferenceKind string     `json:"reference_kind"`
	ReferenceID   uuid.UUID  `json:"reference_id"`
	Message       string     `json:"message"`
	IsRead        bool       `json:"is_read"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// =============================================================================
// Mappers
// =============================================================================

// ToPartnershipResponse maps a partnership viewed by one tenant
func ToPartnershipResponse(p *sharing.Partnership, viewerTenantID uuid.UUID, partnerName, partnerSlug string) *PartnershipResponse {
	return &PartnershipResponse{
		ID:              p.ID,
		PartnerTenantID: p.CounterpartOf(viewerTenantID),
		PartnerName:     partnerName,
		PartnerSlug:     partnerSlug,
		Requested:       p.RequesterTenantID == viewerTenantID,
		Status:          string(p.Status),
		Notes:           p.Notes,
		RespondedAt:     p.RespondedAt,
		CreatedAt:       p.CreatedAt,
	}
}

// ToTransferResponse maps a transfer viewed by one tenant
func ToTransferResponse(t *sharing.CrossTenantTransfer, viewerTenantID uuid.UUID) *TransferResponse {
	direction := "outgoing"
	if t.ReceiverTenantID == viewerTenantID {
		direction = "incoming"
	}

	items := make([]TransferItemResponse, len(t.Items))
	for i, item := range t.Items {
		items[i] = TransferItemResponse{
			ID:           item.ID,
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			Article:      item.Article,
			Barcode:      item.Barcode,
			UOMID:        item.UOMID,
			UOMSymbol:    item.UOMSymbol,
			Quantity:     item.Quantity,
			BaseQuantity: item.BaseQuantity,
			SalePrice:    item.SalePrice,
			SalePriceUSD: item.SalePriceUSD,
			Total:        item.Total,
		}
	}

	return &TransferResponse{
		ID:                   t.ID,
		TransferNumber:       t.TransferNumber,
		SenderTenantID:       t.SenderTenantID,
		ReceiverTenantID:     t.ReceiverTenantID,
		SenderWarehouseID:    t.SenderWarehouseID,
		ReceiverWarehouseID:  t.ReceiverWarehouseID,
		Status:               string(t.Status),
		Direction:            direction,
		LastEditedByTenantID: t.LastEditedByTenantID,
		AwaitingMyConfirm:    t.Status == sharing.TransferStatusPending && t.Involves(viewerTenantID) && t.LastEditedByTenantID != viewerTenantID,
		Notes:                t.Notes,
		RejectReason:         t.RejectReason,
		TotalValue:           t.TotalValue(),
		Items:                items,
		RespondedAt:          t.RespondedAt,
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// ToPaymentResponse maps a payment viewed by one tenant
func ToPaymentResponse(p *sharing.PartnerPayment, viewerTenantID uuid.UUID) *PaymentResponse {
	return &PaymentResponse{
		ID:                p.ID,
		PayerTenantID:     p.PayerTenantID,
		ReceiverTenantID:  p.ReceiverTenantID,
		Amount:            p.Amount,
		Method:            string(p.Method),
		Status:            string(p.Status),
		Notes:             p.Notes,
		RejectReason:      p.RejectReason,
		CanConfirm:        p.CanConfirm(viewerTenantID),
		ConfirmedByUserID: p.ConfirmedByUserID,
		RespondedAt:       p.RespondedAt,
		CreatedAt:         p.CreatedAt,
	}
}

// ToNotificationResponse maps a notification
func ToNotificationResponse(n *sharing.PartnerNotification) *NotificationResponse {
	return &NotificationResponse{
		ID:            n.ID,
		Type:          string(n.Type),
		FromTenantID:  n.FromTenantID,
		ReferenceKind: string(n.ReferenceKind),
		ReferenceID:   n.ReferenceID,
		Message:       n.Message,
		IsRead:        n.IsRead,
		ReadAt:        n.ReadAt,
		CreatedAt:     n.CreatedAt,
	}
}
