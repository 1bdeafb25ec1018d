package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "DESC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// TransferSortFields contains allowed sort fields for cross-tenant transfers
var TransferSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"transfer_number": true,
	"status":          true,
	"responded_at":    true,
}

// PaymentSortFields contains allowed sort fields for partner payments
var PaymentSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"amount":       true,
	"method":       true,
	"status":       true,
	"responded_at": true,
}

// NotificationSortFields contains allowed sort fields for partner notifications
var NotificationSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"type":       true,
	"is_read":    true,
	"read_at":    true,
}

// PartnershipSortFields contains allowed sort fields for partnerships
var PartnershipSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"status":       true,
	"responded_at": true,
}
