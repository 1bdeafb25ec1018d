package dto

import "net/http"

// Common error codes used by the HTTP layer itself
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// domainErrorHTTPStatus maps domain error codes to HTTP statuses.
// Codes not listed fall back to 422: a well-formed request the domain
// refused for a business reason.
var domainErrorHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,

	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"ACCOUNT_INACTIVE":    http.StatusForbidden,
	"TENANT_INACTIVE":     http.StatusForbidden,

	"NOT_PARTY":    http.StatusForbidden,
	"NOT_RECEIVER": http.StatusForbidden,
	"NOT_SENDER":   http.StatusForbidden,

	"ALREADY_EXISTS": http.StatusConflict,
	"SLUG_TAKEN":     http.StatusConflict,
	"SELF_TRANSFER":  http.StatusConflict,

	"INVALID_USERNAME": http.StatusBadRequest,
	"INVALID_PASSWORD": http.StatusBadRequest,
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_SLUG":     http.StatusBadRequest,
	"INVALID_QUANTITY": http.StatusBadRequest,
	"INVALID_PRICE":    http.StatusBadRequest,

	"INVALID_STATE":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK": http.StatusUnprocessableEntity,
	"NOT_YOUR_TURN":      http.StatusUnprocessableEntity,
	"NO_PARTNERSHIP":     http.StatusUnprocessableEntity,
	"NO_ITEMS":           http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status for a domain error code
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
