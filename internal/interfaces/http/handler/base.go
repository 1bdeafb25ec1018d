package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/crosserp/backend/internal/domain/shared"
	"github.com/crosserp/backend/internal/interfaces/http/dto"
	"github.com/crosserp/backend/internal/interfaces/http/middleware"
)

// RequestIDHeader carries the request correlation ID
const RequestIDHeader = "X-Request-ID"

// BaseHandler provides common response utilities
type BaseHandler struct{}

func getRequestID(c *gin.Context) string {
	if id := c.GetString(RequestIDHeader); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}

// getTenantID returns the authenticated tenant or fails the request
func getTenantID(c *gin.Context) (uuid.UUID, bool) {
	tenantID, ok := middleware.GetTenantID(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing tenant context", getRequestID(c)))
	}
	return tenantID, ok
}

// getUserID returns the authenticated user or fails the request
func getUserID(c *gin.Context) (uuid.UUID, bool) {
	raw := middleware.GetJWTUserID(c)
	userID, err := uuid.Parse(raw)
	if raw == "" || err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing user context", getRequestID(c)))
		return uuid.Nil, false
	}
	return userID, true
}

// parseIDParam parses a uuid path parameter or fails the request
func (h *BaseHandler) parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" parameter")
		return uuid.Nil, false
	}
	return id, true
}

// listFilter binds pagination query parameters into a domain filter
func (h *BaseHandler) listFilter(c *gin.Context) (shared.Filter, bool) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid list parameters: "+err.Error())
		return shared.Filter{}, false
	}
	filter := shared.Filter{
		Page:     req.Page,
		PageSize: req.PageSize,
		Search:   req.Search,
	}
	if req.Status != "" {
		filter.Filters = map[string]interface{}{"status": req.Status}
	}
	return filter, true
}

// Success sends a 200 response
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response with pagination meta
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, page, pageSize, totalPages int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, page, pageSize, totalPages))
}

// Created sends a 201 response
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// NoContent sends a 204 response
func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// BadRequest sends a 400 response
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.ErrCodeBadRequest, message, getRequestID(c)))
}

// HandleError maps domain errors to HTTP responses; anything else
// becomes an opaque 500.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		status := dto.GetHTTPStatus(domainErr.Code)
		c.JSON(status, dto.NewErrorResponse(domainErr.Code, domainErr.Message, getRequestID(c)))
		return
	}

	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "An unexpected error occurred", getRequestID(c)))
}
