package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/crosserp/backend/internal/infrastructure/logger"
	"github.com/crosserp/backend/internal/interfaces/http/dto"
)

// TenantIDKey is the gin context key for the resolved tenant ID
const TenantIDKey = "tenant_id"

// TenantContext takes the tenant from the validated JWT claims and
// installs it on the request context. Everything downstream, including
// the GORM tenant filter and the context logger, reads it from there.
// The scope dies with the request context, so nothing has to be reset.
//
// Must run after JWTAuth.
func TenantContext(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := GetJWTTenantID(c)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Missing tenant context", ""))
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil || tenantID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Invalid tenant context", ""))
			return
		}

		ctx := c.Request.Context()
		ctx, _ = logger.WithTenantID(ctx, log, tenantID.String())
		if userID := GetJWTUserID(c); userID != "" {
			ctx, _ = logger.WithUserID(ctx, log, userID)
		}
		c.Request = c.Request.WithContext(ctx)

		c.Set(TenantIDKey, tenantID)
		c.Next()
	}
}

// GetTenantID returns the tenant resolved by TenantContext
func GetTenantID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(TenantIDKey)
	if !exists {
		return uuid.Nil, false
	}
	tenantID, ok := value.(uuid.UUID)
	return tenantID, ok && tenantID != uuid.Nil
}
