package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/crosserp/backend/internal/infrastructure/auth"
	"github.com/crosserp/backend/internal/infrastructure/config"
	"github.com/crosserp/backend/internal/infrastructure/logger"
	"github.com/crosserp/backend/internal/interfaces/http/handler"
	"github.com/crosserp/backend/internal/interfaces/http/middleware"
)

// Handlers bundles every HTTP handler the API exposes
type Handlers struct {
	Auth         *handler.AuthHandler
	Partnership  *handler.PartnershipHandler
	Transfer     *handler.TransferHandler
	Payment      *handler.PaymentHandler
	Notification *handler.NotificationHandler
	Stats        *handler.StatsHandler
	Health       gin.HandlerFunc
}

// New builds the gin engine with the full middleware stack and route tree.
// Auth register/login/refresh are public; everything under /api/v1 beyond
// that requires a valid access token and a tenant context.
func New(cfg *config.Config, log *zap.Logger, jwtService *auth.JWTService, h Handlers) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	middleware.SetupValidator()

	engine := gin.New()

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("Failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	engine.Use(middleware.Secure())

	corsConfig := middleware.DefaultCORSConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	if len(cfg.HTTP.CORSAllowMethods) > 0 {
		corsConfig.AllowMethods = cfg.HTTP.CORSAllowMethods
	}
	if len(cfg.HTTP.CORSAllowHeaders) > 0 {
		corsConfig.AllowHeaders = cfg.HTTP.CORSAllowHeaders
	}
	corsConfig.MaxAge = 12 * time.Hour
	engine.Use(middleware.CORSWithConfig(corsConfig))

	if h.Health != nil {
		engine.GET("/health", h.Health)
	}

	api := engine.Group("/api/v1")

	// Public authentication endpoints
	authGroup := api.Group("/auth")
	authGroup.POST("/register", h.Auth.Register)
	authGroup.POST("/login", h.Auth.Login)
	authGroup.POST("/refresh", h.Auth.Refresh)

	// Everything below requires authentication
	protected := api.Group("")
	protected.Use(middleware.JWTAuth(jwtService))
	protected.Use(middleware.TenantContext(log))

	protected.GET("/auth/me", h.Auth.Me)

	partners := protected.Group("/partners")
	partners.GET("", h.Partnership.List)
	partners.GET("/search", h.Partnership.Search)
	partners.POST("/requests", h.Partnership.SendRequest)
	partners.POST("/requests/:id/accept", h.Partnership.Accept)
	partners.POST("/requests/:id/reject", h.Partnership.Reject)
	partners.DELETE("/:id", h.Partnership.Remove)
	partners.GET("/stats", h.Stats.GetAllPartnerStats)
	partners.GET("/:id/stats", h.Stats.GetPartnerStats)
	partners.GET("/:id/payments", h.Payment.ListWithPartner)

	transfers := protected.Group("/transfers")
	transfers.POST("", h.Transfer.Create)
	transfers.GET("/outgoing", h.Transfer.ListOutgoing)
	transfers.GET("/incoming", h.Transfer.ListIncoming)
	transfers.GET("/:id", h.Transfer.GetDetail)
	transfers.PUT("/:id", h.Transfer.Edit)
	transfers.POST("/:id/confirm-edit", h.Transfer.ConfirmEdit)
	transfers.POST("/:id/accept", h.Transfer.Accept)
	transfers.POST("/:id/reject", h.Transfer.Reject)
	transfers.POST("/:id/cancel", h.Transfer.Cancel)

	payments := protected.Group("/payments")
	payments.POST("", h.Payment.Record)
	payments.POST("/:id/confirm", h.Payment.Confirm)
	payments.POST("/:id/reject", h.Payment.Reject)

	notifications := protected.Group("/notifications")
	notifications.GET("", h.Notification.List)
	notifications.GET("/unread-count", h.Notification.UnreadCount)
	notifications.POST("/read-all", h.Notification.MarkAllRead)
	notifications.POST("/:id/read", h.Notification.MarkRead)

	return engine
}
