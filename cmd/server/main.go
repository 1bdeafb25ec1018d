package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	identityapp "github.com/crosserp/backend/internal/application/identity"
	sharingapp "github.com/crosserp/backend/internal/application/sharing"
	"github.com/crosserp/backend/internal/infrastructure/auth"
	"github.com/crosserp/backend/internal/infrastructure/cache"
	"github.com/crosserp/backend/internal/infrastructure/config"
	"github.com/crosserp/backend/internal/infrastructure/logger"
	"github.com/crosserp/backend/internal/infrastructure/persistence"
	"github.com/crosserp/backend/internal/interfaces/http/handler"
	"github.com/crosserp/backend/internal/interfaces/http/router"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	log, err := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		TimeFormat: "2006-01-02T15:04:05.000Z07:00",
	})
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	log.Info("Starting CrossERP backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, log, logger.MapGormLogLevel(cfg.Log.Level))
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// Redis backs the unread notification counter. The service degrades
	// to counting in the database when Redis is unavailable, so startup
	// does not fail here.
	var unreadCache sharingapp.UnreadCache
	unreadCounter, err := cache.NewUnreadCounter(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}, 24*time.Hour)
	if err != nil {
		log.Warn("Redis unavailable, unread counts fall back to the database", zap.Error(err))
	} else {
		unreadCache = unreadCounter
		defer func() {
			_ = unreadCounter.Close()
		}()
		log.Info("Redis connected")
	}

	jwtService := auth.NewJWTService(cfg.JWT)

	// Repositories
	tenantRepo := persistence.NewGormTenantRepository(db.DB)
	userRepo := persistence.NewGormUserRepository(db.DB)
	warehouseRepo := persistence.NewGormWarehouseRepository(db.DB)
	uomRepo := persistence.NewGormUOMRepository(db.DB)
	partnershipRepo := persistence.NewGormPartnershipRepository(db.DB)
	transferRepo := persistence.NewGormTransferRepository(db.DB)
	paymentRepo := persistence.NewGormPaymentRepository(db.DB)
	notificationRepo := persistence.NewGormNotificationRepository(db.DB)
	txScope := persistence.NewGormSharingTransactionScope(db.DB)

	// Application services
	authService := identityapp.NewAuthService(tenantRepo, userRepo, warehouseRepo, uomRepo, jwtService, log)
	partnershipService := sharingapp.NewPartnershipService(partnershipRepo, tenantRepo, txScope)
	transferService := sharingapp.NewTransferService(partnershipRepo, transferRepo, notificationRepo, warehouseRepo, tenantRepo, txScope)
	paymentService := sharingapp.NewPaymentService(paymentRepo, partnershipRepo, tenantRepo, txScope)
	statsService := sharingapp.NewStatsService(partnershipRepo, transferRepo, paymentRepo, tenantRepo)
	notificationService := sharingapp.NewNotificationService(notificationRepo, unreadCache)

	engine := router.New(cfg, log, jwtService, router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Partnership:  handler.NewPartnershipHandler(partnershipService),
		Transfer:     handler.NewTransferHandler(transferService),
		Payment:      handler.NewPaymentHandler(paymentService),
		Notification: handler.NewNotificationHandler(notificationService),
		Stats:        handler.NewStatsHandler(statsService),
		Health:       healthHandler(db),
	})

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}

// healthHandler reports process and database health
func healthHandler(db *persistence.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			logger.GetGinLogger(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "error",
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "ok",
		})
	}
}
