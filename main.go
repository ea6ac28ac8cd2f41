package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Rajender1411/canteen-savor-hub/cart"
	"github.com/Rajender1411/canteen-savor-hub/catalog"
	"github.com/Rajender1411/canteen-savor-hub/config"
	"github.com/Rajender1411/canteen-savor-hub/handlers"
	"github.com/Rajender1411/canteen-savor-hub/notify"
	"github.com/Rajender1411/canteen-savor-hub/routes"
	"github.com/Rajender1411/canteen-savor-hub/session"
	"github.com/Rajender1411/canteen-savor-hub/storage"
)

func main() {
	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Set Gin mode
	if cfg.GinMode == "" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(cfg.GinMode)
	}

	// Pick the key-value backend
	store, err := newStore(cfg)
	if err != nil {
		logger.Fatal("failed to open storage backend", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}

	// Build the state containers once and hand them to every consumer
	notifier := notify.NewLogger(logger)
	menu := catalog.NewProvider(cfg.CatalogDelay, logger)
	carts := cart.NewRegistry(store, notifier, logger)
	sessions := session.NewManager(store, notifier, logger, cfg.AdminUsername, cfg.AdminPassword)

	// Simulated catalog fetch; a failure is retryable via the admin
	// reload endpoint, so the server still starts
	if err := menu.Load(context.Background()); err != nil {
		logger.Warn("menu catalog did not load at startup", zap.Error(err))
	}

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Cart-Token")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Campus Canteen Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍛 Welcome to the Campus Canteen Ordering API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"menu":    "/api/menu",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, routes.Deps{
		Menu:   handlers.NewMenuHandler(menu),
		Cart:   handlers.NewCartHandler(carts, menu),
		Auth:   handlers.NewAuthHandler(sessions, cfg.JWTSecret),
		Admin:  handlers.NewAdminHandler(carts),
		Secret: cfg.JWTSecret,
	})

	// Start server
	logger.Info("🚀 Server running", zap.String("addr", "http://localhost:"+cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}

// newStore opens the configured key-value backend.
func newStore(cfg *config.Config) (storage.Store, error) {
	switch cfg.StorageBackend {
	case "redis":
		return storage.NewRedisStore(cfg.RedisAddr), nil
	case "memory":
		return storage.NewMemoryStore(), nil
	default:
		return storage.NewSQLiteStore(cfg.SQLitePath)
	}
}
