package main

import (
	"net/http"

	"storefront-service/internal/handler"
	mid "storefront-service/internal/middleware"
	"storefront-service/pkg/config"
	"storefront-service/pkg/database"
	"storefront-service/pkg/jwtutil"
	"storefront-service/pkg/logger"
	"storefront-service/prometheus"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load .env file; missing file is fine, environment variables win
	_ = godotenv.Load()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)
	log.Info("JWT utility initialized")

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	if err := database.InitDB(appConfig); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Prepare image upload directory
	if err := handler.InitUploads(appConfig.Upload); err != nil {
		log.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Uploaded product images
	e.Static(appConfig.Upload.URLPrefix, appConfig.Upload.Dir)

	api := e.Group("/api")

	// Public catalog routes
	api.GET("/products", handler.ListProducts)
	api.GET("/products/:id", handler.GetProduct)

	// Auth routes
	api.POST("/auth/register", handler.Register)
	api.POST("/auth/login", handler.Login)

	// Cart routes - session required
	cartAPI := api.Group("/cart", mid.AuthMiddleware)
	cartAPI.GET("", handler.ListCart)
	cartAPI.POST("", handler.AddToCart)
	cartAPI.PATCH("/:id", handler.UpdateCartItem)
	cartAPI.DELETE("/:id", handler.RemoveCartItem)

	// Checkout
	api.POST("/checkout", handler.Checkout, mid.AuthMiddleware)

	// Favorites routes - session required
	favoriteAPI := api.Group("/favorites", mid.AuthMiddleware)
	favoriteAPI.GET("", handler.ListFavorites)
	favoriteAPI.POST("", handler.ToggleFavorite)

	// Order history - session required
	orderAPI := api.Group("/orders", mid.AuthMiddleware)
	orderAPI.GET("", handler.ListOrders)
	orderAPI.GET("/:id", handler.GetOrder)

	// Admin routes - admin session required
	adminAPI := api.Group("/admin", mid.AuthMiddleware, mid.AdminMiddleware)
	adminAPI.GET("/products", handler.ListProducts)
	adminAPI.POST("/products", handler.CreateProduct)
	adminAPI.PUT("/products/:id", handler.UpdateProduct)
	adminAPI.DELETE("/products/:id", handler.DeleteProduct)
	adminAPI.POST("/upload", handler.UploadImage)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
