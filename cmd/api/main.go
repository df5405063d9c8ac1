package main

import (
	"fmt"
	"fundboard/internal/config"
	"fundboard/internal/database"
	"fundboard/internal/handlers"
	"fundboard/internal/logger"
	"fundboard/internal/middleware"
	"fundboard/internal/seed"
	"fundboard/internal/services"
	"fundboard/internal/validator"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "fundboard/internal/docs" // Import swagger docs
)

// @title           Fundboard API
// @version         1.0
// @description     Portfolio monitoring dashboard API for investment funds, stock holdings, and historical prices.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	db := dbManager.DB()

	// Optional sample data for first run
	if appConfig.SeedData {
		if err := seed.Run(db); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
	}

	// Initialize services
	fundService := services.NewFundService(db)
	holdingService := services.NewHoldingService(db)
	priceService := services.NewStockPriceService(db)
	peerService := services.NewPeerFundService(db)

	// Initialize handlers
	fundHandler := handlers.NewFundHandler(fundService)
	holdingHandler := handlers.NewHoldingHandler(holdingService)
	priceHandler := handlers.NewStockPriceHandler(priceService)
	peerHandler := handlers.NewPeerFundHandler(peerService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(appConfig.CORSOrigins))

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Fund routes
	funds := v1.Group("/funds")
	funds.GET("", fundHandler.GetFunds)
	funds.POST("", fundHandler.CreateFund)
	funds.GET("/:id", fundHandler.GetFund)
	funds.PUT("/:id", fundHandler.UpdateFund)
	funds.DELETE("/:id", fundHandler.DeleteFund)
	funds.GET("/:id/performance", fundHandler.GetFundPerformance)
	funds.POST("/:id/performance", fundHandler.RecordPerformance)
	funds.GET("/:id/peers", fundHandler.GetPeerComparison)
	funds.GET("/:id/stats", fundHandler.GetFundStatistics)

	// Holding routes
	holdings := v1.Group("/holdings")
	holdings.GET("", holdingHandler.GetHoldings)
	holdings.POST("", holdingHandler.CreateHolding)
	holdings.GET("/:id", holdingHandler.GetHolding)
	holdings.PUT("/:id", holdingHandler.UpdateHolding)
	holdings.DELETE("/:id", holdingHandler.DeleteHolding)
	holdings.GET("/fund/:fund_id/summary", holdingHandler.GetFundHoldingsSummary)
	holdings.GET("/fund/:fund_id/sectors", holdingHandler.GetSectorBreakdown)
	holdings.GET("/fund/:fund_id/top", holdingHandler.GetTopHoldings)

	// Stock price routes
	prices := v1.Group("/stock-prices")
	prices.GET("", priceHandler.GetStockPrices)
	prices.POST("", priceHandler.CreateStockPrice)
	prices.GET("/tickers", priceHandler.GetTickers)
	prices.POST("/batch/latest", priceHandler.GetLatestPrices)
	prices.GET("/ticker/:ticker/latest", priceHandler.GetLatestPrice)
	prices.GET("/ticker/:ticker/history", priceHandler.GetPriceHistory)
	prices.GET("/ticker/:ticker/summary", priceHandler.GetPriceSummary)
	prices.GET("/:id", priceHandler.GetStockPrice)
	prices.PUT("/:id", priceHandler.UpdateStockPrice)
	prices.DELETE("/:id", priceHandler.DeleteStockPrice)

	// Peer fund routes
	peers := v1.Group("/peer-funds")
	peers.GET("", peerHandler.GetPeerFunds)
	peers.POST("", peerHandler.CreatePeerFund)
	peers.GET("/:id", peerHandler.GetPeerFund)
	peers.DELETE("/:id", peerHandler.DeletePeerFund)

	log.Infof("Starting Fundboard backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
