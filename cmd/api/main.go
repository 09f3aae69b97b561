package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"invoicer/internal/billing"
	"invoicer/internal/config"
	"invoicer/internal/database"
	"invoicer/internal/exchange"
	"invoicer/internal/handlers"
	"invoicer/internal/logger"
	"invoicer/internal/middleware"
	"invoicer/internal/services"
	"invoicer/internal/validator"

	_ "invoicer/internal/docs" // Import swagger docs
)

// @title           Invoicer API
// @version         1.0
// @description     Invoicer tracks bi-monthly contractor invoices: billable deployments, meetings and custom items per period, with totals, payment dates and payment status.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
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

	// Create database manager
	dbManager, err := database.NewManager(database.NewConfig(appConfig))
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	defer func() {
		if err := dbManager.Close(); err != nil {
			log.Warnf("failed to close database: %v", err)
		}
	}()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	cal := billing.NewCalendar(appConfig.Location, nil)
	rates := exchange.NewYahooSource(
		&http.Client{Timeout: appConfig.HTTPTimeout},
		appConfig.ExchangeRateURL,
		appConfig.ExchangeRateFallback,
		appConfig.ExchangeRateTTL,
	)

	// Initialize services
	db := dbManager.DB()
	settingsService := services.NewSettingsService(db, cal)
	invoiceService := services.NewInvoiceService(db, cal, settingsService)
	overviewService := services.NewOverviewService(invoiceService, settingsService, rates, cal, appConfig.Accounts)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	routes := handlers.Routes{
		Accounts: appConfig.Accounts,
		Account:  handlers.NewAccountHandler(appConfig.Accounts, settingsService),
		Audit:    handlers.NewAuditHandler(auditService, appConfig.Accounts),
		Exchange: handlers.NewExchangeHandler(rates, overviewService),
		Invoice:  handlers.NewInvoiceHandler(invoiceService, auditService),
		Period:   handlers.NewPeriodHandler(cal, appConfig.DueTimeLabel()),
		PIN:      handlers.NewPINHandler(appConfig.PINHash),
		Settings: handlers.NewSettingsHandler(settingsService, auditService),
	}

	// Initialize Gin router
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	handlers.RegisterRoutes(router, routes)

	log.Infow("Starting invoicer server",
		"port", appConfig.Port,
		"accounts", appConfig.Accounts,
		"timezone", appConfig.Location.String(),
		"db_driver", appConfig.DBDriver,
	)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
