package main

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/application/service"
	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/infrastructure/database"
	"github.com/sangkips/ventes-dashboard/internal/infrastructure/repository"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/handler"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/routes"
	"github.com/sangkips/ventes-dashboard/pkg/logger"
	"github.com/sangkips/ventes-dashboard/pkg/utils"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := logger.New(cfg.Log.Level, cfg.Log.Format)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.Open(&cfg.Database, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	saleRepo := repository.NewSaleRepository(db)
	productRepo := repository.NewProductRepository(db)
	clientRepo := repository.NewClientRepository(db)

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin, jwtManager, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to initialize authentication")
	}
	if cfg.Admin.PasswordHash == "" {
		log.Warn("ADMIN_PASSWORD_HASH is not set; using the plain ADMIN_PASSWORD")
	}
	productService := service.NewProductService(productRepo, log)
	clientService := service.NewClientService(clientRepo, log)
	saleService := service.NewSaleService(saleRepo, productRepo, clientRepo, log)
	dashboardService := service.NewDashboardService(saleRepo, log)
	analysisService := service.NewAnalysisService(saleRepo, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, cfg.App.Env == "production"),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Entry:     handler.NewEntryHandler(productService, clientService, saleService),
		Analysis:  handler.NewAnalysisHandler(analysisService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Auth: authService,
		Cfg:  cfg,
		Log:  log,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.WithFields(logrus.Fields{
		"service": cfg.App.Name,
		"port":    port,
		"env":     cfg.App.Env,
		"db":      cfg.Database.Driver,
	}).Info("Starting server")

	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
