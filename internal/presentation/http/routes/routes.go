package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/ventes-dashboard/internal/config"
	"github.com/sangkips/ventes-dashboard/internal/domain/session"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/handler"
	"github.com/sangkips/ventes-dashboard/internal/presentation/http/middleware"
	"github.com/sirupsen/logrus"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Dashboard *handler.DashboardHandler
	Entry     *handler.EntryHandler
	Analysis  *handler.AnalysisHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Auth middleware.SessionAuthenticator
	Cfg  *config.Config
	Log  logrus.FieldLogger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h, deps)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.Auth))
		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(rg *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Per-IP limiter on login attempts
	loginLimiter := middleware.NewIPRateLimiter(middleware.RateLimiterConfig{
		Requests: deps.Cfg.RateLimit.Requests,
		Window:   time.Duration(deps.Cfg.RateLimit.Duration) * time.Second,
	})

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimiter.Middleware(), h.Auth.Login)
		auth.POST("/logout", middleware.OptionalAuthMiddleware(deps.Auth), h.Auth.Logout)
	}
	rg.GET("/session", middleware.OptionalAuthMiddleware(deps.Auth), h.Auth.Session)
}

func registerProtectedRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/filters", h.Dashboard.FilterOptions)

	overview := rg.Group("/overview", middleware.RequireView(session.Overview))
	{
		overview.GET("", h.Dashboard.Overview)
		overview.GET("/export", h.Dashboard.Export)
	}

	entry := rg.Group("/entry", middleware.RequireView(session.DataEntry))
	{
		entry.GET("/products", h.Entry.ListProducts)
		entry.POST("/products", h.Entry.CreateProduct)
		entry.GET("/clients", h.Entry.ListClients)
		entry.POST("/clients", h.Entry.CreateClient)
		entry.POST("/sales", h.Entry.CreateSale)
		entry.GET("/sales/quote", h.Entry.QuoteSale)
		entry.GET("/options", h.Entry.FormOptions)
	}

	analysis := rg.Group("/analysis", middleware.RequireView(session.Analysis))
	{
		analysis.GET("/period", h.Analysis.Period)
		analysis.GET("/top-products", h.Analysis.TopProducts)
		analysis.GET("/distribution", h.Analysis.Distribution)
	}
}
