// Package server wires services and handlers into the HTTP router.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"folio/internal/config"
	"folio/internal/fx"
	"folio/internal/handlers"
	"folio/internal/logger"
	"folio/internal/middleware"
	"folio/internal/services"
	"folio/internal/store"

	_ "folio/internal/docs" // Import swagger docs
)

// HealthProbe reports whether the record store is reachable.
type HealthProbe func(ctx context.Context) error

// RouterDependencies collects handler dependencies.
type RouterDependencies struct {
	Dashboard   services.DashboardServicer
	Users       services.UserServicer
	Products    services.ProductServicer
	Projections services.ProjectionServicer
	Audit       services.AuditServicer
	Health      HealthProbe

	JWTSecret      string
	PipelineAPIKey string
	Window         handlers.ProjectionWindow
	EnableSwagger  bool
}

// NewDependencies builds the services over repo. auditDB may be nil, in
// which case audit entries are only logged.
func NewDependencies(repo *store.Repository, auditDB *gorm.DB, session services.SessionConfig) RouterDependencies {
	dashboard := services.NewDashboardService(repo, session)
	return RouterDependencies{
		Dashboard:   dashboard,
		Users:       services.NewUserService(repo),
		Products:    services.NewProductService(repo),
		Projections: services.NewProjectionService(repo, dashboard),
		Audit:       services.NewAuditService(auditDB),
	}
}

// SessionConfig derives the dashboard session settings from cfg.
func SessionConfig(cfg *config.Config) services.SessionConfig {
	var converter fx.Converter
	switch cfg.FXMode {
	case config.FXModeStatic:
		converter = fx.NewStaticRates(fx.DefaultRates)
	default:
		converter = fx.NewFixedMultiplier(cfg.FXMockMultiplier)
	}
	return services.SessionConfig{ReferenceYear: cfg.ReferenceYear, Converter: converter}
}

// GormHealth pings the connection pool behind db.
func GormHealth(db *gorm.DB) HealthProbe {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

// NewRouter wires the HTTP routes exposed by the API.
func NewRouter(deps RouterDependencies) *gin.Engine {
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard, deps.Window)
	investmentHandler := handlers.NewInvestmentHandler(deps.Dashboard, deps.Audit)
	userHandler := handlers.NewUserHandler(deps.Users)
	productHandler := handlers.NewProductHandler(deps.Products)
	pipelineHandler := handlers.NewPipelineHandler(deps.Projections)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	if deps.EnableSwagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	router.GET("/api/health", func(c *gin.Context) {
		if deps.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := deps.Health(ctx); err != nil {
				logger.Get().Errorw("health probe failed", "error", err)
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	// Pipeline routes (API key auth)
	pipeline := v1.Group("/pipeline")
	pipeline.Use(middleware.PipelineAuthMiddleware(deps.PipelineAPIKey))
	pipeline.POST("/projections", pipelineHandler.IngestProjections)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.JWTSecret))

	protected.GET("/profile", userHandler.GetProfile)
	protected.GET("/users", userHandler.ListUsers)
	protected.GET("/products", productHandler.ListProducts)

	protected.GET("/dashboard", dashboardHandler.GetDashboard)
	protected.GET("/dashboard/projections", dashboardHandler.GetYearlyProjection)

	investments := protected.Group("/investments")
	investments.GET("", dashboardHandler.ListInvestments)
	investments.POST("", investmentHandler.CreateInvestment)
	investments.PUT("/:id", investmentHandler.UpdateInvestment)
	investments.DELETE("/:id", investmentHandler.DeleteInvestment)
	investments.GET("/:id/projections", dashboardHandler.GetProjections)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
