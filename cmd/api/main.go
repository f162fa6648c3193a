package main

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/handlers"
	"folio/internal/logger"
	"folio/internal/seed"
	"folio/internal/server"
	"folio/internal/store"
	"folio/internal/validator"
)

// @title           Folio API
// @version         1.0
// @description     Folio is an investment portfolio dashboard: enriched holdings, category and currency breakdowns, and yearly performance projections.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
// @description Pipeline API key.

func main() {
	appConfig, err := config.Load()
	if err != nil {
		logger.Init("development")
		logger.Get().Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(appConfig.Env)
	defer logger.Sync()

	if err := run(appConfig); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run(appConfig *config.Config) error {
	log := logger.Get()
	validator.Register()

	var (
		recordStore store.Store
		db          *gorm.DB
		health      server.HealthProbe
	)

	switch appConfig.Store {
	case config.StoreMemory:
		recordStore = store.NewMemory()
		log.Warn("Using the in-memory demo store; data is lost on restart")
	default:
		dbManager, err := database.NewManager(database.NewConfig(appConfig))
		if err != nil {
			return fmt.Errorf("failed to create database manager: %w", err)
		}
		defer func() {
			if err := dbManager.Close(); err != nil {
				log.Warnf("database close error: %v", err)
			}
		}()

		if err := dbManager.RunMigrations(); err != nil {
			return fmt.Errorf("failed to run database migrations: %w", err)
		}

		db = dbManager.DB()
		recordStore = store.NewGormStore(db)
		health = server.GormHealth(db)
	}

	repo := store.NewRepository(recordStore)
	if appConfig.Store == config.StoreMemory {
		res, err := seed.Load(context.Background(), repo, seed.Demo())
		if err != nil {
			return fmt.Errorf("failed to seed demo data: %w", err)
		}
		log.Infow("Demo data loaded", "users", res.Users, "investments", res.Investments)
	}

	deps := server.NewDependencies(repo, db, server.SessionConfig(appConfig))
	deps.Health = health
	deps.JWTSecret = appConfig.JWTSecret
	deps.PipelineAPIKey = appConfig.PipelineAPIKey
	deps.Window = handlers.ProjectionWindow{From: appConfig.ProjectionWindowFrom, To: appConfig.ProjectionWindowTo}
	deps.EnableSwagger = appConfig.Env != "production"

	if appConfig.PipelineAPIKey == "" {
		log.Warn("PIPELINE_API_KEY not set; projection ingestion is disabled")
	}

	router := server.NewRouter(deps)

	log.Infof("Starting Folio API on port %s", appConfig.Port)
	if deps.EnableSwagger {
		log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	}
	return router.Run(":" + appConfig.Port)
}
