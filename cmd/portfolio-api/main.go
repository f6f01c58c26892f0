package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio-api/internal/admin"
	"portfolio-api/internal/api"
	"portfolio-api/internal/api/handlers"
	"portfolio-api/internal/repository"
	"portfolio-api/internal/service"
	"portfolio-api/pkg/auth"
	"portfolio-api/pkg/config"
	"portfolio-api/pkg/logger"
	"portfolio-api/pkg/postgres"

	"go.uber.org/zap"
)

// @title Portfolio API
// @version 1.0
// @description Personal Portfolio API with AI Assistant (Rya)

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8000
// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer appLogger.Sync()

	appLogger.Info("Starting Portfolio API service")

	// Initialize database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	personalRepo := repository.NewPersonalInfoRepository(db, appLogger)
	skillRepo := repository.NewSkillRepository(db, appLogger)
	certRepo := repository.NewCertificationRepository(db, appLogger)
	projectRepo := repository.NewProjectRepository(db, appLogger)
	expRepo := repository.NewExperienceRepository(db, appLogger)
	contactRepo := repository.NewContactRepository(db, appLogger)
	aiLogRepo := repository.NewAIContextLogRepository(db, appLogger)

	// Initialize services
	personalService := service.NewPersonalInfoService(personalRepo, appLogger)
	skillService := service.NewSkillService(skillRepo, appLogger)
	certService := service.NewCertificationService(certRepo, appLogger)
	projectService := service.NewProjectService(projectRepo, appLogger)
	expService := service.NewExperienceService(expRepo, appLogger)
	contactService := service.NewContactService(contactRepo, appLogger)

	llmService, err := service.NewLLMService(&cfg.GigaChat, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize LLM service", zap.Error(err))
	}
	defer llmService.Close()

	ryaService := service.NewRyaService(personalRepo, skillRepo, certRepo, projectRepo, expRepo, aiLogRepo, llmService, appLogger)

	// Initialize handlers and router
	apiHandlers := &api.Handlers{
		Personal:      handlers.NewPersonalHandler(personalService, appLogger),
		Skill:         handlers.NewSkillHandler(skillService, appLogger),
		Certification: handlers.NewCertificationHandler(certService, appLogger),
		Project:       handlers.NewProjectHandler(projectService, appLogger),
		Experience:    handlers.NewExperienceHandler(expService, appLogger),
		Contact:       handlers.NewContactHandler(contactService, appLogger),
		Rya:           handlers.NewRyaHandler(ryaService, appLogger),
	}

	app := api.SetupRouter(apiHandlers, cfg.CORS.AllowOrigins, admin.NewViews(), appLogger)

	// Mount the admin panel on the same app. It talks to the API over HTTP
	// only, never through the services directly.
	sessions := auth.NewSessionManager(cfg.Admin.SecretKey, cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.SessionExpiry)
	adminClient := admin.NewClient(cfg.Admin.APIBaseURL, appLogger)
	adminHandler := admin.NewHandler(adminClient, sessions, appLogger)
	admin.RegisterRoutes(app, adminHandler, sessions, appLogger)

	// Start server
	go func() {
		addr := ":" + cfg.Server.Port
		appLogger.Info("Server starting", zap.String("address", addr))
		if err := app.Listen(addr); err != nil {
			appLogger.Fatal("Server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	if err := app.Shutdown(); err != nil {
		appLogger.Error("Server shutdown error", zap.Error(err))
	}
}
