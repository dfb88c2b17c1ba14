package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifeplanner/config"
	_ "lifeplanner/docs" // Swagger docs
	"lifeplanner/internal/event/repository"
	memoryRepo "lifeplanner/internal/event/repository/memory"
	sqliteRepo "lifeplanner/internal/event/repository/sqlite"
	"lifeplanner/internal/event/usecase"
	"lifeplanner/internal/httpserver"
	"lifeplanner/internal/scheduler"
	"lifeplanner/pkg/gemini"
	"lifeplanner/pkg/log"
)

// @title       Life Planner API
// @description AI-powered personal scheduling: event extraction, recurrence expansion, conflict detection and resolution.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Life Planner...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Store driver: %s", cfg.Store.Driver)

	// 3. Gemini client
	if cfg.Gemini.APIKey == "" {
		logger.Error(ctx, "GEMINI_API_KEY is required")
		return
	}
	llm, err := gemini.New(gemini.Config{
		APIKey:            cfg.Gemini.APIKey,
		Model:             cfg.Gemini.Model,
		APIURL:            cfg.Gemini.APIURL,
		RequestsPerMinute: cfg.Gemini.RequestsPerMinute,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize Gemini client: %v", err)
		return
	}

	// 4. Event repository
	var repo repository.Repository
	switch cfg.Store.Driver {
	case "sqlite":
		db, dbErr := sqliteRepo.Open(cfg.Store.Path)
		if dbErr != nil {
			logger.Errorf(ctx, "Failed to open sqlite store: %v", dbErr)
			return
		}
		defer db.Close()
		repo = sqliteRepo.New(db, logger)
	default:
		repo = memoryRepo.New()
	}

	// 5. Event UseCase
	eventUC := usecase.New(logger, llm, repo, nil)

	// Flags are recomputed at startup so a persisted store wakes up with
	// current past/conflict state.
	if err := eventUC.RefreshIssues(ctx); err != nil {
		logger.Warnf(ctx, "Initial flag refresh failed: %v", err)
	}

	// 6. Day-rollover scheduler
	if cfg.Scheduler.Enabled {
		sched := scheduler.New(logger, eventUC, cfg.Scheduler.RefreshCron)
		if err := sched.Start(ctx); err != nil {
			logger.Errorf(ctx, "Failed to start scheduler: %v", err)
			return
		}
		defer sched.Stop()
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		EventUseCase: eventUC,
		RateLimit:    cfg.RateLimit,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
