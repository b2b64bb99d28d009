package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"meeting-task-pipeline/config"
	_ "meeting-task-pipeline/docs" // Swagger docs
	"meeting-task-pipeline/internal/app"
	"meeting-task-pipeline/internal/httpserver"
	"meeting-task-pipeline/internal/middleware"
	taskHTTP "meeting-task-pipeline/internal/task/delivery/http"
	transcriptHTTP "meeting-task-pipeline/internal/transcript/delivery/http"
	"meeting-task-pipeline/pkg/log"
)

// @title       Meeting Task Pipeline API
// @description Turns meeting transcripts into tasks and calendar events.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
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

	logger.Info(ctx, "Starting Meeting Task Pipeline...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Domains
	application, err := app.New(ctx, cfg, logger, app.Options{})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize application: %v", err)
		return
	}
	defer application.Close(context.Background())

	// 4. HTTP Server
	mw := middleware.New(logger, middleware.Config{ExtractPerMin: cfg.RateLimit.ExtractPerMin})
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		Middleware:        mw,
		TrustedProxies:    cfg.HTTPServer.TrustedProxies,
		TranscriptHandler: transcriptHTTP.New(logger, application.Transcripts),
		TaskHandler:       taskHTTP.New(logger, application.Tasks),
		Readiness:         application.Ready,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize HTTP server: %v", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Errorf(ctx, "Failed to run server: %v", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
