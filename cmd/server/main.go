package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pamatshop4/blacklight-backend/config"
	"github.com/pamatshop4/blacklight-backend/internal/app/controller"
	"github.com/pamatshop4/blacklight-backend/internal/app/service"
	"github.com/pamatshop4/blacklight-backend/internal/middleware"
	"github.com/pamatshop4/blacklight-backend/internal/router"
	"github.com/pamatshop4/blacklight-backend/pkg/logger"
	"github.com/pamatshop4/blacklight-backend/pkg/redis"
	"github.com/pamatshop4/blacklight-backend/pkg/sheets"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting blacklight backend", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	// Initialize the submissions sheet client. A missing or broken config
	// keeps the server bootable; submissions then fail with a 500 until the
	// credentials are fixed.
	var rowStore service.RowStore
	sheetsConfig := sheets.Config{
		CredentialsJSON: cfg.Sheets.CredentialsJSON,
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		SheetName:       cfg.Sheets.SheetName,
	}
	sheetsClient, err := sheets.NewClient(context.Background(), sheetsConfig)
	if err != nil {
		logger.Warn("Submissions sheet unavailable", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		rowStore = sheetsClient
		logger.Info("Submissions sheet client ready", map[string]interface{}{
			"spreadsheet_id": cfg.Sheets.SpreadsheetID,
			"sheet_name":     cfg.Sheets.SheetName,
		})
	}

	// Optional rate limiting; skipped entirely without a Redis host
	var rateLimiter middleware.Limiter
	if cfg.Redis.Enabled() {
		if err := redis.Init(&cfg.Redis); err != nil {
			logger.Warn("Rate limiting disabled", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer func() {
				if err := redis.Close(); err != nil {
					logger.Error("Failed to close Redis connection", err)
				}
			}()
			rateLimiter = redis.NewFixedWindowLimiter(
				redis.GetClient(),
				cfg.RateLimit.Requests,
				cfg.RateLimit.Window,
			)
		}
	}

	// Initialize service and controller
	intakeService := service.NewIntakeService(rowStore)
	intakeController := controller.NewIntakeController(intakeService)

	// Setup router
	r := router.NewRouter(intakeController, rateLimiter, cfg)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
