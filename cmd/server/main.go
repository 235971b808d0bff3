package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"gemino/internal/config"
	"gemino/internal/handlers"
	"gemino/internal/logging"
	"gemino/internal/monitoring"
	"gemino/internal/router"
	"gemino/internal/services"
)

func main() {
	// ──── Step 1: Load Environment Variables ────
	cfg, err := config.LoadServer()
	if err != nil {
		fmt.Fprintf(os.Stderr, "✗ Configuration failed: %v\n", err)
		os.Exit(1)
	}

	logger := logging.Must(logging.ForServer(cfg))
	defer logger.Sync()

	logger.Info("🚀 Starting Gemino gateway...")
	logger.Info("✓ Environment variables loaded")

	// ──── Step 2: Initialize Gemini Client ────
	gen, err := services.NewTextGenerator(context.Background(), cfg.GeminiSDK, cfg.GeminiAPIKey)
	if err != nil {
		logger.Fatal("✗ Gemini client initialization failed", zap.Error(err))
	}
	metrics := monitoring.NewMetrics()
	geminiService := services.NewGeminiService(gen, logger, metrics)
	defer geminiService.Close()
	logger.Info("✓ Gemini client initialized",
		zap.String("sdk", cfg.GeminiSDK),
		zap.String("model", services.GeminiModel),
	)

	// ──── Step 3: Start HTTP Server ────
	generateHandler := handlers.NewGenerateHandler(geminiService, logger)
	r := router.New(generateHandler, metrics, logger)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("Server forced to shutdown", zap.Error(err))
		}
	}()

	logger.Info("✓ Gemino gateway ready on http://localhost:" + cfg.Port)
	logger.Info("  API:     POST http://localhost:" + cfg.Port + "/generate")
	logger.Info("  Metrics: GET  http://localhost:" + cfg.Port + "/metrics")

	if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server error", zap.Error(err))
	}
	logger.Info("Server exiting")
}
