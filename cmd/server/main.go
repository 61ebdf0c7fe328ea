package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/algonquin-pet-store/product-service/internal/config"
	"github.com/algonquin-pet-store/product-service/internal/handlers"
	"github.com/algonquin-pet-store/product-service/internal/metrics"
	"github.com/algonquin-pet-store/product-service/internal/repository"
	"github.com/algonquin-pet-store/product-service/internal/server"
	"github.com/algonquin-pet-store/product-service/internal/service"
	"github.com/algonquin-pet-store/product-service/pkg/logger"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting product service",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"metrics_enabled", cfg.Metrics.Enabled,
		"log_level", cfg.LogLevel,
	)

	productRepo := repository.NewStaticProductRepository()
	productService := service.NewProductService(productRepo)

	productHandler := handlers.NewProductHandler(productService, log)
	healthHandler := handlers.NewHealthHandler(log)

	m := metrics.New()

	srv := server.New(
		cfg,
		server.NewRouter(productHandler, m, log),
		server.NewOpsRouter(healthHandler, m),
		log,
	)

	// Stop on interrupt or termination
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		log.Error("server failed", "error", err)
		stop()
		os.Exit(1)
	}
}
