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

	"oss-kar/internal/config"
	"oss-kar/internal/database"
	"oss-kar/internal/events"
	"oss-kar/internal/handler"
	"oss-kar/internal/pricing"
	"oss-kar/internal/repository"
	"oss-kar/internal/router"
	"oss-kar/internal/service"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting oss-kar API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
	}

	// Initialize repositories
	optionRepo := repository.NewOptionRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)

	publisher := newPublisher(cfg.RabbitMQ, logger)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn().Err(err).Msg("failed to close event publisher")
		}
	}()

	// Initialize services
	engine := pricing.NewEngine(decimal.NewFromInt(cfg.Pricing.BasePrice))
	catalogService := service.NewCatalogService(optionRepo, logger)
	quoteService := service.NewQuoteService(optionRepo, engine, logger)
	linkService := service.NewLinkService(quoteService, cfg.Server.PublicBaseURL, logger)
	orderService := service.NewOrderService(orderRepo, quoteService, publisher, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Catalog: handler.NewCatalogHandler(catalogService, logger),
		Quote:   handler.NewQuoteHandler(quoteService, logger),
		Link:    handler.NewLinkHandler(linkService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
		System:  handler.NewSystemHandler(pool, logger),
	}, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("public_base_url", cfg.Server.PublicBaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newPublisher connects to RabbitMQ when enabled. A broker that cannot be
// reached at startup degrades to dropping events.
func newPublisher(cfg config.RabbitMQConfig, logger zerolog.Logger) events.Publisher {
	if !cfg.Enabled {
		logger.Info().Msg("order event publishing disabled")
		return events.NewNopPublisher(logger)
	}

	publisher, err := events.NewRabbitPublisher(cfg.URL, cfg.Exchange, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise RabbitMQ publisher, order events will be dropped")
		return events.NewNopPublisher(logger)
	}

	return publisher
}
