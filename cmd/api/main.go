package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shopfront/internal/auth"
	"shopfront/internal/config"
	"shopfront/internal/database"
	"shopfront/internal/handler"
	"shopfront/internal/i18n"
	"shopfront/internal/repository"
	"shopfront/internal/router"
	"shopfront/internal/service"

	"github.com/redis/go-redis/v9"
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
	logger.Info().Msg("starting shopfront API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Apply pending migrations before opening the pool
	if err := database.RunMigrations(cfg.Database, logger); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	userRepo := repository.NewUserRepository(pool, logger)
	cartRepo := repository.NewCartRepository(pool, logger)
	wishlistRepo := repository.NewWishlistRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	translationRepo := repository.NewTranslationRepository(pool, logger)

	// Initialize the token revocation store. Without Redis, logout
	// still clears the client token but revocation is not tracked.
	var revocation auth.RevocationStore = auth.NoopRevocationStore{}
	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Msg("redis unreachable, token revocation disabled")
		} else {
			revocation = auth.NewRedisRevocationStore(client)
			defer client.Close()
			logger.Info().Str("addr", cfg.Redis.Addr).Msg("token revocation store connected")
		}
	}

	tokens := auth.NewTokenManager(
		cfg.Auth.JWTSecret,
		time.Duration(cfg.Auth.TokenTTLMin)*time.Minute,
		revocation,
		logger,
	)

	// Initialize translation bundle loader with S3 and local fallback
	fileLoader := i18n.NewFileLoader(logger)
	bundleLoader := fileLoader
	if cfg.Translations.S3Enabled {
		s3Loader, err := i18n.NewS3Loader(ctx, cfg.Translations.S3Bucket, cfg.Translations.S3Region, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
		} else {
			bundleLoader = i18n.NewFallbackLoader(s3Loader, fileLoader, cfg.Translations.S3Prefix, true, logger)
		}
	}

	// Initialize services
	productService := service.NewProductService(productRepo, cfg.Uploads.BaseURL, logger)
	categoryService := service.NewCategoryService(categoryRepo, cfg.Uploads.BaseURL, logger)
	cartService := service.NewCartService(cartRepo, productRepo, logger)
	wishlistService := service.NewWishlistService(wishlistRepo, productRepo, logger)
	orderService := service.NewOrderService(orderRepo, productRepo, cartRepo, logger)
	userService := service.NewUserService(userRepo, orderRepo, logger)
	authService := service.NewAuthService(userRepo, tokens, logger)
	translationService := service.NewTranslationService(translationRepo, bundleLoader, cfg.Translations.BundleDir, logger)
	statsService := service.NewStatsService(productRepo, categoryRepo, userRepo, orderRepo, logger)

	// Initialize router
	mux := router.New(router.Handlers{
		Auth:        handler.NewAuthHandler(authService, logger),
		Product:     handler.NewProductHandler(productService, logger),
		Category:    handler.NewCategoryHandler(categoryService, logger),
		Cart:        handler.NewCartHandler(cartService, logger),
		Wishlist:    handler.NewWishlistHandler(wishlistService, logger),
		Order:       handler.NewOrderHandler(orderService, logger),
		User:        handler.NewUserHandler(userService, logger),
		Translation: handler.NewTranslationHandler(translationService, logger),
		Stats:       handler.NewStatsHandler(statsService, logger),
	}, authService, logger)

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
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
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
