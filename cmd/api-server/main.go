package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"mrp/database"
	"mrp/internal/cache"
	"mrp/internal/config"
	"mrp/internal/logging"
	"mrp/internal/microservices/http-api/handler"
	"mrp/internal/microservices/http-api/repository"
	"mrp/internal/microservices/http-api/service"
)

func main() {
	// 1. Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		File:   cfg.LogFile,
	})

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Connect to the database
	db, err := database.Connect(cfg, logger)
	if err != nil {
		return err
	}
	defer database.Close(db)

	// 3. Session cache, optional
	var sessions cache.SessionCache = cache.NoopSessionCache{}
	if cfg.SessionCacheEnabled() {
		redisCache, err := cache.NewRedisSessionCache(ctx, cfg.RedisURL, cfg.RedisPassword, cfg.SessionCacheTTL)
		if err != nil {
			// tokens still validate against the database
			logger.Warn("session cache disabled", "error", err)
		} else {
			defer redisCache.Close()
			sessions = redisCache
			logger.Info("session cache enabled", "ttl", cfg.SessionCacheTTL)
		}
	}

	// 4. Repositories and services
	userRepo := repository.NewUserRepository(db)
	mediaRepo := repository.NewMediaRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	router := handler.NewRouter(cfg, handler.Services{
		Auth:     service.NewAuthService(userRepo, sessions, cfg, logger),
		Media:    service.NewMediaService(mediaRepo, logger),
		Rating:   service.NewRatingService(ratingRepo, mediaRepo, logger),
		Favorite: service.NewFavoriteService(favoriteRepo, mediaRepo),
	}, logger)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: cfg.RequestTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("MRP server listening", "addr", srv.Addr, "version", cfg.ServerVersion, "env", cfg.GoEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
