package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/castwire/castwire/internal/app"
	"github.com/castwire/castwire/internal/auth"
	"github.com/castwire/castwire/internal/casting/actors"
	"github.com/castwire/castwire/internal/casting/movies"
	"github.com/castwire/castwire/internal/platform/db"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, cfg.PGDSN)
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	var revoker *auth.Revoker
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn("redis ping", slog.Any("error", err))
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
		revoker = auth.NewRevoker(redisClient)
	}

	verifier := auth.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	authMiddleware := auth.Middleware{Verifier: verifier, Revoker: revoker, Logger: logger}

	actorsRepo := actors.NewRepository(pool)
	actorsService := actors.NewService(actorsRepo)
	actorsHandler := actors.NewHandler(logger, actorsService, authMiddleware)

	moviesRepo := movies.NewRepository(pool)
	moviesService := movies.NewService(moviesRepo)
	moviesHandler := movies.NewHandler(logger, moviesService, authMiddleware)

	router := app.NewRouter(app.RouterParams{
		Logger:        logger,
		Config:        cfg,
		ActorsHandler: actorsHandler,
		MoviesHandler: moviesHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", slog.Any("error", err))
	}
}
