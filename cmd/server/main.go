// Package main provides the entry point for the gateway HTTP server.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	appConfig "github.com/teamarena/gateway/internal/config"
	"github.com/teamarena/gateway/internal/database"
	"github.com/teamarena/gateway/internal/database/migrate"
	"github.com/teamarena/gateway/internal/health"
	"github.com/teamarena/gateway/internal/middleware"
	sessionRouter "github.com/teamarena/gateway/internal/session/router"
	teamsRouter "github.com/teamarena/gateway/internal/teams/router"
	tournamentRouter "github.com/teamarena/gateway/internal/tournament/router"
	"github.com/teamarena/gateway/internal/upstream"
	"github.com/teamarena/gateway/pkg/logger"
	"github.com/teamarena/gateway/pkg/retry"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appConfig.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	zapLogger, err := logger.NewWithConfig(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()

	ctx := context.Background()

	db, err := retry.DoWithResult(ctx, retry.StoreConfig(), database.New)
	if err != nil {
		zapLogger.Fatalw("failed to connect to session store", "error", err)
	}

	if err := retry.Do(ctx, retry.StoreConfig(), func() error {
		return migrate.Migrate(db, cfg.Session.Driver)
	}); err != nil {
		zapLogger.Fatalw("failed to migrate session store", "error", err)
	}

	client := upstream.New(cfg.Upstream, zapLogger)

	gin.SetMode(cfg.GinMode)
	r := gin.New()
	r.Use(middleware.Recovery(zapLogger))
	r.Use(middleware.Logger(zapLogger))
	r.Use(middleware.CORS(&cfg.CORS))

	sessions := sessionRouter.RegisterRoutes(r, db, client, cfg.Session.JWTSecret, cfg.Session.TTL, zapLogger)
	r.Use(middleware.Auth(sessions, zapLogger))

	teamsRouter.RegisterRoutes(r, client, zapLogger)
	tournamentRouter.RegisterRoutes(r, client, zapLogger)
	r.GET("/health", health.New(db, zapLogger).Check)

	server := &http.Server{
		Addr:         cfg.Server.GetAddress(),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		zapLogger.Infow("server starting", "address", server.Addr, "upstream", cfg.Upstream.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatalw("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Errorw("forced shutdown", "error", err)
	}
}
