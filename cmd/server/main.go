package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gametracker/backend/internal/config"
	"gametracker/backend/internal/database"
	"gametracker/backend/internal/handler"
	"gametracker/backend/internal/logging"
	"gametracker/backend/internal/repository"
	"gametracker/backend/internal/router"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gametracker/backend/docs" // This is important for swag to find the generated docs
)

// @title           GameTracker API
// @version         1.0
// @description     API REST para gestionar biblioteca de videojuegos con reseñas.
// @host            localhost:3000
// @BasePath        /api
func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to connect to database")
	}

	h := handler.New(repository.NewGameRepository(db), repository.NewReviewRepository(db))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(cfg, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logging.Info().
			Str("addr", srv.Addr).
			Str("env", cfg.Env).
			Str("swagger", "http://localhost"+srv.Addr+"/swagger/index.html").
			Msg("Server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Fatal().Err(err).Msg("Server failed")
		}
	}()

	<-ctx.Done()
	stop()
	logging.Info().Msg("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	if err := database.Close(db); err != nil {
		logging.Error().Err(err).Msg("Failed to close database")
	}
	logging.Info().Msg("Server stopped")
}
