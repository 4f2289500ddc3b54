package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	_ "github.com/pastelpay/landing-api/docs"
	"github.com/pastelpay/landing-api/internal/api"
	"github.com/pastelpay/landing-api/internal/api/metrics"
	"github.com/pastelpay/landing-api/internal/core/service"
	mongodb "github.com/pastelpay/landing-api/internal/infrastructure/db/mongo"
	"github.com/pastelpay/landing-api/internal/pkg/config"
	"github.com/pastelpay/landing-api/pkg/logger"
)

// @title        Pastel Landing API
// @version      1.0
// @description  Backend for the Pastel marketing site: registration, login, blog listing and contact form.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()
	store := openStore(ctx, cfg, log)

	e := api.NewRouter(store, cfg.Mongo.URI != "", log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("landing api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
}

// openStore connects to MongoDB and runs the startup steps (indexes, example
// posts). Any failure degrades the store instead of aborting: the API must
// come up and report "not available" rather than crash.
func openStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) *mongodb.Store {
	if cfg.Mongo.URI == "" {
		log.Warn().Msg("MONGO_URI not set, starting without a database")
		return mongodb.NewStore(nil)
	}

	_, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Warn().Err(err).Msg("mongo connection failed, starting degraded")
		return mongodb.NewStore(nil)
	}

	store := mongodb.NewStore(db)

	if err := mongodb.NewUserRepository(store).EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create user email index")
	}

	blogService := service.NewBlogService(mongodb.NewBlogRepository(store), log)
	seeded, err := blogService.SeedExamplePosts(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("example post seeding failed")
	} else if seeded > 0 {
		metrics.BlogPostsSeededTotal.Add(float64(seeded))
	}

	return store
}
