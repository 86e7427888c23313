package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/supermercado/backoffice-system/internal/api"
	"github.com/supermercado/backoffice-system/internal/infrastructure/config"
	mongodb "github.com/supermercado/backoffice-system/internal/infrastructure/db/mongo"
	redisdb "github.com/supermercado/backoffice-system/internal/infrastructure/db/redis"
	"github.com/supermercado/backoffice-system/pkg/logger"
)

// @title           Supermarket Back Office API
// @version         1.0
// @description     Administration API for products, promotions, loyalty clients and staff users.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in              header
// @name            Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewClientRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("client indexes failed")
	}

	rdb, err := redisdb.Connect(ctx, cfg.Redis)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e, err := api.NewRouter(db, rdb, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("router setup failed")
	}

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(addr); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
