package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/univeval/evaluation-system/internal/api"
	"github.com/univeval/evaluation-system/internal/core/service"
	"github.com/univeval/evaluation-system/internal/infrastructure/ai"
	"github.com/univeval/evaluation-system/internal/infrastructure/config"
	mongodb "github.com/univeval/evaluation-system/internal/infrastructure/db/mongo"
	redisdb "github.com/univeval/evaluation-system/internal/infrastructure/db/redis"
	"github.com/univeval/evaluation-system/pkg/logger"
)

// @title           University Evaluation System API
// @version         1.0
// @description     Role-based evaluation management: departments, questionnaires, public evaluations.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	users := mongodb.NewUserRepository(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewDepartmentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("department index creation failed")
	}
	if err := service.SeedDefaultAccounts(ctx, users, log); err != nil {
		log.Fatal().Err(err).Msg("account seeding failed")
	}

	e := api.NewRouter(api.Options{
		Mongo:     db,
		Redis:     rdb,
		JWTSecret: cfg.JWTSecret,
		Groq: ai.Config{
			APIKey:  cfg.Groq.APIKey,
			Model:   cfg.Groq.Model,
			BaseURL: cfg.Groq.BaseURL,
		},
		Logger: log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("evaluation api started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
