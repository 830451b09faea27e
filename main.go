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

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/podlesnov2602-commits/Dars2/config"
	"github.com/podlesnov2602-commits/Dars2/handlers"
	"github.com/podlesnov2602-commits/Dars2/models"
	"github.com/podlesnov2602-commits/Dars2/repository"
	"github.com/podlesnov2602-commits/Dars2/routes"
	"github.com/podlesnov2602-commits/Dars2/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.JWTSecret == "" {
		logger.Fatal("JWT_SECRET not set")
	}

	client, db, err := config.ConnectMongo(cfg)
	if err != nil {
		logger.Fatal("cannot connect to mongodb", zap.Error(err))
	}

	passwordHash, err := utils.HashPassword(cfg.AdminPassword)
	if err != nil {
		logger.Fatal("failed to hash admin password", zap.Error(err))
	}
	admin := models.AdminIdentity{Username: cfg.AdminUsername, PasswordHash: passwordHash}

	cache := utils.NewCache(cfg.RedisAddr, cfg.RedisPassword, logger)
	tokens := utils.NewTokenService(cfg.JWTSecret)
	repo := repository.NewPropertyRepository(db)

	properties := handlers.NewPropertyController(repo, cache)
	auth := handlers.NewAuthController(admin, tokens)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"*"},
	}))

	routes.RegisterRoutes(e, properties, auth, tokens)

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := cache.Close(); err != nil {
		logger.Error("redis close failed", zap.Error(err))
	}
	if err := client.Disconnect(ctx); err != nil {
		logger.Error("mongodb disconnect failed", zap.Error(err))
	}
}
