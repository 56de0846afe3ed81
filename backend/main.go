package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pisoplay/tycoon/backend/handlers"
	"github.com/pisoplay/tycoon/backend/middleware"
	"github.com/pisoplay/tycoon/tycoon"
	"github.com/pisoplay/tycoon/tycoon/database"
	"github.com/pisoplay/tycoon/tycoon/logger"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := "../config.toml"
	if len(os.Args) > 1 {
		configPath = os.Args[1]
	}

	// Initialize logger first
	customHandler := logger.NewHandler()
	slog.SetDefault(slog.New(customHandler))

	slog.Info("Starting Tycoon API",
		slog.String("version", version),
		slog.String("commit", commit),
		slog.String("type", "sys"))

	cfg, err := tycoon.LoadConfig(configPath)
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	slog.Info("Connecting to database...")
	dbConfig := database.DBConfig{
		Host:     cfg.DB.Host,
		Port:     cfg.DB.Port,
		User:     cfg.DB.User,
		Password: cfg.DB.Password,
		Database: cfg.DB.Database,
		PoolSize: cfg.DB.PoolSize,
	}
	db, err := database.New(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	slog.Info("Database connected successfully")

	gameApp := tycoon.New(*cfg, version, commit)
	if err := gameApp.Setup(db); err != nil {
		slog.Error("Failed to set up engine", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize Fiber as API-only backend
	app := fiber.New(fiber.Config{
		AppName:      "Tycoon API",
		ServerHeader: "Tycoon-Backend",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "http://localhost:3000,http://localhost:8080",
		AllowMethods: "GET,POST,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Requested-With",
	}))
	app.Use(middleware.LoggingMiddleware())
	app.Use("/api/v1/market/offers", middleware.TradeRateLimit())
	app.Use("/api/v1", middleware.APIRateLimit())

	webApp := handlers.NewWebApp(gameApp)
	webApp.RegisterRoutes(app)

	listenAddr := ":8081"
	go func() {
		if err := app.Listen(listenAddr); err != nil {
			slog.Error("HTTP server stopped", slog.String("error", err.Error()))
		}
	}()
	slog.Info("Tycoon API listening", slog.String("addr", listenAddr))

	s := make(chan os.Signal, 1)
	signal.Notify(s, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-s

	slog.Info("Shutting down API...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		slog.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
	gameApp.Shutdown(10 * time.Second)
}
