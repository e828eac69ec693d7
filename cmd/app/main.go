package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shipments/cmd"
	_ "shipments/docs"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := getConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	root, err := cmd.NewCompositionRoot(ctx, config)
	cancel()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	jobManager := root.CreateJobManager(logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start background jobs: %v", err)
	}

	e := newEcho(config)
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		addr := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(addr); err != nil {
			e.Logger.Infof("HTTP server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	e.Logger.Info("Shutting down")
	jobManager.StopAll()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		e.Logger.Errorf("HTTP server shutdown failed: %v", err)
	}
	if err := root.Close(shutdownCtx); err != nil {
		e.Logger.Errorf("Store shutdown failed: %v", err)
	}
}

func newEcho(config cmd.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	if !config.IsProduction() {
		e.Logger.SetLevel(log.DEBUG)
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}

	return e
}

func getConfig() cmd.Config {
	return cmd.Config{
		HTTPPort:      envOrDefault("HTTP_PORT", "3000"),
		AppEnv:        envOrDefault("APP_ENV", "development"),
		StorageDriver: envOrDefault("STORAGE_DRIVER", cmd.StorageDriverMongo),

		MongoURI:      envOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: envOrDefault("MONGO_DATABASE", "shipment_tracking"),

		DBHost:     envOrDefault("DB_HOST", "localhost"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     envOrDefault("DB_NAME", "shipment_tracking"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
