package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
	"go.uber.org/zap"

	"github.com/seu-repo/voice-hub/internal/adapter/history"
	"github.com/seu-repo/voice-hub/internal/adapter/http/fiber/handlers"
	"github.com/seu-repo/voice-hub/internal/adapter/http/fiber/middleware"
	"github.com/seu-repo/voice-hub/internal/adapter/state"
	deviceservice "github.com/seu-repo/voice-hub/internal/service/device"
	"github.com/seu-repo/voice-hub/internal/service/health"
	"github.com/seu-repo/voice-hub/internal/service/interpreter"
	"github.com/seu-repo/voice-hub/pkg/config"
)

const serviceName = "voice-hub"

func main() {
	// 1. Load Configuration (.env first so viper sees the overrides)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// 2. Initialize Logger
	logger, err := buildLogger(cfg.App.Environment)
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	logger.Info("Starting Voice Automation Hub",
		zap.String("service", serviceName),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	// 3. Initialize Shared State (device store + history log)
	stateStore := state.NewStore(logger)
	historyLog := history.NewLog(cfg.History.Capacity, logger)

	// 4. Initialize Services (Business Logic Layer)
	interpreterService := interpreter.NewService(interpreter.Config{
		MaxCommandLength: cfg.Interpreter.MaxCommandLength,
	}, logger)
	deviceService := deviceservice.NewService(stateStore, historyLog, logger)
	healthService := health.NewService(cfg.App.Version, stateStore, historyLog, logger)

	// 5. Initialize Fiber HTTP Server
	app := fiber.New(fiber.Config{
		AppName:               serviceName,
		ServerHeader:          serviceName,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          middleware.ErrorHandler(logger),
	})

	// Global Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(middleware.NewCORS(cfg.CORS))

	// Health Check Endpoints
	health.NewFiberHandler(healthService).RegisterRoutes(app)

	// Metrics endpoint for Prometheus
	app.Get("/metrics", func(c *fiber.Ctx) error {
		handler := fasthttpadaptor.NewFastHTTPHandler(promhttp.Handler())
		handler(c.Context())
		return nil
	})

	// API v1 Routes
	v1 := app.Group("/api/v1")

	interpretHandler := handlers.NewInterpretHandler(interpreterService, logger)
	v1.Post("/interpret", interpretHandler.Interpret)

	deviceHandler := handlers.NewDeviceHandler(deviceService, logger)
	v1.Post("/execute", deviceHandler.Execute)
	v1.Get("/devices", deviceHandler.List)
	v1.Get("/devices/:name/status", deviceHandler.Status)

	historyHandler := handlers.NewHistoryHandler(deviceService, logger)
	v1.Get("/history", historyHandler.List)

	// 6. Start HTTP Server
	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 7. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server exited")
}

func buildLogger(environment string) (*zap.Logger, error) {
	if environment == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
