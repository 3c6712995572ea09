package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"vesselhub/internal/adapters/http/middleware"
	"vesselhub/internal/adapters/http/routes"
	"vesselhub/internal/adapters/persistence/memory"
	"vesselhub/internal/config"
	"vesselhub/internal/core/services"

	"github.com/gofiber/fiber/v2"
)

// @title VesselHub API
// @version 1.0
// @description Vessel and crew management API

// @host localhost:8000
// @BasePath /
// @schemes http

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// In-memory store, seeded with demo fleet data
	store := memory.NewStore()
	log.Println("✅ In-memory store initialized")

	// Start Cron Service for daily sweeps (08:30 daily)
	cronService := services.NewCronService(store.Assignments(), store.Certificates())
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "VesselHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass store and cfg for dependency injection)
	routes.Setup(app, store, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
