package main

import (
	"log"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"doctorconnect/config"
	controller "doctorconnect/controllers"
	"doctorconnect/middleware"
	"doctorconnect/routes"
)

func main() {
	// Initialize logger
	logger := log.New(os.Stdout, "DOCTORCONNECT: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := config.ConnectDB(); err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Initialize Sentry error reporting when a DSN is configured
	if config.AppConfig.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.AppConfig.SentryDSN,
			Environment: config.AppConfig.Environment,
		}); err != nil {
			logger.Printf("Failed to initialize Sentry: %v", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	// Seed the initial staff account if configured and missing
	if config.AppConfig.AdminEmail != "" && config.AppConfig.AdminPassword != "" {
		if err := controller.SeedStaffUser(config.DB, config.AppConfig.AdminEmail, config.AppConfig.AdminPassword, logger); err != nil {
			logger.Printf("Failed to seed staff user: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New()

	// Add CORS middleware
	app.Use(middleware.CORS())

	// Setup routes
	routes.SetupRoutes(app, config.DB)

	// Start server
	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
