package main

import (
	"context"
	"log"
	"os"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"taalimflow/config"
	"taalimflow/middleware"
	"taalimflow/routes"
	"taalimflow/storage"
	"taalimflow/utils"
	"taalimflow/worker"
)

func main() {
	logger := log.New(os.Stdout, "SERVER: ", log.Ldate|log.Ltime|log.Lshortfile)

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	if dsn := config.AppConfig.SentryDSN; dsn != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: dsn, Environment: config.AppConfig.Environment}); err != nil {
			logger.Printf("Sentry initialization failed: %v", err)
		}
	}

	// Pick the store backend (postgres, redis or flat file)
	store, err := storage.New()
	if err != nil {
		logger.Fatalf("Failed to initialize storage: %v", err)
	}

	app := fiber.New()
	app.Use(middleware.CORS())

	tracker := utils.NewVisitorTracker(config.AppConfig.VisitorDataFile, log.New(os.Stdout, "VISITOR: ", log.LstdFlags))
	app.Use(middleware.VisitorTracking(tracker))

	// Notification dispatch runs detached from the request path
	notifier := utils.NewNotifier(config.AppConfig)
	notifyWorker := worker.NewNotifyWorker(notifier, log.New(os.Stdout, "NOTIFY: ", log.LstdFlags))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go notifyWorker.Start(ctx)

	routes.SetupRoutes(app, store, tracker, notifyWorker)

	logger.Printf("🚀 Server starting on port %s", config.AppConfig.ServerPort)
	if err := app.Listen(":" + config.AppConfig.ServerPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
