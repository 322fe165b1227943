package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "sequence-backend/docs"
	"sequence-backend/internal/config"
	"sequence-backend/internal/database"
	"sequence-backend/internal/handlers"
	"sequence-backend/internal/repository"
	"sequence-backend/internal/routes"
	"sequence-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"golang.org/x/text/language"
)

// @title Sequence API
// @version 1.0
// @description Personal movie collection: records, filtered views, statistics, export and import
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8010
// @BasePath /api/v1
// @schemes http https

func main() {
	// Setup logger
	log := setupLogger()

	// Load environment variables
	config.LoadEnvFile(log)

	// Load configuration
	cfg := config.Load()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	locale, err := language.Parse(cfg.Query.Locale)
	if err != nil {
		log.Warnf("Invalid QUERY_LOCALE %q, using fr: %v", cfg.Query.Locale, err)
		locale = language.French
	}

	repo, db, err := repository.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open collection store: %v", err)
	}
	if db != nil {
		defer func() {
			if err := db.Close(); err != nil {
				log.Errorf("Error closing database connection: %v", err)
			}
		}()
	}

	opts := []services.Option{services.WithLocale(locale)}

	var presigner handlers.PosterPresigner
	if cfg.MinIO.Enabled {
		minioService, err := services.NewMinIOService(&cfg.MinIO, log)
		if err != nil {
			log.Fatalf("Failed to initialize MinIO service: %v", err)
		}
		presigner = minioService
		opts = append(opts, services.WithExportStore(minioService))
	}

	collectionService := services.NewCollectionService(repo, log, opts...)

	// A collection that cannot be read is served empty; the error is logged.
	loadCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := collectionService.Load(loadCtx); err != nil {
		log.WithError(err).Warn("Starting with an empty collection")
	}
	cancel()

	movieHandler := handlers.NewMovieHandler(collectionService, log)
	collectionHandler := handlers.NewCollectionHandler(collectionService, log)
	uploadHandler := handlers.NewUploadHandler(presigner, log)

	app := fiber.New(fiber.Config{
		AppName:               "Sequence API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		BodyLimit:             cfg.Server.BodyLimit,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(cfg, db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Setup API routes
	routes.Setup(app, movieHandler, collectionHandler, uploadHandler)

	// Graceful shutdown
	go gracefulShutdown(app, log)

	log.Infof("Sequence API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to start HTTP server: %v", err)
	}
}

func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
	})
	log.SetOutput(os.Stdout)
	log.SetLevel(logrus.InfoLevel)

	if os.Getenv("GO_ENV") == "dev" || os.Getenv("GO_ENV") == "development" {
		log.SetLevel(logrus.DebugLevel)
	}

	return log
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	// Logger middleware
	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// CORS middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS, PATCH",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
		ExposeHeaders:    "Content-Disposition",
	}))
}

func healthCheckHandler(cfg *config.Config, db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		storeStatus := "healthy"
		if db != nil {
			if err := db.HealthCheck(); err != nil {
				storeStatus = "unhealthy"
			}
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "sequence-backend",
			"version":   "1.0.0",
			"store":     cfg.Store.Backend,
			"database":  storeStatus,
			"storage":   cfg.MinIO.Enabled,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
