package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"leadintake/internal/auth"
	"leadintake/internal/config"
	"leadintake/internal/database"
	"leadintake/internal/database/migration"
	handlers "leadintake/internal/http/handler"
	"leadintake/internal/http/middleware"
	"leadintake/internal/logger"
	"leadintake/internal/otel"
	"leadintake/internal/repository/postgres"
	"leadintake/internal/service"
	"leadintake/internal/storage"
	"leadintake/internal/uploads"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	logg := logger.NewStructured(cfg.LogLevel, cfg.LogFormat)

	// Initialize tracing; degrades to a no-op provider on exporter failure
	shutdownTracing, err := otel.Init(context.Background(), time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	// Initialize PostgreSQL connection (with pooling via database/sql)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(context.Background(), db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// Initialize reusable S3-compatible object storage client and the
	// upload gateway on top of it
	objStore, err := storage.NewMinIO(cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}
	gateway := uploads.NewGateway(objStore, cfg.Storage)

	// External session provider for the admin route gate
	tokenReader, err := auth.NewProviderClient(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize auth provider client: %v", err)
	}

	// Initialize repositories and services
	subRepo := postgres.NewSubmissionPostgres(db)
	subSvc := service.NewSubmissionService(gateway, subRepo, logg)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// Register global middleware
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	// HTTP server spans
	app.Use(otelfiber.Middleware())

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatalf("failed to register prometheus metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Session gate for all admin-scoped routes
	gate := middleware.NewSessionGate(tokenReader, cfg.Auth.SessionCookie, cfg.Auth.ProtectedPrefix)
	app.Use(gate.Handler())

	// Register HTTP routes with injected service
	handlers.RegisterRoutes(app, db, subSvc)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
