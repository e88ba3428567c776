package main

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"

	"leadinspect/internal/config"
	"leadinspect/internal/database"
	"leadinspect/internal/database/migration"
	handlers "leadinspect/internal/http/handler"
	"leadinspect/internal/http/middleware"
	"leadinspect/internal/otel"
	"leadinspect/internal/pdf"
	"leadinspect/internal/repository/postgres"
	"leadinspect/internal/service"
	"leadinspect/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	handlers.SetDevMode(cfg.Development())

	ctx := context.Background()

	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// Connect via the direct/pooled candidate chain (see internal/database).
	db, err := database.Connect(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, loc, dbHostLabel(cfg)); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage (MinIO client works against any S3 API)
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	inspectorRepo := postgres.NewInspectorPostgres(db)
	inspectorVarRepo := postgres.NewInspectorVariablePostgres(db)
	docRepo := postgres.NewDocumentPostgres(db)
	docTypeRepo := postgres.NewDocumentTypePostgres(db)
	generalVarRepo := postgres.NewGeneralVariablePostgres(db)

	deps := handlers.Deps{
		DB:            db,
		Inspectors:    service.NewInspectorService(inspectorRepo, inspectorVarRepo),
		Documents:     service.NewDocumentService(objStore, docRepo),
		DocumentTypes: service.NewDocumentTypeService(docTypeRepo),
		Variables:     service.NewGeneralVariableService(generalVarRepo),
		Files:         service.NewFileService(objStore),
		Flattener:     pdf.NewFlattener(),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    50 * 1024 * 1024,
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	prom, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to register metrics: %v", err)
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(prom.Handler())

	metricsHandler := fasthttpadaptor.NewFastHTTPHandler(
		promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}),
	)
	app.Get("/metrics", func(c *fiber.Ctx) error {
		metricsHandler(c.Context())
		return nil
	})

	handlers.RegisterRoutes(app, deps)

	addr := ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// dbHostLabel derives the database host for startup logs without leaking
// credentials.
func dbHostLabel(cfg *config.AppConfig) string {
	if cfg.Database.URL != "" {
		if u, err := url.Parse(cfg.Database.URL); err == nil {
			return u.Host
		}
		return "database_url"
	}
	if cfg.Database.ProjectRef != "" {
		return "db." + cfg.Database.ProjectRef + ".supabase.co"
	}
	return ""
}
