package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"colegioapi/internal/config"
	"colegioapi/internal/database"
	"colegioapi/internal/database/migration"
	handlers "colegioapi/internal/http/handler"
	"colegioapi/internal/http/middleware"
	"colegioapi/internal/otel"
	"colegioapi/internal/repository/postgres"
	"colegioapi/internal/service"
	"colegioapi/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	ctx := context.Background()

	// Tracing degrades to a noop provider when the collector is unreachable
	shutdownTracing, err := otel.Init(ctx, time.UTC)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer shutdownTracing(ctx)

	// PostgreSQL connection with pooling via database/sql
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, time.UTC, cfg.Database.Host); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	// S3-compatible object storage for attendance report exports
	objStore, err := storage.NewMinIO(cfg.MinIO)
	if err != nil {
		log.Fatalf("failed to initialize object storage: %v", err)
	}

	depRepo := postgres.NewDepartmentPostgres(db)
	subRepo := postgres.NewSubjectPostgres(db)
	stuRepo := postgres.NewStudentPostgres(db)
	enrRepo := postgres.NewEnrollmentPostgres(db)
	sesRepo := postgres.NewAttendancePostgres(db)

	svcs := handlers.Services{
		Departments: service.NewDepartmentService(depRepo),
		Subjects:    service.NewSubjectService(subRepo),
		Students:    service.NewStudentService(stuRepo, cfg.FilterCacheTTL),
		Enrollments: service.NewEnrollmentService(enrRepo, subRepo, stuRepo),
		Attendance:  service.NewAttendanceService(sesRepo, stuRepo, objStore),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	// RequestID adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	// JSON Logger middleware for structured request logs
	app.Use(middleware.Logger())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, X-Request-ID",
	}))

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}
	app.Use(promMiddleware.Handler())
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	handlers.RegisterRoutes(app, db, svcs)

	addr := cfg.AppHost + ":" + cfg.Port

	if err := app.Listen(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
