package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"recordquery/docs"
	"recordquery/internal/clock"
	"recordquery/internal/config"
	"recordquery/internal/database"
	handlers "recordquery/internal/http/handler"
	"recordquery/internal/http/middleware"
	"recordquery/internal/otel"
	"recordquery/internal/repository"
	"recordquery/internal/repository/postgres"
	"recordquery/internal/repository/sqlite"
	"recordquery/internal/service"
	"recordquery/internal/storage"
)

// @title Record Query API
// @version 1.0
// @BasePath /
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	log := setupLogging(os.Stdout, cfg.LogLevel, loc)
	slog.SetDefault(log)

	if err := run(cfg, log, loc); err != nil {
		log.Error("server_exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.AppConfig, log *slog.Logger, loc *time.Location) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing_shutdown_failed", slog.String("error", err.Error()))
		}
	}()

	db, err := database.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo, err := newRepository(ctx, cfg.Database.Driver, db)
	if err != nil {
		return err
	}
	recordSvc := service.NewRecordService(repo, clock.System(), cfg.Query)

	// Report archiving is optional; without MinIO the performance endpoint still runs.
	var archive handlers.ReportArchiver
	if cfg.MinIO.Enabled() {
		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return fmt.Errorf("initialize object storage: %w", err)
		}
		archive = storage.NewReportArchive(objStore, clock.System())
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewDBStatsCollector(db, cfg.Database.Name),
	)
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return fmt.Errorf("register metrics: %w", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.LoggerWithWriter(os.Stdout, loc))
	app.Use(promMiddleware.Handler())

	handlers.RegisterRoutes(app, handlers.Deps{
		DB:      db,
		Records: recordSvc,
		Archive: archive,
		Metrics: reg,
		Query:   cfg.Query,
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	errc := make(chan error, 1)
	go func() {
		addr := ":" + cfg.Port
		log.Info("server_starting", slog.String("addr", addr), slog.String("db_driver", cfg.Database.Driver))
		errc <- app.Listen(addr)
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	log.Info("server_stopping")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return app.ShutdownWithContext(sctx)
}

func newRepository(ctx context.Context, driver string, db *sql.DB) (repository.RecordRepository, error) {
	switch driver {
	case "", database.DriverPostgres:
		return postgres.NewRecordPostgres(db), nil
	case database.DriverSQLite:
		repo := sqlite.NewRecordSQLite(db)
		if err := repo.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
		return repo, nil
	default:
		return nil, errors.New("unsupported database driver " + driver)
	}
}
