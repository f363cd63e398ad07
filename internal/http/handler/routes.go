package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"recordquery/internal/config"
	"recordquery/internal/http/middleware"
	"recordquery/internal/service"
)

// Deps are the collaborators the routes need. Archive and Metrics are optional.
type Deps struct {
	DB      Pinger
	Records service.RecordService
	Archive ReportArchiver
	Metrics prometheus.Gatherer
	Query   config.QueryConfig
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, d Deps) {
	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Metrics != nil {
		app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(d.Metrics, promhttp.HandlerOpts{})))
	}

	records := app.Group("/records")
	records.Get("/", ListRecords(d.Records, d.Query))
	// Fixed paths go before /:id so they are not parsed as ids.
	records.Get("/stats", GetStats(d.Records))
	records.Get("/performance", GetPerformance(d.Records, d.Archive))
	records.Get("/search", SearchByDateRange(d.Records, d.Query))
	records.Get("/search/text", SearchText(d.Records, d.Query))
	records.Get("/search/date-range", SearchDateRangePaged(d.Records, d.Query))
	records.Get("/:id", GetRecord(d.Records))
}
