package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recordquery/internal/config"
	"recordquery/internal/model"
	"recordquery/internal/service"
)

// ReportArchiver stores a benchmark report and returns a download URL.
type ReportArchiver interface {
	Archive(ctx context.Context, report *model.BenchmarkReport) (string, error)
}

func pageDefaults(q config.QueryConfig) service.PageDefaults {
	return service.PageDefaults{Limit: q.DefaultLimit, MaxLimit: q.MaxLimit}
}

// ListRecords handles GET /records.
// @Summary List records
// @Description Paginated, filtered and sorted record listing.
// @Tags records
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Case-sensitive substring of data"
// @Param startDate query string false "Inclusive lower bound (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string false "Inclusive upper bound (YYYY-MM-DD or RFC 3339)"
// @Param sortBy query string false "createdAt or data"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.QueryResult
// @Failure 400 {object} Problem
// @Failure 500 {object} Problem
// @Router /records [get]
func ListRecords(svc service.RecordService, q config.QueryConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := service.BuildFilter(c.Query("search"), c.Query("startDate"), c.Query("endDate"))
		if err != nil {
			return writeError(c, err)
		}
		return findAll(c, svc, f, pageDefaults(q))
	}
}

// SearchText handles GET /records/search/text.
// @Summary Text search
// @Description Paginated records whose data contains q (case-sensitive). Date parameters are ignored.
// @Tags records
// @Produce json
// @Param q query string true "Case-sensitive substring of data"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param sortBy query string false "createdAt or data"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.QueryResult
// @Failure 400 {object} Problem
// @Failure 500 {object} Problem
// @Router /records/search/text [get]
func SearchText(svc service.RecordService, q config.QueryConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		text := c.Query("q")
		if text == "" {
			return writeError(c, fmt.Errorf("%w: q is required", service.ErrInvalidFilterInput))
		}
		return findAll(c, svc, model.QueryFilter{SearchText: text}, pageDefaults(q))
	}
}

// SearchDateRangePaged handles GET /records/search/date-range.
// @Summary Paginated records in a date range
// @Tags records
// @Produce json
// @Param startDate query string true "Inclusive lower bound (YYYY-MM-DD or RFC 3339)"
// @Param endDate query string true "Inclusive upper bound (YYYY-MM-DD or RFC 3339)"
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Param sortBy query string false "createdAt or data"
// @Param sortOrder query string false "asc or desc"
// @Success 200 {object} model.QueryResult
// @Failure 400 {object} Problem
// @Failure 500 {object} Problem
// @Router /records/search/date-range [get]
func SearchDateRangePaged(svc service.RecordService, q config.QueryConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		f, err := requiredRange(c)
		if err != nil {
			return writeError(c, err)
		}
		return findAll(c, svc, f, pageDefaults(q))
	}
}

func findAll(c *fiber.Ctx, svc service.RecordService, f model.QueryFilter, d service.PageDefaults) error {
	sort, err := service.ParseSort(c.Query("sortBy"), c.Query("sortOrder"))
	if err != nil {
		return writeError(c, err)
	}
	page, err := service.NormalizePage(c.Query("page"), c.Query("limit"), d)
	if err != nil {
		return writeError(c, err)
	}

	res, err := svc.FindAll(c.UserContext(), f, sort, page)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// requiredRange parses startDate and endDate, both of which must be present.
func requiredRange(c *fiber.Ctx) (model.QueryFilter, error) {
	rawFrom, rawTo := c.Query("startDate"), c.Query("endDate")
	if rawFrom == "" || rawTo == "" {
		return model.QueryFilter{}, fmt.Errorf("%w: startDate and endDate are required", service.ErrInvalidFilterInput)
	}
	return service.BuildFilter("", rawFrom, rawTo)
}

// SearchByDateRange handles GET /records/search.
// @Summary Records in a date range
// @Tags records
// @Produce json
// @Param startDate query string true "Inclusive lower bound"
// @Param endDate query string true "Inclusive upper bound"
// @Param limit query int false "Maximum rows (default 100)"
// @Success 200 {object} model.DateRangeResult
// @Failure 400 {object} Problem
// @Router /records/search [get]
func SearchByDateRange(svc service.RecordService, q config.QueryConfig) fiber.Handler {
	d := service.PageDefaults{Limit: q.SearchDefaultLimit, MaxLimit: q.MaxLimit}
	if d.Limit <= 0 {
		d.Limit = 100
	}
	return func(c *fiber.Ctx) error {
		f, err := requiredRange(c)
		if err != nil {
			return writeError(c, err)
		}
		limit, err := service.NormalizeLimit(c.Query("limit"), d)
		if err != nil {
			return writeError(c, err)
		}

		res, err := svc.SearchByDateRange(c.UserContext(), *f.DateFrom, *f.DateTo, limit)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(res)
	}
}

// GetRecord handles GET /records/:id.
// @Summary Get a record
// @Tags records
// @Produce json
// @Param id path int true "Record id"
// @Success 200 {object} model.RecordDetail
// @Failure 400 {object} Problem
// @Failure 404 {object} Problem
// @Router /records/{id} [get]
func GetRecord(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Params("id")
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id < 1 {
			return writeError(c, fmt.Errorf("%w: %q is not a positive integer", errInvalidID, raw))
		}

		rec, err := svc.FindByID(c.UserContext(), id)
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(rec)
	}
}

// GetStats handles GET /records/stats.
// @Summary Dataset statistics
// @Tags records
// @Produce json
// @Success 200 {object} model.Stats
// @Failure 500 {object} Problem
// @Router /records/stats [get]
func GetStats(svc service.RecordService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.GetStats(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}
		return c.JSON(stats)
	}
}

// GetPerformance handles GET /records/performance. With archive=true the
// report is also stored and archive_url is set. archive may be nil when
// object storage is not configured.
// @Summary Run the query benchmark
// @Tags records
// @Produce json
// @Param archive query bool false "Store the report and return a presigned URL"
// @Success 200 {object} model.BenchmarkReport
// @Failure 500 {object} Problem
// @Failure 503 {object} Problem
// @Router /records/performance [get]
func GetPerformance(svc service.RecordService, archive ReportArchiver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		wantArchive := c.QueryBool("archive", false)
		if wantArchive && archive == nil {
			return writeProblem(c, fiber.StatusServiceUnavailable, "ARCHIVE_DISABLED", "report archiving is not configured")
		}

		report, err := svc.GetPerformanceMetrics(c.UserContext())
		if err != nil {
			return writeError(c, err)
		}

		if wantArchive {
			u, err := archive.Archive(c.UserContext(), report)
			if err != nil {
				slog.ErrorContext(c.UserContext(), "report_archive_failed", slog.String("error", err.Error()))
				return writeProblem(c, fiber.StatusBadGateway, "ARCHIVE_FAILED", "report could not be archived")
			}
			report.ArchiveURL = u
		}
		return c.JSON(report)
	}
}
