package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"recordquery/internal/clock"
	"recordquery/internal/config"
	"recordquery/internal/model"
	"recordquery/internal/repository"
)

var tracer = otel.Tracer("recordquery/internal/service")

// RecordService defines the read-side use cases over the record dataset.
type RecordService interface {
	// FindAll returns one page of records matching f, ordered by s.
	// Rows and the total count are fetched concurrently.
	FindAll(ctx context.Context, f model.QueryFilter, s model.SortSpec, p model.Page) (*model.QueryResult, error)

	// FindByID returns a single record, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.RecordDetail, error)

	// SearchByDateRange returns at most limit records created in [from, to], newest first.
	SearchByDateRange(ctx context.Context, from, to time.Time, limit int) (*model.DateRangeResult, error)

	// GetStats returns total, per-month and recent-window counts.
	GetStats(ctx context.Context) (*model.Stats, error)

	// GetPerformanceMetrics runs the benchmark battery sequentially and reports timings.
	GetPerformanceMetrics(ctx context.Context) (*model.BenchmarkReport, error)
}

// recordService is a concrete implementation of RecordService.
type recordService struct {
	repo           repository.RecordRepository
	clock          clock.Clock
	recentWindow   time.Duration
	monthlyBuckets int
}

// NewRecordService constructs a new RecordService. Zero-valued window settings
// fall back to a 7-day recent window and 12 monthly buckets.
func NewRecordService(repo repository.RecordRepository, clk clock.Clock, cfg config.QueryConfig) RecordService {
	days := cfg.RecentWindowDays
	if days <= 0 {
		days = 7
	}
	buckets := cfg.MonthlyBuckets
	if buckets <= 0 {
		buckets = 12
	}
	if clk == nil {
		clk = clock.System()
	}
	return &recordService{
		repo:           repo,
		clock:          clk,
		recentWindow:   time.Duration(days) * 24 * time.Hour,
		monthlyBuckets: buckets,
	}
}

func persistenceErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrPersistence, op, err)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (s *recordService) FindAll(ctx context.Context, f model.QueryFilter, sort model.SortSpec, p model.Page) (res *model.QueryResult, err error) {
	start := s.clock.Now()
	ctx, span := tracer.Start(ctx, "RecordService.FindAll", trace.WithAttributes(
		attribute.Int("page", p.Number),
		attribute.Int("limit", p.Size),
		attribute.Bool("search", f.HasSearch()),
	))
	defer func() { endSpan(span, err) }()

	if err := validatePage(p); err != nil {
		return nil, err
	}

	var (
		rows  []model.Record
		total int
		g     errgroup.Group
	)
	g.Go(func() error {
		r, err := s.repo.Query(ctx, f, sort, repository.PageQuery{Limit: p.Size, Offset: Offset(p)})
		if err != nil {
			return persistenceErr("query records", err)
		}
		rows = r
		return nil
	})
	g.Go(func() error {
		n, err := s.repo.Count(ctx, f)
		if err != nil {
			return persistenceErr("count records", err)
		}
		total = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &model.QueryResult{
		Data:        rows,
		Total:       total,
		Page:        p.Number,
		Limit:       p.Size,
		TotalPages:  TotalPages(total, p.Size),
		QueryTimeMs: clock.SinceMs(s.clock, start),
	}, nil
}

func (s *recordService) FindByID(ctx context.Context, id int64) (res *model.RecordDetail, err error) {
	start := s.clock.Now()
	ctx, span := tracer.Start(ctx, "RecordService.FindByID", trace.WithAttributes(attribute.Int64("id", id)))
	defer func() { endSpan(span, err) }()

	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
		}
		return nil, persistenceErr("find record", err)
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return &model.RecordDetail{Record: *rec, QueryTimeMs: clock.SinceMs(s.clock, start)}, nil
}

func (s *recordService) SearchByDateRange(ctx context.Context, from, to time.Time, limit int) (res *model.DateRangeResult, err error) {
	start := s.clock.Now()
	ctx, span := tracer.Start(ctx, "RecordService.SearchByDateRange", trace.WithAttributes(attribute.Int("limit", limit)))
	defer func() { endSpan(span, err) }()

	if limit < 1 {
		return nil, fmt.Errorf("%w: limit must be at least 1, got %d", ErrInvalidPaginationInput, limit)
	}

	rows, err := s.repo.Query(ctx,
		model.QueryFilter{DateFrom: &from, DateTo: &to},
		model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc},
		repository.PageQuery{Limit: limit},
	)
	if err != nil {
		return nil, persistenceErr("query date range", err)
	}

	return &model.DateRangeResult{
		Data:        rows,
		Count:       len(rows),
		QueryTimeMs: clock.SinceMs(s.clock, start),
		DateRange:   model.DateRange{StartDate: from, EndDate: to},
	}, nil
}
