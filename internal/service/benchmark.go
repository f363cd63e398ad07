package service

import (
	"context"
	"fmt"
	"time"

	"recordquery/internal/clock"
	"recordquery/internal/model"
	"recordquery/internal/repository"
)

type benchmark struct {
	name string
	run  func(ctx context.Context) (int, error)
}

func monthRange(year int, month time.Month, lastDay int) model.QueryFilter {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, month, lastDay, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1).Add(-time.Nanosecond)
	return model.QueryFilter{DateFrom: &from, DateTo: &to}
}

// benchmarks is the fixed battery, in execution order.
func (s *recordService) benchmarks() []benchmark {
	rows := func(f model.QueryFilter, sort model.SortSpec, limit int) func(context.Context) (int, error) {
		return func(ctx context.Context) (int, error) {
			r, err := s.repo.Query(ctx, f, sort, repository.PageQuery{Limit: limit})
			return len(r), err
		}
	}
	newest := model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc}

	return []benchmark{
		{name: "Count All Records", run: func(ctx context.Context) (int, error) {
			return s.repo.Count(ctx, model.QueryFilter{})
		}},
		{name: "Find Recent 100", run: rows(model.QueryFilter{}, newest, 100)},
		{name: "Search by Data", run: rows(model.QueryFilter{SearchText: "Lorem"}, model.SortSpec{}, 50)},
		{name: "Date Range Query (May 2024)", run: rows(monthRange(2024, time.May, 31), model.SortSpec{}, 100)},
		{name: "Date Range Query (September 2024)", run: rows(monthRange(2024, time.September, 30), model.SortSpec{}, 100)},
	}
}

// GetPerformanceMetrics runs each benchmark in turn so that no two queries
// contend with each other. The first failure aborts the run.
func (s *recordService) GetPerformanceMetrics(ctx context.Context) (res *model.BenchmarkReport, err error) {
	start := s.clock.Now()
	ctx, span := tracer.Start(ctx, "RecordService.GetPerformanceMetrics")
	defer func() { endSpan(span, err) }()

	battery := s.benchmarks()
	results := make([]model.BenchmarkResult, 0, len(battery))
	var sum int64
	for _, b := range battery {
		queryStart := s.clock.Now()
		n, err := b.run(ctx)
		if err != nil {
			return nil, fmt.Errorf("benchmark %q: %w", b.name, persistenceErr("run query", err))
		}
		elapsed := clock.SinceMs(s.clock, queryStart)
		sum += elapsed
		results = append(results, model.BenchmarkResult{
			Name:        b.name,
			QueryTimeMs: elapsed,
			ResultCount: n,
		})
	}

	return &model.BenchmarkReport{
		IndividualQueries: results,
		TotalTimeMs:       clock.SinceMs(s.clock, start),
		AverageTimeMs:     float64(sum) / float64(len(results)),
	}, nil
}
