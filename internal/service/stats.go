package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"recordquery/internal/clock"
	"recordquery/internal/model"
)

// GetStats runs the total, monthly and recent-window queries concurrently.
// If any of them fails the whole call fails with ErrAggregation.
func (s *recordService) GetStats(ctx context.Context) (res *model.Stats, err error) {
	start := s.clock.Now()
	ctx, span := tracer.Start(ctx, "RecordService.GetStats")
	defer func() { endSpan(span, err) }()

	since := start.Add(-s.recentWindow)

	var (
		stats model.Stats
		g     errgroup.Group
	)
	g.Go(func() error {
		n, err := s.repo.Count(ctx, model.QueryFilter{})
		if err != nil {
			return fmt.Errorf("%w: total count: %w", ErrAggregation, persistenceErr("count records", err))
		}
		stats.TotalRecords = n
		return nil
	})
	g.Go(func() error {
		buckets, err := s.repo.GroupCountByMonth(ctx, s.monthlyBuckets)
		if err != nil {
			return fmt.Errorf("%w: monthly buckets: %w", ErrAggregation, persistenceErr("group by month", err))
		}
		stats.MonthlyStats = buckets
		return nil
	})
	g.Go(func() error {
		n, err := s.repo.Count(ctx, model.QueryFilter{DateFrom: &since})
		if err != nil {
			return fmt.Errorf("%w: recent count: %w", ErrAggregation, persistenceErr("count recent records", err))
		}
		stats.RecentRecords = n
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if stats.MonthlyStats == nil {
		stats.MonthlyStats = []model.MonthlyBucket{}
	}
	stats.QueryTimeMs = clock.SinceMs(s.clock, start)
	return &stats, nil
}
