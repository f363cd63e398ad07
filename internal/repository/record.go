package repository

import (
	"context"

	"recordquery/internal/model"
)

// RecordRepository is the read-side persistence gateway for records.
// Implementations translate the closed model.QueryFilter into their native
// predicate form and never accept raw SQL fragments from callers.
//
// Substring search is case-sensitive literal containment in every implementation.
// Month buckets are computed in UTC.
type RecordRepository interface {
	// Query returns one window of matching records ordered by s.
	// Ties on the sort key are broken by id in the same direction.
	// A zero SortSpec returns rows in natural order (ascending id).
	Query(ctx context.Context, f model.QueryFilter, s model.SortSpec, pq PageQuery) ([]model.Record, error)

	// Count returns the number of records matching f.
	Count(ctx context.Context, f model.QueryFilter) (int, error)

	// FindByID returns a record by its ID, or sql.ErrNoRows when absent.
	FindByID(ctx context.Context, id int64) (*model.Record, error)

	// GroupCountByMonth returns per-month counts, newest month first, at most limit entries.
	GroupCountByMonth(ctx context.Context, limit int) ([]model.MonthlyBucket, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}
