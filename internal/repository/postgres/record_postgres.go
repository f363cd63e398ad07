package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"recordquery/internal/model"
	"recordquery/internal/repository"
)

// RecordPostgres is a PostgreSQL implementation of repository.RecordRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type RecordPostgres struct {
	db *sql.DB
}

// NewRecordPostgres creates a new RecordPostgres repository.
func NewRecordPostgres(db *sql.DB) *RecordPostgres {
	return &RecordPostgres{db: db}
}

var _ repository.RecordRepository = (*RecordPostgres)(nil)

const selectColumns = `SELECT id, data, created_at, updated_at FROM records`

var sortColumns = map[model.SortField]string{
	model.SortByCreatedAt: "created_at",
	model.SortByData:      "data",
}

// whereClause renders f as a WHERE clause with $n placeholders.
// strpos keeps the match literal, so % and _ in the search text are not wildcards.
func whereClause(f model.QueryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.HasSearch() {
		args = append(args, f.SearchText)
		conds = append(conds, fmt.Sprintf("strpos(data, $%d) > 0", len(args)))
	}
	if f.DateFrom != nil {
		args = append(args, f.DateFrom.UTC())
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if f.DateTo != nil {
		args = append(args, f.DateTo.UTC())
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

func orderClause(s model.SortSpec) (string, error) {
	if s.IsZero() {
		return " ORDER BY id ASC", nil
	}
	col, ok := sortColumns[s.Field]
	if !ok {
		return "", fmt.Errorf("unsupported sort field %q", s.Field)
	}
	dir := "ASC"
	if s.Direction == model.SortDesc {
		dir = "DESC"
	}
	return fmt.Sprintf(" ORDER BY %s %s, id %s", col, dir, dir), nil
}

// Query returns one page of records matching f.
func (r *RecordPostgres) Query(ctx context.Context, f model.QueryFilter, s model.SortSpec, pq repository.PageQuery) ([]model.Record, error) {
	where, args := whereClause(f)
	order, err := orderClause(s)
	if err != nil {
		return nil, err
	}
	args = append(args, pq.Limit, pq.Offset)
	q := selectColumns + where + order +
		fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var rec model.Record
		if err := rows.Scan(&rec.ID, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of records matching f.
func (r *RecordPostgres) Count(ctx context.Context, f model.QueryFilter) (int, error) {
	where, args := whereClause(f)
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID fetches a single record by its ID.
func (r *RecordPostgres) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	row := r.db.QueryRowContext(ctx, selectColumns+` WHERE id = $1`, id)
	var rec model.Record
	if err := row.Scan(&rec.ID, &rec.Data, &rec.CreatedAt, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

// GroupCountByMonth counts records per UTC calendar month, newest first.
func (r *RecordPostgres) GroupCountByMonth(ctx context.Context, limit int) ([]model.MonthlyBucket, error) {
	const q = `
		SELECT to_char(created_at AT TIME ZONE 'UTC', 'YYYY-MM') AS month, COUNT(*) AS count
		FROM records
		GROUP BY month
		ORDER BY month DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	buckets := make([]model.MonthlyBucket, 0)
	for rows.Next() {
		var b model.MonthlyBucket
		if err := rows.Scan(&b.Month, &b.Count); err != nil {
			return nil, err
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return buckets, nil
}
