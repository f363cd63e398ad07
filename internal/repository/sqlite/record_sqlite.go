package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"recordquery/internal/model"
	"recordquery/internal/repository"
)

// Timestamps are stored as INTEGER unix milliseconds so range predicates and
// ordering compare numerically instead of as formatted text.
const schema = `
CREATE TABLE IF NOT EXISTS records (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	data       TEXT    NOT NULL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_records_created_at ON records (created_at);
CREATE INDEX IF NOT EXISTS idx_records_data ON records (data);`

// RecordSQLite is an embedded SQLite implementation of repository.RecordRepository,
// backed by modernc.org/sqlite. It serves local runs and end-to-end tests.
type RecordSQLite struct {
	db *sql.DB
}

// NewRecordSQLite creates a new RecordSQLite repository.
func NewRecordSQLite(db *sql.DB) *RecordSQLite {
	return &RecordSQLite{db: db}
}

var _ repository.RecordRepository = (*RecordSQLite)(nil)

// Migrate creates the records table and its indexes if they do not exist.
func (r *RecordSQLite) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Insert writes recs in one transaction and returns them with their assigned IDs.
// A zero UpdatedAt defaults to CreatedAt.
func (r *RecordSQLite) Insert(ctx context.Context, recs []model.Record) ([]model.Record, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO records (data, created_at, updated_at) VALUES (?, ?, ?)`)
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	out := make([]model.Record, 0, len(recs))
	for _, rec := range recs {
		if rec.UpdatedAt.IsZero() {
			rec.UpdatedAt = rec.CreatedAt
		}
		res, err := stmt.ExecContext(ctx, rec.Data, rec.CreatedAt.UnixMilli(), rec.UpdatedAt.UnixMilli())
		if err != nil {
			return nil, fmt.Errorf("insert record: %w", err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return nil, fmt.Errorf("last insert id: %w", err)
		}
		rec.ID = id
		rec.CreatedAt = fromMillis(rec.CreatedAt.UnixMilli())
		rec.UpdatedAt = fromMillis(rec.UpdatedAt.UnixMilli())
		out = append(out, rec)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return out, nil
}

var sortColumns = map[model.SortField]string{
	model.SortByCreatedAt: "created_at",
	model.SortByData:      "data",
}

func whereClause(f model.QueryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.HasSearch() {
		conds = append(conds, "instr(data, ?) > 0")
		args = append(args, f.SearchText)
	}
	if f.DateFrom != nil {
		conds = append(conds, "created_at >= ?")
		args = append(args, ceilMillis(*f.DateFrom))
	}
	if f.DateTo != nil {
		conds = append(conds, "created_at <= ?")
		args = append(args, f.DateTo.UnixMilli())
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
func (r *RecordSQLite) Query(ctx context.Context, f model.QueryFilter, s model.SortSpec, pq repository.PageQuery) ([]model.Record, error) {
	where, args := whereClause(f)
	order, err := orderClause(s)
	if err != nil {
		return nil, err
	}
	q := `SELECT id, data, created_at, updated_at FROM records` + where + order + ` LIMIT ? OFFSET ?`
	args = append(args, pq.Limit, pq.Offset)

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Record, 0)
	for rows.Next() {
		var (
			rec                  model.Record
			createdAt, updatedAt int64
		)
		if err := rows.Scan(&rec.ID, &rec.Data, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		rec.CreatedAt = fromMillis(createdAt)
		rec.UpdatedAt = fromMillis(updatedAt)
		items = append(items, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Count returns the number of records matching f.
func (r *RecordSQLite) Count(ctx context.Context, f model.QueryFilter) (int, error) {
	where, args := whereClause(f)
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM records`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

// FindByID fetches a single record by its ID. Absence is reported as sql.ErrNoRows.
func (r *RecordSQLite) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	var (
		rec                  model.Record
		createdAt, updatedAt int64
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, data, created_at, updated_at FROM records WHERE id = ?`, id,
	).Scan(&rec.ID, &rec.Data, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}
	rec.CreatedAt = fromMillis(createdAt)
	rec.UpdatedAt = fromMillis(updatedAt)
	return &rec, nil
}

// GroupCountByMonth counts records per UTC calendar month, newest first.
func (r *RecordSQLite) GroupCountByMonth(ctx context.Context, limit int) ([]model.MonthlyBucket, error) {
	const q = `
		SELECT strftime('%Y-%m', created_at / 1000.0, 'unixepoch') AS month, COUNT(*) AS count
		FROM records
		GROUP BY month
		ORDER BY month DESC
		LIMIT ?
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

// ceilMillis rounds a lower bound up to a whole millisecond.
// Upper bounds use UnixMilli, which floors.
func ceilMillis(t time.Time) int64 {
	ms := t.UnixMilli()
	if t.Nanosecond()%int(time.Millisecond) != 0 {
		ms++
	}
	return ms
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
