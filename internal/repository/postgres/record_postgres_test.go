package postgres

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"recordquery/internal/model"
	"recordquery/internal/repository"
	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var recordColumns = []string{"id", "data", "created_at", "updated_at"}

func ptr(t time.Time) *time.Time { return &t }

func TestWhereClause(t *testing.T) {
	from := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 6, 30, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name     string
		filter   model.QueryFilter
		wantSQL  string
		wantArgs []any
	}{
		{name: "empty filter", filter: model.QueryFilter{}, wantSQL: "", wantArgs: nil},
		{
			name:     "search only",
			filter:   model.QueryFilter{SearchText: "Lorem"},
			wantSQL:  " WHERE strpos(data, $1) > 0",
			wantArgs: []any{"Lorem"},
		},
		{
			name:     "lower bound only",
			filter:   model.QueryFilter{DateFrom: &from},
			wantSQL:  " WHERE created_at >= $1",
			wantArgs: []any{from},
		},
		{
			name:     "all fields",
			filter:   model.QueryFilter{SearchText: "50%", DateFrom: &from, DateTo: &to},
			wantSQL:  " WHERE strpos(data, $1) > 0 AND created_at >= $2 AND created_at <= $3",
			wantArgs: []any{"50%", from, to},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSQL, gotArgs := whereClause(tt.filter)
			assert.Equal(t, tt.wantSQL, gotSQL)
			assert.Equal(t, tt.wantArgs, gotArgs)
		})
	}
}

func TestOrderClause(t *testing.T) {
	got, err := orderClause(model.SortSpec{})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY id ASC", got)

	got, err = orderClause(model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY created_at DESC, id DESC", got)

	got, err = orderClause(model.SortSpec{Field: model.SortByData, Direction: model.SortAsc})
	require.NoError(t, err)
	assert.Equal(t, " ORDER BY data ASC, id ASC", got)

	_, err = orderClause(model.SortSpec{Field: "id; DROP TABLE records"})
	assert.Error(t, err)
}

func TestRecordPostgres_Query(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 31, 23, 59, 59, 0, time.UTC)

	t.Run("filtered and sorted", func(t *testing.T) {
		rows := sqlmock.NewRows(recordColumns).
			AddRow(2, "Lorem ipsum", time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC), time.Now()).
			AddRow(1, "Lorem dolor", time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), time.Now())

		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, data, created_at, updated_at FROM records WHERE strpos(data, $1) > 0 AND created_at >= $2 AND created_at <= $3 ORDER BY created_at DESC, id DESC LIMIT $4 OFFSET $5",
		)).
			WithArgs("Lorem", from, to, 10, 20).
			WillReturnRows(rows)

		res, err := repo.Query(ctx,
			model.QueryFilter{SearchText: "Lorem", DateFrom: &from, DateTo: &to},
			model.SortSpec{Field: model.SortByCreatedAt, Direction: model.SortDesc},
			repository.PageQuery{Limit: 10, Offset: 20},
		)

		require.NoError(t, err)
		require.Len(t, res, 2)
		assert.Equal(t, int64(2), res[0].ID)
		assert.Equal(t, "Lorem dolor", res[1].Data)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("natural order without filter", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(
			"SELECT id, data, created_at, updated_at FROM records ORDER BY id ASC LIMIT $1 OFFSET $2",
		)).
			WithArgs(50, 0).
			WillReturnRows(sqlmock.NewRows(recordColumns))

		res, err := repo.Query(ctx, model.QueryFilter{}, model.SortSpec{}, repository.PageQuery{Limit: 50})

		require.NoError(t, err)
		assert.NotNil(t, res)
		assert.Empty(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM records").
			WillReturnError(errors.New("connection reset"))

		res, err := repo.Query(ctx, model.QueryFilter{}, model.SortSpec{}, repository.PageQuery{Limit: 1})

		assert.EqualError(t, err, "connection reset")
		assert.Nil(t, res)
	})

	t.Run("unsupported sort field", func(t *testing.T) {
		res, err := repo.Query(ctx, model.QueryFilter{}, model.SortSpec{Field: "size"}, repository.PageQuery{Limit: 1})

		assert.Error(t, err)
		assert.Nil(t, res)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRecordPostgres_Count(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("all records", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM records")).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(100000))

		n, err := repo.Count(ctx, model.QueryFilter{})

		assert.NoError(t, err)
		assert.Equal(t, 100000, n)
	})

	t.Run("recent window", func(t *testing.T) {
		since := time.Date(2024, 9, 23, 0, 0, 0, 0, time.UTC)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM records WHERE created_at >= $1")).
			WithArgs(since).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

		n, err := repo.Count(ctx, model.QueryFilter{DateFrom: ptr(since)})

		assert.NoError(t, err)
		assert.Equal(t, 42, n)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("count error", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("timeout"))

		n, err := repo.Count(ctx, model.QueryFilter{})

		assert.Error(t, err)
		assert.Zero(t, n)
	})
}

func TestRecordPostgres_FindByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		rows := sqlmock.NewRows(recordColumns).
			AddRow(7, "Qui officia deserunt", time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM records WHERE id = ?").
			WithArgs(int64(7)).
			WillReturnRows(rows)

		rec, err := repo.FindByID(ctx, 7)

		assert.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, int64(7), rec.ID)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM records WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnError(sql.ErrNoRows)

		rec, err := repo.FindByID(ctx, 404)

		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, rec)
	})
}

func TestRecordPostgres_GroupCountByMonth(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("an error '%s' was not expected when opening a stub database connection", err)
	}
	defer db.Close()

	repo := NewRecordPostgres(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"month", "count"}).
		AddRow("2024-09", 20000).
		AddRow("2024-08", 20000).
		AddRow("2024-07", 19999)

	mock.ExpectQuery("SELECT to_char\\(created_at AT TIME ZONE 'UTC', 'YYYY-MM'\\) AS month, COUNT\\(\\*\\) AS count FROM records GROUP BY month ORDER BY month DESC LIMIT \\$1").
		WithArgs(12).
		WillReturnRows(rows)

	buckets, err := repo.GroupCountByMonth(ctx, 12)

	require.NoError(t, err)
	assert.Equal(t, []model.MonthlyBucket{
		{Month: "2024-09", Count: 20000},
		{Month: "2024-08", Count: 20000},
		{Month: "2024-07", Count: 19999},
	}, buckets)
	assert.NoError(t, mock.ExpectationsWereMet())
}
