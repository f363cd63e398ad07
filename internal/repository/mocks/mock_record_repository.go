package mocks

import (
	"context"

	"recordquery/internal/model"
	"recordquery/internal/repository"
	"github.com/stretchr/testify/mock"
)

type MockRecordRepository struct {
	mock.Mock
}

func (m *MockRecordRepository) Query(ctx context.Context, f model.QueryFilter, s model.SortSpec, pq repository.PageQuery) ([]model.Record, error) {
	args := m.Called(ctx, f, s, pq)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Record), args.Error(1)
}

func (m *MockRecordRepository) Count(ctx context.Context, f model.QueryFilter) (int, error) {
	args := m.Called(ctx, f)
	return args.Int(0), args.Error(1)
}

func (m *MockRecordRepository) FindByID(ctx context.Context, id int64) (*model.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Record), args.Error(1)
}

func (m *MockRecordRepository) GroupCountByMonth(ctx context.Context, limit int) ([]model.MonthlyBucket, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MonthlyBucket), args.Error(1)
}
