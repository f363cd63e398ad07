package mocks

import (
	"context"
	"time"

	"recordquery/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) FindAll(ctx context.Context, f model.QueryFilter, s model.SortSpec, p model.Page) (*model.QueryResult, error) {
	args := m.Called(ctx, f, s, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.QueryResult), args.Error(1)
}

func (m *MockRecordService) FindByID(ctx context.Context, id int64) (*model.RecordDetail, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.RecordDetail), args.Error(1)
}

func (m *MockRecordService) SearchByDateRange(ctx context.Context, from, to time.Time, limit int) (*model.DateRangeResult, error) {
	args := m.Called(ctx, from, to, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DateRangeResult), args.Error(1)
}

func (m *MockRecordService) GetStats(ctx context.Context) (*model.Stats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Stats), args.Error(1)
}

func (m *MockRecordService) GetPerformanceMetrics(ctx context.Context) (*model.BenchmarkReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BenchmarkReport), args.Error(1)
}
