package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"recordquery/internal/clock"
	"recordquery/internal/config"
	"recordquery/internal/model"
	repoMocks "recordquery/internal/repository/mocks"
)

func recentFilter(since time.Time) interface{} {
	return mock.MatchedBy(func(f model.QueryFilter) bool {
		return f.DateFrom != nil && f.DateFrom.Equal(since) && f.DateTo == nil && !f.HasSearch()
	})
}

func TestRecordService_GetStats(t *testing.T) {
	buckets := []model.MonthlyBucket{
		{Month: "2024-09", Count: 20000},
		{Month: "2024-08", Count: 20000},
	}
	weekAgo := fixedNow.Add(-7 * 24 * time.Hour)

	tests := []struct {
		name       string
		setupMocks func(mRepo *repoMocks.MockRecordRepository)
		wantErr    bool
		checkRes   func(t *testing.T, res *model.Stats)
	}{
		{
			name: "happy path",
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("Count", mock.Anything, model.QueryFilter{}).Return(40000, nil)
				mRepo.On("GroupCountByMonth", mock.Anything, 12).Return(buckets, nil)
				mRepo.On("Count", mock.Anything, recentFilter(weekAgo)).Return(1500, nil)
			},
			checkRes: func(t *testing.T, res *model.Stats) {
				assert.Equal(t, 40000, res.TotalRecords)
				assert.Equal(t, buckets, res.MonthlyStats)
				assert.Equal(t, 1500, res.RecentRecords)
			},
		},
		{
			name: "empty dataset",
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("Count", mock.Anything, model.QueryFilter{}).Return(0, nil)
				mRepo.On("GroupCountByMonth", mock.Anything, 12).Return(nil, nil)
				mRepo.On("Count", mock.Anything, recentFilter(weekAgo)).Return(0, nil)
			},
			checkRes: func(t *testing.T, res *model.Stats) {
				assert.NotNil(t, res.MonthlyStats)
				assert.Empty(t, res.MonthlyStats)
			},
		},
		{
			name: "monthly grouping fails",
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("Count", mock.Anything, model.QueryFilter{}).Return(40000, nil)
				mRepo.On("GroupCountByMonth", mock.Anything, 12).Return(nil, errors.New("db fail"))
				mRepo.On("Count", mock.Anything, recentFilter(weekAgo)).Return(1500, nil)
			},
			wantErr: true,
		},
		{
			name: "recent count fails",
			setupMocks: func(mRepo *repoMocks.MockRecordRepository) {
				mRepo.On("Count", mock.Anything, model.QueryFilter{}).Return(40000, nil)
				mRepo.On("GroupCountByMonth", mock.Anything, 12).Return(buckets, nil)
				mRepo.On("Count", mock.Anything, recentFilter(weekAgo)).Return(0, errors.New("db fail"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockRecordRepository)
			svc := newTestService(mRepo)

			tt.setupMocks(mRepo)

			res, err := svc.GetStats(context.Background())

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrAggregation)
				assert.ErrorIs(t, err, ErrPersistence)
				assert.Nil(t, res)
			} else {
				require.NoError(t, err)
				tt.checkRes(t, res)
			}
			mRepo.AssertExpectations(t)
		})
	}
}

func TestRecordService_GetStats_ConfiguredWindow(t *testing.T) {
	mRepo := new(repoMocks.MockRecordRepository)
	svc := NewRecordService(mRepo, clock.Fixed(fixedNow), config.QueryConfig{RecentWindowDays: 30, MonthlyBuckets: 3})

	mRepo.On("Count", mock.Anything, model.QueryFilter{}).Return(10, nil)
	mRepo.On("GroupCountByMonth", mock.Anything, 3).Return([]model.MonthlyBucket{}, nil)
	mRepo.On("Count", mock.Anything, recentFilter(fixedNow.AddDate(0, 0, -30))).Return(4, nil)

	res, err := svc.GetStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 4, res.RecentRecords)
	mRepo.AssertExpectations(t)
}
