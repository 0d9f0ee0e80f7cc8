package service

import (
	"Vitrine/internal/repo"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type mockStatsRepo struct{ mock.Mock }

func (m *mockStatsRepo) Increment(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *mockStatsRepo) Visits(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.StatsRepository = (*mockStatsRepo)(nil)

func TestVisitService_Increment(t *testing.T) {
	sr := new(mockStatsRepo)
	svc := NewVisitService(sr, zap.NewNop().Sugar(), time.Second)

	sr.On("Increment", mock.Anything).Return(int64(42), nil).Once()

	n, err := svc.Increment(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(42), n)
	sr.AssertExpectations(t)
}

func TestVisitService_Increment_Error(t *testing.T) {
	sr := new(mockStatsRepo)
	svc := NewVisitService(sr, zap.NewNop().Sugar(), time.Second)

	sr.On("Increment", mock.Anything).Return(int64(0), errors.New("conn refused")).Once()

	_, err := svc.Increment(context.Background())
	var re *RecordError
	assert.True(t, errors.As(err, &re))
}

func TestVisitService_Visits(t *testing.T) {
	sr := new(mockStatsRepo)
	svc := NewVisitService(sr, zap.NewNop().Sugar(), time.Second)

	sr.On("Visits", mock.Anything).Return(int64(7), nil).Once()

	n, err := svc.Visits(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(7), n)

	sr.On("Visits", mock.Anything).Return(int64(0), errors.New("boom")).Once()
	_, err = svc.Visits(context.Background())
	var re *RecordError
	assert.True(t, errors.As(err, &re))
}
