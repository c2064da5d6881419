package overrides

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	overrideRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/override"
)

type mockOverrideRepo struct{ mock.Mock }

func (m *mockOverrideRepo) GetByRange(ctx context.Context, from, to domain.Date) ([]domain.DayOverride, error) {
	args := m.Called(ctx, from, to)
	out, _ := args.Get(0).([]domain.DayOverride)
	return out, args.Error(1)
}

func (m *mockOverrideRepo) Delete(ctx context.Context, date domain.Date) error {
	return m.Called(ctx, date).Error(0)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var (
	from = domain.Date{Year: 2025, Month: time.May, Day: 1}
	to   = domain.Date{Year: 2025, Month: time.May, Day: 31}
)

func TestList(t *testing.T) {
	repo := new(mockOverrideRepo)
	repo.On("GetByRange", mock.Anything, from, to).Return([]domain.DayOverride{
		{Date: domain.Date{Year: 2025, Month: time.May, Day: 1}, Status: domain.OverrideStatusClosed},
		{Date: domain.Date{Year: 2025, Month: time.May, Day: 2}, Status: domain.OverrideStatusBookable,
			OpenTime: "10:00", CloseTime: "14:00", SessionsToSell: 8},
	}, nil)

	resp, err := NewService(repo, nopLogger{}).List(context.Background(), from, to)
	require.NoError(t, err)
	require.Len(t, resp.Overrides, 2)

	assert.Equal(t, "2025-05-01", resp.Overrides[0].Date)
	assert.Nil(t, resp.Overrides[0].OpenTime)
	require.NotNil(t, resp.Overrides[1].OpenTime)
	assert.Equal(t, "10:00", *resp.Overrides[1].OpenTime)
	assert.Equal(t, 8, resp.Overrides[1].SessionsToSell)
}

func TestListValidation(t *testing.T) {
	svc := NewService(new(mockOverrideRepo), nopLogger{})

	_, err := svc.List(context.Background(), to, from)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), domain.Date{}, to)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), from, from.AddDays(domain.MaxOverrideRangeDays))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestListRepositoryError(t *testing.T) {
	repo := new(mockOverrideRepo)
	repo.On("GetByRange", mock.Anything, from, to).Return(nil, errors.New("canceled"))

	_, err := NewService(repo, nopLogger{}).List(context.Background(), from, to)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestDelete(t *testing.T) {
	repo := new(mockOverrideRepo)
	repo.On("Delete", mock.Anything, from).Return(nil)
	repo.On("Delete", mock.Anything, to).Return(overrideRepo.ErrOverrideNotFound)

	svc := NewService(repo, nopLogger{})
	assert.NoError(t, svc.Delete(context.Background(), from, 1))
	assert.ErrorIs(t, svc.Delete(context.Background(), to, 1), ErrOverrideNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), domain.Date{}, 1), ErrInvalidInput)
}
