package get_month_calendar

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.OperatingSettings)
	return s, args.Error(1)
}

type mockTankRepo struct{ mock.Mock }

func (m *mockTankRepo) List(ctx context.Context) ([]domain.Tank, error) {
	args := m.Called(ctx)
	tanks, _ := args.Get(0).([]domain.Tank)
	return tanks, args.Error(1)
}

type mockOverrideRepo struct{ mock.Mock }

func (m *mockOverrideRepo) GetByRange(ctx context.Context, from, to domain.Date) ([]domain.DayOverride, error) {
	args := m.Called(ctx, from, to)
	overrides, _ := args.Get(0).([]domain.DayOverride)
	return overrides, args.Error(1)
}

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) CountByDateRange(ctx context.Context, from, to domain.Date) (map[domain.Date]int, error) {
	args := m.Called(ctx, from, to)
	counts, _ := args.Get(0).(map[domain.Date]int)
	return counts, args.Error(1)
}

type statusCounter map[string]int

func (c statusCounter) ObserveDayStatus(status string) { c[status]++ }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
