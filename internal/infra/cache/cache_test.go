package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

type mockSettingsStore struct {
	mock.Mock
}

func (m *mockSettingsStore) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.OperatingSettings)
	return s, args.Error(1)
}

func (m *mockSettingsStore) Update(ctx context.Context, s *domain.OperatingSettings) (*domain.OperatingSettings, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*domain.OperatingSettings)
	return out, args.Error(1)
}

type mockTankStore struct {
	mock.Mock
}

func (m *mockTankStore) Create(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankStore) GetByID(ctx context.Context, id int64) (*domain.Tank, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankStore) List(ctx context.Context) ([]domain.Tank, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankStore) Update(ctx context.Context, t *domain.Tank) (*domain.Tank, error) {
	args := m.Called(ctx, t)
	out, _ := args.Get(0).(*domain.Tank)
	return out, args.Error(1)
}

func (m *mockTankStore) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{}) {}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestSettingsReadThrough(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(mockSettingsStore)

	stored := &domain.OperatingSettings{
		SessionDurationMinutes:     60,
		CleaningBufferMinutes:      15,
		TankStaggerIntervalMinutes: 20,
		DefaultOpenTime:            "09:00",
		DefaultCloseTime:           "21:00",
	}
	next.On("Get", ctx).Return(stored, nil).Once()

	c := NewSettings(next, client, time.Minute, nopLogger{})

	first, err := c.Get(ctx)
	require.NoError(t, err)
	second, err := c.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, stored, first)
	assert.Equal(t, stored.DefaultCloseTime, second.DefaultCloseTime)
	assert.True(t, mr.Exists(settingsKey))
	next.AssertExpectations(t)

	mr.FastForward(2 * time.Minute)
	assert.False(t, mr.Exists(settingsKey))
}

func TestSettingsUpdateInvalidates(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(mockSettingsStore)

	old := &domain.OperatingSettings{SessionDurationMinutes: 60, DefaultOpenTime: "09:00", DefaultCloseTime: "21:00"}
	fresh := &domain.OperatingSettings{SessionDurationMinutes: 90, DefaultOpenTime: "09:00", DefaultCloseTime: "21:00"}

	next.On("Get", ctx).Return(old, nil).Once()
	next.On("Update", ctx, fresh).Return(fresh, nil).Once()
	next.On("Get", ctx).Return(fresh, nil).Once()

	c := NewSettings(next, client, time.Minute, nopLogger{})

	_, err := c.Get(ctx)
	require.NoError(t, err)

	_, err = c.Update(ctx, fresh)
	require.NoError(t, err)
	assert.False(t, mr.Exists(settingsKey))

	got, err := c.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90, got.SessionDurationMinutes)
	next.AssertExpectations(t)
}

func TestSettingsStoreErrorIsNotCached(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(mockSettingsStore)

	storeErr := errors.New("db down")
	next.On("Get", ctx).Return(nil, storeErr).Once()

	c := NewSettings(next, client, time.Minute, nopLogger{})
	_, err := c.Get(ctx)
	assert.ErrorIs(t, err, storeErr)
	assert.False(t, mr.Exists(settingsKey))
}

func TestSettingsFallsThroughWhenRedisUnavailable(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	mr.Close()

	next := new(mockSettingsStore)
	stored := &domain.OperatingSettings{SessionDurationMinutes: 60}
	next.On("Get", ctx).Return(stored, nil).Twice()

	c := NewSettings(next, client, time.Minute, nopLogger{})
	for i := 0; i < 2; i++ {
		got, err := c.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
	}
	next.AssertExpectations(t)
}

func TestTanksListCachedAndInvalidatedOnWrite(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(mockTankStore)

	tanks := []domain.Tank{
		{ID: 1, Name: "Orion", Status: domain.TankStatusReady},
		{ID: 2, Name: "Lyra", Status: domain.TankStatusMaintenance},
	}
	next.On("List", ctx).Return(tanks, nil).Once()

	c := NewTanks(next, client, time.Minute, nopLogger{})

	first, err := c.List(ctx)
	require.NoError(t, err)
	second, err := c.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.True(t, mr.Exists(tanksKey))

	updated := &domain.Tank{ID: 2, Name: "Lyra", Status: domain.TankStatusReady}
	next.On("Update", ctx, updated).Return(updated, nil).Once()

	_, err = c.Update(ctx, updated)
	require.NoError(t, err)
	assert.False(t, mr.Exists(tanksKey))

	next.On("Delete", ctx, int64(1)).Return(errors.New("not found")).Once()
	mr.Set(tanksKey, "[]")
	assert.Error(t, c.Delete(ctx, 1))
	assert.False(t, mr.Exists(tanksKey))

	next.AssertExpectations(t)
}

func TestTanksCorruptedEntryIsIgnored(t *testing.T) {
	ctx := context.Background()
	mr, client := newRedis(t)
	next := new(mockTankStore)

	require.NoError(t, mr.Set(tanksKey, "{not json"))
	tanks := []domain.Tank{{ID: 1, Name: "Orion", Status: domain.TankStatusReady}}
	next.On("List", ctx).Return(tanks, nil).Once()

	got, err := NewTanks(next, client, time.Minute, nopLogger{}).List(ctx)
	require.NoError(t, err)
	assert.Equal(t, tanks, got)
	next.AssertExpectations(t)
}
