package settings

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TankScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-TankScheduler/pkg/ptr"
)

type mockSettingsRepo struct{ mock.Mock }

func (m *mockSettingsRepo) Get(ctx context.Context) (*domain.OperatingSettings, error) {
	args := m.Called(ctx)
	s, _ := args.Get(0).(*domain.OperatingSettings)
	return s, args.Error(1)
}

func (m *mockSettingsRepo) Update(ctx context.Context, s *domain.OperatingSettings) (*domain.OperatingSettings, error) {
	args := m.Called(ctx, s)
	out, _ := args.Get(0).(*domain.OperatingSettings)
	return out, args.Error(1)
}

type mockTankRepo struct{ mock.Mock }

func (m *mockTankRepo) List(ctx context.Context) ([]domain.Tank, error) {
	args := m.Called(ctx)
	tanks, _ := args.Get(0).([]domain.Tank)
	return tanks, args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func current() *domain.OperatingSettings {
	return &domain.OperatingSettings{
		SessionDurationMinutes:     60,
		CleaningBufferMinutes:      15,
		TankStaggerIntervalMinutes: 20,
		DefaultOpenTime:            "09:00",
		DefaultCloseTime:           "21:00",
	}
}

func tankList() []domain.Tank {
	return []domain.Tank{
		{ID: 1, Status: domain.TankStatusReady},
		{ID: 2, Status: domain.TankStatusMaintenance},
		{ID: 3, Status: domain.TankStatusReady},
	}
}

func TestGet(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("Get", mock.Anything).Return(current(), nil)
	tanks := new(mockTankRepo)
	tanks.On("List", mock.Anything).Return(tankList(), nil)

	resp, err := NewService(repo, tanks, nopLogger{}).Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, resp.NumberOfResources)
	assert.Equal(t, 75, resp.SessionLengthMinutes)
	assert.Equal(t, "21:00", resp.DefaultCloseTime)
}

func TestGetNotConfigured(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("Get", mock.Anything).Return(nil, settingsRepo.ErrSettingsNotFound)

	_, err := NewService(repo, new(mockTankRepo), nopLogger{}).Get(context.Background())
	assert.ErrorIs(t, err, ErrSettingsNotFound)
}

func TestUpdatePartial(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("Get", mock.Anything).Return(current(), nil)
	repo.On("Update", mock.Anything, mock.MatchedBy(func(s *domain.OperatingSettings) bool {
		return s.SessionDurationMinutes == 90 &&
			s.CleaningBufferMinutes == 15 &&
			s.DefaultOpenTime == "08:00"
	})).Return(&domain.OperatingSettings{
		SessionDurationMinutes:     90,
		CleaningBufferMinutes:      15,
		TankStaggerIntervalMinutes: 20,
		DefaultOpenTime:            "08:00",
		DefaultCloseTime:           "21:00",
	}, nil)
	tanks := new(mockTankRepo)
	tanks.On("List", mock.Anything).Return(tankList(), nil)

	resp, err := NewService(repo, tanks, nopLogger{}).Update(context.Background(), &models.UpdateSettingsRequest{
		AdminID:                1,
		SessionDurationMinutes: ptr.Ptr(90),
		DefaultOpenTime:        ptr.Ptr("8:00"),
	})
	require.NoError(t, err)
	assert.Equal(t, 105, resp.SessionLengthMinutes)
	repo.AssertExpectations(t)
}

func TestUpdateFirstTimeRequiresAllFields(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("Get", mock.Anything).Return(nil, settingsRepo.ErrSettingsNotFound)

	_, err := NewService(repo, new(mockTankRepo), nopLogger{}).Update(context.Background(), &models.UpdateSettingsRequest{
		SessionDurationMinutes: ptr.Ptr(60),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name string
		req  *models.UpdateSettingsRequest
	}{
		{name: "session too short", req: &models.UpdateSettingsRequest{SessionDurationMinutes: ptr.Ptr(4)}},
		{name: "session too long", req: &models.UpdateSettingsRequest{SessionDurationMinutes: ptr.Ptr(481)}},
		{name: "negative cleaning", req: &models.UpdateSettingsRequest{CleaningBufferMinutes: ptr.Ptr(-1)}},
		{name: "stagger too large", req: &models.UpdateSettingsRequest{TankStaggerIntervalMinutes: ptr.Ptr(241)}},
		{name: "bad open time", req: &models.UpdateSettingsRequest{DefaultOpenTime: ptr.Ptr("24:00")}},
		{name: "bad close time", req: &models.UpdateSettingsRequest{DefaultCloseTime: ptr.Ptr("noon")}},
		{name: "empty window", req: &models.UpdateSettingsRequest{DefaultCloseTime: ptr.Ptr("09:00")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(mockSettingsRepo)
			repo.On("Get", mock.Anything).Return(current(), nil)

			_, err := NewService(repo, new(mockTankRepo), nopLogger{}).Update(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateRepositoryError(t *testing.T) {
	repo := new(mockSettingsRepo)
	repo.On("Get", mock.Anything).Return(current(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("read only"))

	_, err := NewService(repo, new(mockTankRepo), nopLogger{}).Update(context.Background(), &models.UpdateSettingsRequest{
		CleaningBufferMinutes: ptr.Ptr(10),
	})
	assert.ErrorIs(t, err, ErrInternal)
}
