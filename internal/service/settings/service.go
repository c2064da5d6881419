package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TankScheduler/internal/service/settings/models"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// Service сервис для работы с настройками центра
type Service struct {
	settingsRepo SettingsRepository
	tankRepo     TankRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(settingsRepo SettingsRepository, tankRepo TankRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		tankRepo:     tankRepo,
		logger:       logger,
	}
}

// Get получает текущие настройки и число готовых баков
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Warn("Get: operating settings are not configured")
			return nil, ErrSettingsNotFound
		}
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	ready, err := s.readyTanks(ctx)
	if err != nil {
		return nil, err
	}

	return models.FromDomainSettings(settings, ready), nil
}

// Update частично обновляет настройки.
// Если настроек еще нет, запрос должен содержать все поля.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating operating settings by admin=%d", req.AdminID)

	// 1. Получаем текущие настройки
	current, err := s.settingsRepo.Get(ctx)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Update: failed to get current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - get current settings: %v", ErrInternal, err)
	}
	if current == nil {
		current = &domain.OperatingSettings{}
	}

	// 2. Применяем переданные поля
	updated := *current
	if req.SessionDurationMinutes != nil {
		updated.SessionDurationMinutes = *req.SessionDurationMinutes
	}
	if req.CleaningBufferMinutes != nil {
		updated.CleaningBufferMinutes = *req.CleaningBufferMinutes
	}
	if req.TankStaggerIntervalMinutes != nil {
		updated.TankStaggerIntervalMinutes = *req.TankStaggerIntervalMinutes
	}
	if req.DefaultOpenTime != nil {
		updated.DefaultOpenTime = types.TimeString(*req.DefaultOpenTime)
	}
	if req.DefaultCloseTime != nil {
		updated.DefaultCloseTime = types.TimeString(*req.DefaultCloseTime)
	}

	// 3. Валидируем итоговые настройки
	if err := validateSettings(&updated); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	// 4. Сохраняем
	saved, err := s.settingsRepo.Update(ctx, &updated)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	ready, err := s.readyTanks(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: settings saved, session=%d, cleaning=%d, stagger=%d, window=%s-%s",
		saved.SessionDurationMinutes, saved.CleaningBufferMinutes, saved.TankStaggerIntervalMinutes,
		saved.DefaultOpenTime, saved.DefaultCloseTime)

	return models.FromDomainSettings(saved, ready), nil
}

func (s *Service) readyTanks(ctx context.Context) (int, error) {
	tanks, err := s.tankRepo.List(ctx)
	if err != nil {
		s.logger.Error("readyTanks: failed to list tanks: %v", err)
		return 0, fmt.Errorf("%w: failed to list tanks: %v", ErrInternal, err)
	}
	return len(domain.ReadyTanks(tanks)), nil
}

// validateSettings проверяет диапазоны и формат времени.
// Время нормализуется к HH:MM.
func validateSettings(st *domain.OperatingSettings) error {
	if st.SessionDurationMinutes < domain.MinSessionDurationMinutes ||
		st.SessionDurationMinutes > domain.MaxSessionDurationMinutes {
		return fmt.Errorf("%w: sessionDurationMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinSessionDurationMinutes, domain.MaxSessionDurationMinutes)
	}

	if st.CleaningBufferMinutes < domain.MinCleaningBufferMinutes ||
		st.CleaningBufferMinutes > domain.MaxCleaningBufferMinutes {
		return fmt.Errorf("%w: cleaningBufferMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinCleaningBufferMinutes, domain.MaxCleaningBufferMinutes)
	}

	if st.TankStaggerIntervalMinutes < domain.MinStaggerIntervalMinutes ||
		st.TankStaggerIntervalMinutes > domain.MaxStaggerIntervalMinutes {
		return fmt.Errorf("%w: tankStaggerIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinStaggerIntervalMinutes, domain.MaxStaggerIntervalMinutes)
	}

	openTime, err := types.NewTimeStringFromString(st.DefaultOpenTime.String())
	if err != nil {
		return fmt.Errorf("%w: invalid defaultOpenTime: %v", ErrInvalidInput, err)
	}

	closeTime, err := types.NewTimeStringFromString(st.DefaultCloseTime.String())
	if err != nil {
		return fmt.Errorf("%w: invalid defaultCloseTime: %v", ErrInvalidInput, err)
	}

	if openTime == closeTime {
		return fmt.Errorf("%w: defaultOpenTime and defaultCloseTime must differ", ErrInvalidInput)
	}

	st.DefaultOpenTime = openTime
	st.DefaultCloseTime = closeTime
	return nil
}
