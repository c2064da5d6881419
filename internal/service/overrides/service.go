package overrides

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	overrideRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/override"
	"github.com/m04kA/SMC-TankScheduler/internal/service/overrides/models"
)

// Service сервис для просмотра и удаления исключений расписания.
// Установка исключения - usecase set_day_override.
type Service struct {
	overrideRepo OverrideRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса исключений
func NewService(overrideRepo OverrideRepository, logger Logger) *Service {
	return &Service{
		overrideRepo: overrideRepo,
		logger:       logger,
	}
}

// List получает исключения за период [from, to]
func (s *Service) List(ctx context.Context, from, to domain.Date) (*models.OverrideListResponse, error) {
	if from.IsZero() || to.IsZero() {
		return nil, fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	if to.Before(from) {
		return nil, fmt.Errorf("%w: from must not be after to", ErrInvalidInput)
	}

	if from.DaysUntil(to) >= domain.MaxOverrideRangeDays {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, domain.MaxOverrideRangeDays)
	}

	overrides, err := s.overrideRepo.GetByRange(ctx, from, to)
	if err != nil {
		s.logger.Error("List: repository error for %s..%s: %v", from, to, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.OverrideListResponse{
		From:      from.String(),
		To:        to.String(),
		Overrides: make([]models.OverrideResponse, len(overrides)),
	}
	for i := range overrides {
		resp.Overrides[i] = *models.FromDomainOverride(&overrides[i])
	}

	return resp, nil
}

// Delete удаляет исключение, дата возвращается к настройкам по умолчанию
func (s *Service) Delete(ctx context.Context, date domain.Date, adminID int64) error {
	s.logger.Info("Delete: deleting override for %s by admin=%d", date, adminID)

	if date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := s.overrideRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("Delete: no override for %s", date)
			return ErrOverrideNotFound
		}
		s.logger.Error("Delete: repository error for %s: %v", date, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}
