package tanks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	tankRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/tank"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

// Service сервис для работы с баками
type Service struct {
	tankRepo TankRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса баков
func NewService(tankRepo TankRepository, logger Logger) *Service {
	return &Service{
		tankRepo: tankRepo,
		logger:   logger,
	}
}

// List получает все баки в порядке расписания
func (s *Service) List(ctx context.Context) (*models.TankListResponse, error) {
	tanks, err := s.tankRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainTankList(tanks), nil
}

// Create создает новый бак
func (s *Service) Create(ctx context.Context, req *models.CreateTankRequest) (*models.TankResponse, error) {
	s.logger.Info("Create: creating tank name=%q by admin=%d", req.Name, req.AdminID)

	status := domain.TankStatus(req.Status)
	if req.Status == "" {
		status = domain.TankStatusReady
	}

	tank := &domain.Tank{
		Name:      strings.TrimSpace(req.Name),
		Status:    status,
		SortOrder: req.SortOrder,
	}

	if err := validateTank(tank); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.tankRepo.Create(ctx, tank)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created tank id=%d", created.ID)
	return models.FromDomainTank(created), nil
}

// Update обновляет бак. Смена статуса на maintenance сразу убирает бак из расчета слотов.
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateTankRequest) (*models.TankResponse, error) {
	s.logger.Info("Update: updating tank id=%d by admin=%d", id, req.AdminID)

	if id <= 0 {
		return nil, fmt.Errorf("%w: tankID must be positive", ErrInvalidInput)
	}

	tank, err := s.tankRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, tankRepo.ErrTankNotFound) {
			s.logger.Warn("Update: tank id=%d not found", id)
			return nil, ErrTankNotFound
		}
		s.logger.Error("Update: failed to get tank id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - get tank: %v", ErrInternal, err)
	}

	if req.Name != nil {
		tank.Name = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil {
		tank.Status = domain.TankStatus(*req.Status)
	}
	if req.SortOrder != nil {
		tank.SortOrder = *req.SortOrder
	}

	if err := validateTank(tank); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	updated, err := s.tankRepo.Update(ctx, tank)
	if err != nil {
		if errors.Is(err, tankRepo.ErrTankNotFound) {
			return nil, ErrTankNotFound
		}
		s.logger.Error("Update: repository error for tank id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: tank id=%d status=%s", updated.ID, updated.Status)
	return models.FromDomainTank(updated), nil
}

// Delete удаляет бак
func (s *Service) Delete(ctx context.Context, id int64, adminID int64) error {
	s.logger.Info("Delete: deleting tank id=%d by admin=%d", id, adminID)

	if id <= 0 {
		return fmt.Errorf("%w: tankID must be positive", ErrInvalidInput)
	}

	if err := s.tankRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, tankRepo.ErrTankNotFound) {
			s.logger.Warn("Delete: tank id=%d not found", id)
			return ErrTankNotFound
		}
		s.logger.Error("Delete: repository error for tank id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	return nil
}

func validateTank(t *domain.Tank) error {
	if t.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	if utf8.RuneCountInString(t.Name) > domain.MaxTankNameLength {
		return fmt.Errorf("%w: name must be at most %d characters", ErrInvalidInput, domain.MaxTankNameLength)
	}

	if !t.Status.IsValid() {
		return fmt.Errorf("%w: status must be one of: ready, maintenance", ErrInvalidInput)
	}

	if t.SortOrder < 0 {
		return fmt.Errorf("%w: sortOrder must not be negative", ErrInvalidInput)
	}

	return nil
}
