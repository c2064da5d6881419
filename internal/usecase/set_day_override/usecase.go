package set_day_override

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TankScheduler/internal/scheduling"
)

// UseCase use case для установки исключения расписания на дату
type UseCase struct {
	settingsRepo SettingsRepository
	tankRepo     TankRepository
	overrideRepo OverrideRepository
	engine       *scheduling.Engine
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	tankRepo TankRepository,
	overrideRepo OverrideRepository,
	engine *scheduling.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		tankRepo:     tankRepo,
		overrideRepo: overrideRepo,
		engine:       engine,
		logger:       logger,
	}
}

// Execute выполняет use case установки исключения.
// Если лимит сессий для bookable не передан, он считается по окну исключения,
// текущим настройкам и числу готовых баков на момент записи.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	override, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("SetDayOverride: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SetDayOverride: admin=%d, date=%s, status=%s", req.AdminID, req.Date, req.Status)

	// 2. Считаем лимит сессий, если он не задан
	computed := false
	if !override.IsClosed() && req.SessionsToSell == nil {
		sessions, err := uc.computeSessions(ctx, override)
		if err != nil {
			return nil, err
		}
		override.SessionsToSell = sessions
		computed = true
	}

	// 3. Сохраняем исключение
	saved, err := uc.overrideRepo.Upsert(ctx, override)
	if err != nil {
		uc.logger.Error("SetDayOverride: failed to save override for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to save override: %v", ErrInternal, err)
	}

	uc.logger.Info("SetDayOverride: saved %s status=%s window=%s-%s sessions=%d (computed=%t)",
		saved.Date, saved.Status, saved.OpenTime, saved.CloseTime, saved.SessionsToSell, computed)

	return &Response{
		Override:         *saved,
		SessionsComputed: computed,
	}, nil
}

func (uc *UseCase) computeSessions(ctx context.Context, override *domain.DayOverride) (int, error) {
	var (
		settings *domain.OperatingSettings
		tanks    []domain.Tank
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		settings, err = uc.settingsRepo.Get(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		tanks, err = uc.tankRepo.List(gctx)
		if err != nil {
			return fmt.Errorf("list tanks: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("SetDayOverride: cannot compute sessions, settings are not configured")
			return 0, ErrSettingsNotConfigured
		}
		uc.logger.Error("SetDayOverride: failed to fetch data for sessions: %v", err)
		return 0, fmt.Errorf("%w: failed to fetch data for sessions: %v", ErrInternal, err)
	}

	day := scheduling.ResolveDay(override.Date, *settings, override)
	return uc.engine.DayCapacity(day.SlotParams(len(domain.ReadyTanks(tanks)))), nil
}
