package get_day_timetable

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TankScheduler/internal/scheduling"
)

// UseCase use case для получения расписания сессий по бакам на день
type UseCase struct {
	settingsRepo SettingsRepository
	tankRepo     TankRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	engine       *scheduling.Engine
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	tankRepo TankRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	engine *scheduling.Engine,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		tankRepo:     tankRepo,
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		engine:       engine,
		logger:       logger,
	}
}

// Execute выполняет use case получения расписания на день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayTimetable: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetDayTimetable: date=%s", req.Date)

	// 2. Параллельно получаем данные дня
	var (
		settings  *domain.OperatingSettings
		tanks     []domain.Tank
		overrides []domain.DayOverride
		counts    map[domain.Date]int
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
	g.Go(func() error {
		var err error
		overrides, err = uc.overrideRepo.GetByRange(gctx, req.Date, req.Date)
		if err != nil {
			return fmt.Errorf("get override: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = uc.bookingRepo.CountByDateRange(gctx, req.Date, req.Date)
		if err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetDayTimetable: operating settings are not configured")
			return nil, ErrSettingsNotConfigured
		}
		uc.logger.Error("GetDayTimetable: failed to fetch day data for %s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to fetch day data: %v", ErrInternal, err)
	}

	// 3. Применяем исключение дня к настройкам по умолчанию
	var override *domain.DayOverride
	for i := range overrides {
		if overrides[i].Date.Equal(req.Date) {
			override = &overrides[i]
			break
		}
	}
	day := scheduling.ResolveDay(req.Date, *settings, override)

	// 4. Строим расписание
	ready := domain.ReadyTanks(tanks)
	resp := &Response{
		Date:         req.Date,
		Availability: uc.engine.ComputeDay(day, len(ready), counts[req.Date]),
		HasOverride:  day.HasOverride,
		Tanks:        uc.engine.ComputeDayTimetable(day, tanks),
	}

	if day.Closed {
		uc.logger.Info("GetDayTimetable: %s is closed", req.Date)
		return resp, nil
	}

	slots := scheduling.CalculateSlots(day.SlotParams(len(ready)))
	resp.OpenTime = day.OpenTime
	resp.CloseTime = day.CloseTime
	resp.ActualCloseTime = slots.ActualCloseTime
	resp.SessionsPerTank = slots.SessionsPerResource

	uc.logger.Info("GetDayTimetable: %s tanks=%d, sessionsPerTank=%d, actualClose=%s",
		req.Date, len(resp.Tanks), resp.SessionsPerTank, resp.ActualCloseTime)

	return resp, nil
}
