package get_month_calendar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	settingsRepo "github.com/m04kA/SMC-TankScheduler/internal/infra/storage/settings"
	"github.com/m04kA/SMC-TankScheduler/internal/scheduling"
)

// UseCase use case для получения календаря доступности на месяц
type UseCase struct {
	settingsRepo SettingsRepository
	tankRepo     TankRepository
	overrideRepo OverrideRepository
	bookingRepo  BookingRepository
	engine       *scheduling.Engine
	metrics      MetricsRecorder
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	settingsRepo SettingsRepository,
	tankRepo TankRepository,
	overrideRepo OverrideRepository,
	bookingRepo BookingRepository,
	engine *scheduling.Engine,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		settingsRepo: settingsRepo,
		tankRepo:     tankRepo,
		overrideRepo: overrideRepo,
		bookingRepo:  bookingRepo,
		engine:       engine,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case получения календаря на месяц.
// Все данные месяца читаются четырьмя независимыми запросами, затем день за днем считает движок.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetMonthCalendar: validation failed: %v", err)
		return nil, err
	}

	month := time.Month(req.Month)
	from, to := domain.MonthRange(req.Year, month)

	uc.logger.Info("GetMonthCalendar: %04d-%02d (%s..%s)", req.Year, req.Month, from, to)

	// 2. Параллельно получаем настройки, баки, исключения и количество бронирований
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
		overrides, err = uc.overrideRepo.GetByRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("get overrides: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		counts, err = uc.bookingRepo.CountByDateRange(gctx, from, to)
		if err != nil {
			return fmt.Errorf("count bookings: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Warn("GetMonthCalendar: operating settings are not configured")
			return nil, ErrSettingsNotConfigured
		}
		uc.logger.Error("GetMonthCalendar: failed to fetch month data: %v", err)
		return nil, fmt.Errorf("%w: failed to fetch month data: %v", ErrInternal, err)
	}

	// 3. Считаем доступность по дням
	days := scheduling.SortedDays(uc.engine.ComputeMonth(req.Year, month, *settings, tanks, overrides, counts))

	summary := summarize(days)
	for _, day := range days {
		uc.metrics.ObserveDayStatus(string(day.Status))
	}

	if summary.OverbookedDays > 0 {
		uc.logger.Warn("GetMonthCalendar: %04d-%02d has %d overbooked day(s)",
			req.Year, req.Month, summary.OverbookedDays)
	}

	uc.logger.Info("GetMonthCalendar: %04d-%02d computed, total=%d, booked=%d, available=%d",
		req.Year, req.Month, summary.TotalSessions, summary.BookedSessions, summary.AvailableSessions)

	return &Response{
		Year:    req.Year,
		Month:   req.Month,
		Days:    days,
		Summary: summary,
	}, nil
}

func summarize(days []domain.DayAvailability) Summary {
	var s Summary
	for i := range days {
		day := &days[i]

		s.TotalSessions += day.TotalSessions
		s.BookedSessions += day.BookedSessions
		s.AvailableSessions += day.AvailableSessions

		switch day.Status {
		case domain.DayStatusBookable:
			s.BookableDays++
		case domain.DayStatusClosed:
			s.ClosedDays++
		case domain.DayStatusSoldOut:
			s.SoldOutDays++
		}

		// закрытый день с бронированиями тоже переполнен
		if day.IsOverbooked() {
			s.OverbookedDays++
		}
	}
	return s
}
