package get_day_timetable

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.OperatingSettings, error)
}

// TankRepository интерфейс репозитория баков
type TankRepository interface {
	List(ctx context.Context) ([]domain.Tank, error)
}

// OverrideRepository интерфейс репозитория исключений
type OverrideRepository interface {
	GetByRange(ctx context.Context, from, to domain.Date) ([]domain.DayOverride, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	CountByDateRange(ctx context.Context, from, to domain.Date) (map[domain.Date]int, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
