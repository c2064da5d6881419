package set_day_override

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
	// Upsert создает или заменяет исключение на дату
	Upsert(ctx context.Context, o *domain.DayOverride) (*domain.DayOverride, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
