package overrides

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// OverrideRepository интерфейс репозитория исключений
type OverrideRepository interface {
	GetByRange(ctx context.Context, from, to domain.Date) ([]domain.DayOverride, error)
	Delete(ctx context.Context, date domain.Date) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
