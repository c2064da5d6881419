package cache

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// SettingsStore хранилище настроек, которое оборачивает кэш
type SettingsStore interface {
	Get(ctx context.Context) (*domain.OperatingSettings, error)
	Update(ctx context.Context, s *domain.OperatingSettings) (*domain.OperatingSettings, error)
}

// TankStore хранилище баков, которое оборачивает кэш
type TankStore interface {
	Create(ctx context.Context, t *domain.Tank) (*domain.Tank, error)
	GetByID(ctx context.Context, id int64) (*domain.Tank, error)
	List(ctx context.Context) ([]domain.Tank, error)
	Update(ctx context.Context, t *domain.Tank) (*domain.Tank, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
}
