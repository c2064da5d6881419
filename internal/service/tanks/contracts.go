package tanks

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

// TankRepository интерфейс репозитория баков
type TankRepository interface {
	Create(ctx context.Context, t *domain.Tank) (*domain.Tank, error)
	GetByID(ctx context.Context, id int64) (*domain.Tank, error)
	List(ctx context.Context) ([]domain.Tank, error)
	Update(ctx context.Context, t *domain.Tank) (*domain.Tank, error)
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
