package delete_day_override

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
)

type OverrideService interface {
	Delete(ctx context.Context, date domain.Date, adminID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
