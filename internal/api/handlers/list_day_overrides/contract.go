package list_day_overrides

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/internal/service/overrides/models"
)

type OverrideService interface {
	List(ctx context.Context, from, to domain.Date) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
