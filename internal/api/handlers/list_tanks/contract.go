package list_tanks

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

type TankService interface {
	List(ctx context.Context) (*models.TankListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
