package update_tank

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

type TankService interface {
	Update(ctx context.Context, id int64, req *models.UpdateTankRequest) (*models.TankResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
