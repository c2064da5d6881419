package create_tank

import (
	"context"

	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

type TankService interface {
	Create(ctx context.Context, req *models.CreateTankRequest) (*models.TankResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
