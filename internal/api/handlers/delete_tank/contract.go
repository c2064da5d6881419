package delete_tank

import "context"

type TankService interface {
	Delete(ctx context.Context, id int64, adminID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
