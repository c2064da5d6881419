package get_day_timetable

import (
	"context"

	getDayTimetable "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_day_timetable"
)

type GetDayTimetableUseCase interface {
	Execute(ctx context.Context, req *getDayTimetable.Request) (*getDayTimetable.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
