package get_day_timetable

import (
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/pkg/types"
)

// Request модель запроса расписания сессий на день
type Request struct {
	Date domain.Date
}

// Response модель ответа с расписанием сессий по бакам
type Response struct {
	Date            domain.Date
	Availability    domain.DayAvailability
	HasOverride     bool
	OpenTime        types.TimeString // пусто для закрытого дня
	CloseTime       types.TimeString
	ActualCloseTime types.TimeString // конец последней уборки
	SessionsPerTank int
	Tanks           []domain.SessionTimetableEntry
}
