package get_day_timetable

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	getDayTimetable "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_day_timetable"
)

const (
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSettingsNotConfigured = "настройки центра не заданы"
)

type Handler struct {
	useCase GetDayTimetableUseCase
	logger  Logger
}

func NewHandler(useCase GetDayTimetableUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/days/{date}/timetable
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("GET /days/{date}/timetable - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDayTimetable.Request{Date: date})
	if err != nil {
		switch {
		case errors.Is(err, getDayTimetable.ErrInvalidInput):
			h.logger.Warn("GET /days/{date}/timetable - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDayTimetable.ErrSettingsNotConfigured):
			h.logger.Warn("GET /days/{date}/timetable - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotConfigured)

		default:
			h.logger.Error("GET /days/{date}/timetable - Failed to build timetable: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /days/{date}/timetable - Timetable built: date=%s, tanks=%d", date, len(result.Tanks))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
