package get_month_calendar

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	getMonthCalendar "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_month_calendar"
)

const (
	msgInvalidYearMonth      = "некорректный год или месяц"
	msgSettingsNotConfigured = "настройки центра не заданы"
)

type Handler struct {
	useCase GetMonthCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	req, err := ParseYearMonth(vars["year"], vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar/{year}/{month} - Invalid year or month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getMonthCalendar.ErrInvalidInput):
			h.logger.Warn("GET /calendar/{year}/{month} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidYearMonth)

		case errors.Is(err, getMonthCalendar.ErrSettingsNotConfigured):
			h.logger.Warn("GET /calendar/{year}/{month} - Settings not configured")
			handlers.RespondNotFound(w, msgSettingsNotConfigured)

		default:
			h.logger.Error("GET /calendar/{year}/{month} - Failed to compute calendar: year=%d, month=%d, error=%v",
				req.Year, req.Month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{year}/{month} - Calendar computed: year=%d, month=%d, days=%d",
		req.Year, req.Month, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
