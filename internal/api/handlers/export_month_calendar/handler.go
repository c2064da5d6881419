package export_month_calendar

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/infra/export"
	getMonthCalendar "github.com/m04kA/SMC-TankScheduler/internal/usecase/get_month_calendar"
)

const (
	msgInvalidYearMonth      = "некорректный год или месяц"
	msgSettingsNotConfigured = "настройки центра не заданы"

	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
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

// Handle GET /api/v1/admin/calendar/{year}/{month}/export
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, errYear := strconv.Atoi(vars["year"])
	month, errMonth := strconv.Atoi(vars["month"])
	if errYear != nil || errMonth != nil {
		h.logger.Warn("GET /admin/calendar/{year}/{month}/export - Invalid year or month: %q/%q", vars["year"], vars["month"])
		handlers.RespondBadRequest(w, msgInvalidYearMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getMonthCalendar.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getMonthCalendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidYearMonth)

		case errors.Is(err, getMonthCalendar.ErrSettingsNotConfigured):
			handlers.RespondNotFound(w, msgSettingsNotConfigured)

		default:
			h.logger.Error("GET /admin/calendar/{year}/{month}/export - Failed to compute calendar: year=%d, month=%d, error=%v",
				year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Пишем в буфер, чтобы при ошибке еще можно было ответить 500
	var buf bytes.Buffer
	err = export.WriteMonthCalendar(&buf, export.MonthReport{
		Year:  result.Year,
		Month: result.Month,
		Days:  result.Days,
	})
	if err != nil {
		h.logger.Error("GET /admin/calendar/{year}/{month}/export - Failed to build workbook: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	filename := fmt.Sprintf("calendar-%04d-%02d.xlsx", result.Year, result.Month)
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/calendar/{year}/{month}/export - Failed to send workbook: %v", err)
		return
	}

	h.logger.Info("GET /admin/calendar/{year}/{month}/export - Exported %s", filename)
}
