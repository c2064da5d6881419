package set_day_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	setDayOverride "github.com/m04kA/SMC-TankScheduler/internal/usecase/set_day_override"
)

const (
	msgInvalidDate           = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRequestBody    = "некорректное тело запроса"
	msgMissingUserID         = "отсутствует ID пользователя"
	msgSettingsNotConfigured = "настройки центра не заданы, укажите sessionsToSell явно"
)

type Handler struct {
	useCase SetDayOverrideUseCase
	logger  Logger
}

func NewHandler(useCase SetDayOverrideUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("PUT /admin/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var body SetDayOverrideRequest
	if err := handlers.DecodeJSON(r, &body); err != nil {
		h.logger.Warn("PUT /admin/overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setDayOverride.Request{
		AdminID:        adminID,
		Date:           date,
		Status:         body.Status,
		OpenTime:       body.OpenTime,
		CloseTime:      body.CloseTime,
		SessionsToSell: body.SessionsToSell,
	})
	if err != nil {
		switch {
		case errors.Is(err, setDayOverride.ErrInvalidInput):
			h.logger.Warn("PUT /admin/overrides/{date} - Invalid data: date=%s, error=%v", date, err)
			handlers.RespondBadRequest(w, err.Error())

		case errors.Is(err, setDayOverride.ErrSettingsNotConfigured):
			h.logger.Warn("PUT /admin/overrides/{date} - Settings not configured: date=%s", date)
			handlers.RespondConflict(w, msgSettingsNotConfigured)

		default:
			h.logger.Error("PUT /admin/overrides/{date} - Failed to set override: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/overrides/{date} - Override saved: date=%s, status=%s, sessions=%d, admin_id=%d",
		date, result.Override.Status, result.Override.SessionsToSell, adminID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
