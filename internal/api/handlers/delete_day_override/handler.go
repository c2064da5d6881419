package delete_day_override

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/internal/service/overrides"
)

const (
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "исключение для даты не найдено"
)

type Handler struct {
	service OverrideService
	logger  Logger
}

func NewHandler(service OverrideService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date, err := domain.ParseDate(mux.Vars(r)["date"])
	if err != nil {
		h.logger.Warn("DELETE /admin/overrides/{date} - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), date, adminID); err != nil {
		switch {
		case errors.Is(err, overrides.ErrOverrideNotFound):
			h.logger.Warn("DELETE /admin/overrides/{date} - Override not found: date=%s", date)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, overrides.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("DELETE /admin/overrides/{date} - Failed to delete override: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/overrides/{date} - Override deleted: date=%s, admin_id=%d", date, adminID)
	handlers.RespondNoContent(w)
}
