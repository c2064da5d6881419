package delete_tank

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks"
)

const (
	msgInvalidTankID = "некорректный ID бака"
	msgMissingUserID = "отсутствует ID пользователя"
	msgNotFound      = "бак не найден"
)

type Handler struct {
	service TankService
	logger  Logger
}

func NewHandler(service TankService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/tanks/{tankId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tankID, err := strconv.ParseInt(mux.Vars(r)["tankId"], 10, 64)
	if err != nil || tankID <= 0 {
		h.logger.Warn("DELETE /admin/tanks/{id} - Invalid tank ID: %q", mux.Vars(r)["tankId"])
		handlers.RespondBadRequest(w, msgInvalidTankID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	if err := h.service.Delete(r.Context(), tankID, adminID); err != nil {
		switch {
		case errors.Is(err, tanks.ErrTankNotFound):
			h.logger.Warn("DELETE /admin/tanks/{id} - Tank not found: tank_id=%d", tankID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tanks.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidTankID)

		default:
			h.logger.Error("DELETE /admin/tanks/{id} - Failed to delete tank: tank_id=%d, error=%v", tankID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/tanks/{id} - Tank deleted: tank_id=%d, admin_id=%d", tankID, adminID)
	handlers.RespondNoContent(w)
}
