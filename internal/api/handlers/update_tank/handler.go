package update_tank

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

const (
	msgInvalidTankID      = "некорректный ID бака"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgNotFound           = "бак не найден"
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

// Handle PUT /api/v1/admin/tanks/{tankId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	tankID, err := strconv.ParseInt(mux.Vars(r)["tankId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /admin/tanks/{id} - Invalid tank ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTankID)
		return
	}

	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.UpdateTankRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/tanks/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AdminID = adminID

	result, err := h.service.Update(r.Context(), tankID, &req)
	if err != nil {
		switch {
		case errors.Is(err, tanks.ErrTankNotFound):
			h.logger.Warn("PUT /admin/tanks/{id} - Tank not found: tank_id=%d", tankID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, tanks.ErrInvalidInput):
			h.logger.Warn("PUT /admin/tanks/{id} - Invalid data: tank_id=%d, error=%v", tankID, err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("PUT /admin/tanks/{id} - Failed to update tank: tank_id=%d, error=%v", tankID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/tanks/{id} - Tank updated: tank_id=%d, status=%s", tankID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
