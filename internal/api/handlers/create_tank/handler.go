package create_tank

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/api/middleware"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks"
	"github.com/m04kA/SMC-TankScheduler/internal/service/tanks/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
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

// Handle POST /api/v1/admin/tanks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateTankRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/tanks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.AdminID = adminID

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, tanks.ErrInvalidInput) {
			h.logger.Warn("POST /admin/tanks - Invalid data: %v", err)
			handlers.RespondBadRequest(w, err.Error())
			return
		}

		h.logger.Error("POST /admin/tanks - Failed to create tank: admin_id=%d, error=%v", adminID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/tanks - Tank created: tank_id=%d, admin_id=%d", result.ID, adminID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
