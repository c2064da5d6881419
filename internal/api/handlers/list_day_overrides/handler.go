package list_day_overrides

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TankScheduler/internal/api/handlers"
	"github.com/m04kA/SMC-TankScheduler/internal/domain"
	"github.com/m04kA/SMC-TankScheduler/internal/service/overrides"
)

const (
	msgInvalidRange = "некорректный диапазон дат: ожидаются from и to в формате YYYY-MM-DD, не более 93 дней"
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

// Handle GET /api/v1/admin/overrides?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := domain.ParseDate(query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /admin/overrides - Invalid from: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	to, err := domain.ParseDate(query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /admin/overrides - Invalid to: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.service.List(r.Context(), from, to)
	if err != nil {
		if errors.Is(err, overrides.ErrInvalidInput) {
			h.logger.Warn("GET /admin/overrides - Invalid range: from=%s, to=%s", from, to)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}

		h.logger.Error("GET /admin/overrides - Failed to list overrides: from=%s, to=%s, error=%v", from, to, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
