package list_barbers

import (
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers?includeInactive=
// Публичная выдача показывает только активных барберов
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	onlyActive := r.URL.Query().Get("includeInactive") != "true"

	result, err := h.service.ListBarbers(r.Context(), onlyActive)
	if err != nil {
		h.logger.Error("GET /barbers - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
