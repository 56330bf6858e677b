package create_barber

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	"barber-scheduling-service/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные входные данные"
)

// CreateBarberRequest HTTP request model
type CreateBarberRequest struct {
	Name string `json:"name"`
}

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

// Handle POST /api/v1/barbers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBarberRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /barbers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateBarber(r.Context(), req.Name)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /barbers - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /barbers - Barber created: id=%d", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
