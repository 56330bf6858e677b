package plan_occurrences

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
	"barber-scheduling-service/internal/service/plans"
)

const (
	msgInvalidID    = "некорректный идентификатор плана"
	msgPlanNotFound = "план не найден"
)

type Handler struct {
	service PlansService
	logger  Logger
}

func NewHandler(service PlansService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/plans/{id}/occurrences
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /plans/{id}/occurrences - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	result, err := h.service.Occurrences(r.Context(), planID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			handlers.RespondNotFound(w, msgPlanNotFound)

		default:
			h.logger.Error("GET /plans/%d/occurrences - Failed: %v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
