package delete_plan

import (
	"errors"
	"net/http"
	"strconv"

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

// Handle DELETE /api/v1/plans/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /plans/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), planID); err != nil {
		switch {
		case errors.Is(err, plans.ErrPlanNotFound):
			handlers.RespondNotFound(w, msgPlanNotFound)

		default:
			h.logger.Error("DELETE /plans/%d - Failed: %v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /plans/%d - Plan deleted", planID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
