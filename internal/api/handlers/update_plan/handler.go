package update_plan

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
	updatePlan "barber-scheduling-service/internal/usecase/update_plan"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidID            = "некорректный идентификатор плана"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgPlanNotFound         = "план не найден"
	msgPlanRangeInvalid     = "некорректный диапазон дат плана"
	msgNoRepresentativeDate = "не удалось подобрать дату для проверки расписания"
	msgSlotNotOffered       = "время плана не предлагается расписанием"
	msgPlanOverlap          = "план пересекается с существующим планом"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase UpdatePlanUseCase
	logger  Logger
}

func NewHandler(useCase UpdatePlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/plans/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	planID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /plans/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /plans/%d - Invalid request body: %v", planID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(planID)
	if err != nil {
		h.logger.Warn("PUT /plans/%d - Failed to parse request: %v", planID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updatePlan.ErrPlanNotFound):
			handlers.RespondNotFound(w, msgPlanNotFound)

		case errors.Is(err, updatePlan.ErrPlanOverlap):
			handlers.RespondError(w, http.StatusConflict, msgPlanOverlap)

		case errors.Is(err, updatePlan.ErrSlotNotOffered):
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, updatePlan.ErrNoRepresentativeDate):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRepresentativeDate)

		case errors.Is(err, updatePlan.ErrPlanRangeInvalid):
			handlers.RespondBadRequest(w, msgPlanRangeInvalid)

		case errors.Is(err, updatePlan.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /plans/%d - Failed: %v", planID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /plans/%d - Plan updated", planID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
