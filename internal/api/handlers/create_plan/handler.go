package create_plan

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	createPlan "barber-scheduling-service/internal/usecase/create_plan"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidTime          = "некорректный формат времени начала, ожидается HH:MM"
	msgBarberNotFound       = "барбер не найден"
	msgPlanRangeInvalid     = "некорректный диапазон дат плана"
	msgNoRepresentativeDate = "не удалось подобрать дату для проверки расписания"
	msgSlotNotOffered       = "время плана не предлагается расписанием"
	msgPlanOverlap          = "план пересекается с существующим планом"
	msgInvalidInput         = "некорректные входные данные"
)

type Handler struct {
	useCase CreatePlanUseCase
	logger  Logger
}

func NewHandler(useCase CreatePlanUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/plans
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreatePlanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /plans - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /plans - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createPlan.ErrPlanOverlap):
			h.logger.Warn("POST /plans - Plan overlap: barber=%d, weekday=%d, time=%s", req.BarberID, req.Weekday, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgPlanOverlap)

		case errors.Is(err, createPlan.ErrSlotNotOffered):
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createPlan.ErrNoRepresentativeDate):
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgNoRepresentativeDate)

		case errors.Is(err, createPlan.ErrPlanRangeInvalid):
			handlers.RespondBadRequest(w, msgPlanRangeInvalid)

		case errors.Is(err, createPlan.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createPlan.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /plans - Failed: barber=%d, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /plans - Plan created: plan_id=%d, barber=%d", result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
