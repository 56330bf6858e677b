package update_schedule_config

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
	"barber-scheduling-service/internal/service/schedule"
	"barber-scheduling-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidID          = "некорректный идентификатор барбера"
	msgBarberNotFound     = "барбер не найден"
	msgInvalidInput       = "некорректная конфигурация расписания"
)

// UpdateConfigRequest HTTP request model
type UpdateConfigRequest struct {
	DayStart    string   `json:"dayStart"`
	DayEnd      string   `json:"dayEnd"`
	LunchStart  string   `json:"lunchStart"`
	LunchEnd    string   `json:"lunchEnd"`
	SlotMinutes int      `json:"slotMinutes"`
	WorkDays    []int    `json:"workDays"`
	DaysOff     []string `json:"daysOff"`
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

// Handle PUT /api/v1/barbers/{id}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /barbers/{id}/config - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	var req UpdateConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /barbers/%d/config - Invalid request body: %v", barberID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateConfig(r.Context(), &models.UpdateConfigRequest{
		BarberID:    barberID,
		DayStart:    req.DayStart,
		DayEnd:      req.DayEnd,
		LunchStart:  req.LunchStart,
		LunchEnd:    req.LunchEnd,
		SlotMinutes: req.SlotMinutes,
		WorkDays:    req.WorkDays,
		DaysOff:     req.DaysOff,
	})
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /barbers/%d/config - Invalid config: %v", barberID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /barbers/%d/config - Failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /barbers/%d/config - Config updated", barberID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
