package get_free_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
	getFreeSlots "barber-scheduling-service/internal/usecase/get_free_slots"
)

// SlotsResponse HTTP response model
// Тело с пустым списком слотов возвращается и на ошибочные запросы,
// чтобы клиентская страница могла рисовать сетку без ветвления
type SlotsResponse struct {
	BarberID int64    `json:"barberId"`
	Date     string   `json:"date"`
	Slots    []string `json:"slots"`
}

type Handler struct {
	useCase GetFreeSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{id}/free-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/free-slots - Invalid barber id: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, SlotsResponse{Slots: []string{}})
		return
	}

	date := r.URL.Query().Get("date")

	result, err := h.useCase.Execute(r.Context(), &getFreeSlots.Request{
		BarberID: barberID,
		Date:     date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getFreeSlots.ErrInvalidDate):
			h.logger.Warn("GET /barbers/%d/free-slots - Invalid date: %q", barberID, date)
			handlers.RespondJSON(w, http.StatusBadRequest, SlotsResponse{BarberID: barberID, Date: date, Slots: []string{}})

		case errors.Is(err, getFreeSlots.ErrBarberNotFound):
			h.logger.Warn("GET /barbers/%d/free-slots - Barber not found", barberID)
			handlers.RespondJSON(w, http.StatusNotFound, SlotsResponse{BarberID: barberID, Date: date, Slots: []string{}})

		default:
			h.logger.Error("GET /barbers/%d/free-slots - Failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SlotsResponse{
		BarberID: result.BarberID,
		Date:     result.Date,
		Slots:    result.Slots,
	})
}
