package create_booking

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	createBooking "barber-scheduling-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени начала, ожидается HH:MM"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound     = "барбер не найден"
	msgSlotNotOffered     = "слот не предлагается расписанием"
	msgSlotReservedByPlan = "слот занят еженедельным планом"
	msgSlotAlreadyBooked  = "слот уже занят"
	msgInvalidLinkToken   = "персональная ссылка недействительна или истекла"
	msgInvalidInput       = "некорректные входные данные"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /bookings - Slot already booked: barber=%d, date=%s, time=%s", req.BarberID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrSlotReservedByPlan):
			h.logger.Warn("POST /bookings - Slot reserved by plan: barber=%d, date=%s, time=%s", req.BarberID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotReservedByPlan)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			h.logger.Warn("POST /bookings - Slot not offered: barber=%d, date=%s, time=%s", req.BarberID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			h.logger.Warn("POST /bookings - Barber not found: barber=%d", req.BarberID)
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrInvalidLinkToken):
			h.logger.Warn("POST /bookings - Invalid link token")
			handlers.RespondError(w, http.StatusUnauthorized, msgInvalidLinkToken)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: barber=%d, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%d, barber=%d", result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
