package create_booking_admin

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	createBooking "barber-scheduling-service/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректная дата или время"
	msgBarberNotFound     = "барбер не найден"
	msgSlotNotOffered     = "слот не предлагается расписанием"
	msgSlotReservedByPlan = "слот занят еженедельным планом"
	msgSlotAlreadyBooked  = "слот уже занят"
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

// Handle POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotAlreadyBooked):
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createBooking.ErrSlotReservedByPlan):
			handlers.RespondError(w, http.StatusConflict, msgSlotReservedByPlan)

		case errors.Is(err, createBooking.ErrSlotNotOffered):
			handlers.RespondBadRequest(w, msgSlotNotOffered)

		case errors.Is(err, createBooking.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDateOrTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /admin/bookings - Failed to create booking: barber=%d, error=%v", req.BarberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bookings - Booking created: booking_id=%d, barber=%d", result.ID, req.BarberID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
