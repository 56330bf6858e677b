package confirm_booking

import (
	"errors"
	"net/http"

	"barber-scheduling-service/internal/api/handlers"
	"barber-scheduling-service/internal/domain"
	confirmBooking "barber-scheduling-service/internal/usecase/confirm_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgTokenNotFound      = "токен подтверждения не найден"
	msgTokenAlreadyUsed   = "токен подтверждения уже использован"
	msgTokenExpired       = "срок действия токена истек"
	msgBookingCancelled   = "запись отменена и не может быть подтверждена"
)

// ConfirmBookingRequest HTTP request model
type ConfirmBookingRequest struct {
	Token string `json:"token"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	BookingID int64  `json:"bookingId"`
	BarberID  int64  `json:"barberId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ConfirmBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/confirm - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{Token: req.Token})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrTokenNotFound):
			handlers.RespondNotFound(w, msgTokenNotFound)

		case errors.Is(err, confirmBooking.ErrTokenAlreadyUsed):
			handlers.RespondError(w, http.StatusConflict, msgTokenAlreadyUsed)

		case errors.Is(err, confirmBooking.ErrTokenExpired):
			handlers.RespondError(w, http.StatusGone, msgTokenExpired)

		case errors.Is(err, confirmBooking.ErrBookingCancelled):
			handlers.RespondError(w, http.StatusConflict, msgBookingCancelled)

		case errors.Is(err, confirmBooking.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings/confirm - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/confirm - Booking confirmed: booking_id=%d", result.BookingID)
	handlers.RespondJSON(w, http.StatusOK, ConfirmBookingResponse{
		BookingID: result.BookingID,
		BarberID:  result.BarberID,
		Date:      result.Date.Format(domain.DateFormat),
		StartTime: result.StartTime.String(),
		Status:    result.Status,
	})
}
