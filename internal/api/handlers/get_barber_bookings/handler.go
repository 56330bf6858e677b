package get_barber_bookings

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"barber-scheduling-service/internal/api/handlers"
	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/internal/service/bookings"
	"barber-scheduling-service/internal/service/bookings/models"
)

const (
	msgInvalidID      = "некорректный идентификатор барбера"
	msgInvalidDate    = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgBarberNotFound = "барбер не найден"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/barbers/{id}/bookings?date=&status=&includeInactive=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	barberID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /barbers/{id}/bookings - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	req := &models.GetBarberBookingsRequest{BarberID: barberID}

	query := r.URL.Query()

	if raw := query.Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			h.logger.Warn("GET /barbers/%d/bookings - Invalid date: %q", barberID, raw)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	req.IncludeInactive = query.Get("includeInactive") == "true"

	result, err := h.service.GetBarberBookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBarberNotFound):
			handlers.RespondNotFound(w, msgBarberNotFound)

		default:
			h.logger.Error("GET /barbers/%d/bookings - Failed: %v", barberID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
