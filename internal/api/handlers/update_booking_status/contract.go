package update_booking_status

import (
	"context"

	"barber-scheduling-service/internal/service/bookings/models"
)

type BookingsService interface {
	SetStatus(ctx context.Context, id int64, status string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
