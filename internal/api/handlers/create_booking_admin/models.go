package create_booking_admin

import (
	"fmt"
	"time"

	"barber-scheduling-service/internal/domain"
	createBooking "barber-scheduling-service/internal/usecase/create_booking"
	"barber-scheduling-service/pkg/types"
)

// dateFormats допустимые форматы даты в админке
// DD-MM-YYYY исторический формат, нормализуется в YYYY-MM-DD
var dateFormats = []string{domain.DateFormat, "02-01-2006"}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID    int64   `json:"barberId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Date        string  `json:"date"`      // "2025-10-15" или "15-10-2025"
	StartTime   string  `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          int64  `json:"id"`
	BarberID    int64  `json:"barberId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Ручные записи админа создаются сразу подтвержденными
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	date, err := normalizeDate(r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BarberID:    r.BarberID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Date:        date,
		StartTime:   startTime,
		AutoConfirm: true,
	}, nil
}

func normalizeDate(raw string) (string, error) {
	for _, layout := range dateFormats {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format(domain.DateFormat), nil
		}
	}
	return "", fmt.Errorf("invalid date %q", raw)
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		BarberID:    resp.BarberID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Date:        resp.Date.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
}
