package create_booking

import (
	"time"

	"barber-scheduling-service/internal/domain"
	createBooking "barber-scheduling-service/internal/usecase/create_booking"
	"barber-scheduling-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	BarberID    int64   `json:"barberId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	LinkToken   *string `json:"linkToken,omitempty"`
	Date        string  `json:"date"`      // "2025-10-15"
	StartTime   string  `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID           int64   `json:"id"`
	BarberID     int64   `json:"barberId"`
	ClientName   string  `json:"clientName"`
	ClientPhone  string  `json:"clientPhone"`
	Date         string  `json:"date"`
	StartTime    string  `json:"startTime"`
	Status       string  `json:"status"`
	ConfirmToken *string `json:"confirmToken,omitempty"`
	CreatedAt    string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		BarberID:    r.BarberID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		LinkToken:   r.LinkToken,
		Date:        r.Date,
		StartTime:   startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:           resp.ID,
		BarberID:     resp.BarberID,
		ClientName:   resp.ClientName,
		ClientPhone:  resp.ClientPhone,
		Date:         resp.Date.Format(domain.DateFormat),
		StartTime:    resp.StartTime.String(),
		Status:       resp.Status,
		ConfirmToken: resp.ConfirmToken,
		CreatedAt:    resp.CreatedAt.Format(time.RFC3339),
	}
}
