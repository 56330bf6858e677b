package models

import (
	"time"

	"barber-scheduling-service/internal/domain"
)

// Request модели

// GetBarberBookingsRequest запрос на получение записей барбера
type GetBarberBookingsRequest struct {
	BarberID        int64      `json:"barberId"`
	Date            *time.Time `json:"date,omitempty"`
	Status          *string    `json:"status,omitempty"`
	IncludeInactive bool       `json:"includeInactive,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBarberBookingsRequest) ToDomainFilter() domain.BarberBookingsFilter {
	filter := domain.BarberBookingsFilter{
		BarberID:        r.BarberID,
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status := domain.BookingStatus(*r.Status)
		filter.Status = &status
	}

	return filter
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID          int64  `json:"id"`
	BarberID    int64  `json:"barberId"`
	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`
	Date        string `json:"date"`      // "2025-10-15"
	StartTime   string `json:"startTime"` // "10:00"
	Status      string `json:"status"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// BookingListResponse ответ со списком записей
type BookingListResponse struct {
	Bookings []*BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в response
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		BarberID:    b.BarberID,
		ClientName:  b.ClientName,
		ClientPhone: b.ClientPhone,
		Date:        b.Date.Format(domain.DateFormat),
		StartTime:   b.StartTime.String(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromDomainBookingList конвертирует список domain моделей в response
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]*BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}
