package domain

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// BookingStatus represents the status of a booking
//
// Админ может записать произвольную строку; для занятости слота
// значение имеет только различие "canceled" / "не canceled"
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// Booking represents a one-off appointment in the ledger
type Booking struct {
	ID          int64
	BarberID    int64
	ClientName  string
	ClientPhone string
	Date        time.Time // календарная дата, время внутри суток не используется
	StartTime   types.TimeString
	Status      BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCanceled
}

// IsActive returns true if the booking occupies its slot
// Любой не-отмененный статус занимает слот одинаково
func (b *Booking) IsActive() bool {
	return !b.IsCancelled()
}

// CanBeCancelled returns true if the booking can still be cancelled
// Из canceled переходов нет
func (b *Booking) CanBeCancelled() bool {
	return !b.IsCancelled()
}

// BarberBookingsFilter фильтр для получения записей барбера
type BarberBookingsFilter struct {
	BarberID        int64
	Date            *time.Time     // конкретная дата (опционально)
	Status          *BookingStatus // фильтр по статусу (опционально)
	IncludeInactive bool           // включать ли отмененные записи
}
