package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда запись не найдена
	ErrBookingNotFound = errors.New("booking not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrCannotCancel возвращается при попытке отменить уже отмененную запись
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrSlotTaken возвращается, когда возврат записи в активный статус
	// сталкивается с другой активной записью в том же слоте
	ErrSlotTaken = errors.New("slot already taken")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
