package create_booking

import "errors"

var (
	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("create_booking: barber not found")

	// ErrInvalidDate возвращается при некорректной дате записи
	ErrInvalidDate = errors.New("create_booking: invalid date")

	// ErrSlotNotOffered возвращается, когда слот не предлагается расписанием:
	// нерабочий день, выходной, обед или время вне сетки
	ErrSlotNotOffered = errors.New("create_booking: slot is not offered by the schedule")

	// ErrSlotReservedByPlan возвращается, когда слот занят еженедельным планом
	ErrSlotReservedByPlan = errors.New("create_booking: slot is reserved by a recurring plan")

	// ErrSlotAlreadyBooked возвращается, когда слот занят другой записью
	ErrSlotAlreadyBooked = errors.New("create_booking: slot is already booked")

	// ErrInvalidLinkToken возвращается, когда токен персональной ссылки
	// не найден или истек
	ErrInvalidLinkToken = errors.New("create_booking: invalid link token")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
