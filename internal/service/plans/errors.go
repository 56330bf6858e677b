package plans

import "errors"

var (
	// ErrPlanNotFound возвращается, когда план не найден
	ErrPlanNotFound = errors.New("plan not found")

	// ErrBarberNotFound возвращается, когда барбер не найден
	ErrBarberNotFound = errors.New("barber not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
