package confirm_booking

import "errors"

var (
	// ErrTokenNotFound возвращается, когда токен не найден
	ErrTokenNotFound = errors.New("confirm_booking: token not found")

	// ErrTokenAlreadyUsed возвращается при повторном использовании токена
	ErrTokenAlreadyUsed = errors.New("confirm_booking: token already used")

	// ErrTokenExpired возвращается, когда срок действия токена истек
	ErrTokenExpired = errors.New("confirm_booking: token expired")

	// ErrBookingCancelled возвращается при попытке подтвердить отмененную запись
	ErrBookingCancelled = errors.New("confirm_booking: booking is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("confirm_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
