package whatsapp

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("whatsapp client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе шлюза
	ErrInvalidResponse = errors.New("whatsapp client: invalid response")

	// ErrDisabled возвращается, когда отправка сообщений выключена конфигом
	ErrDisabled = errors.New("whatsapp client: disabled")
)
