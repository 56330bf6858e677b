package create_booking

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	BarberID    int64            // ID барбера
	ClientName  string           // Имя клиента
	ClientPhone *string          // Телефон клиента (опционально)
	LinkToken   *string          // Токен персональной ссылки вместо телефона (опционально)
	Date        string           // Дата записи в формате "2006-01-02"
	StartTime   types.TimeString // Время начала слота (например, "10:00")
	AutoConfirm bool             // true для ручных записей админа: минуя подтверждение
}

// Response модель ответа с созданной записью
type Response struct {
	ID           int64            // ID созданной записи
	BarberID     int64            // ID барбера
	ClientName   string           // Имя клиента
	ClientPhone  string           // Телефон клиента
	Date         time.Time        // Дата записи
	StartTime    types.TimeString // Время начала
	Status       string           // Статус записи
	ConfirmToken *string          // Токен подтверждения (только для неподтвержденных)

	CreatedAt time.Time // Время создания
}
