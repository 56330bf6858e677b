package confirm_booking

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// Request модель запроса на подтверждение записи
type Request struct {
	Token string // Одноразовый токен подтверждения
}

// Response модель ответа с подтвержденной записью
type Response struct {
	BookingID int64            // ID записи
	BarberID  int64            // ID барбера
	Date      time.Time        // Дата записи
	StartTime types.TimeString // Время начала
	Status    string           // Статус после подтверждения
}
