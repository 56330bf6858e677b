package update_plan

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// Request модель запроса на обновление еженедельного плана
// nil-поля остаются без изменений; ClearEndDate снимает дату окончания
type Request struct {
	PlanID       int64             // ID плана
	ClientName   *string           // Имя клиента
	ClientPhone  *string           // Телефон клиента
	Weekday      *int              // День недели: 0=воскресенье ... 6=суббота
	StartTime    *types.TimeString // Время начала слота
	StartDate    *string           // Дата начала действия в формате "2006-01-02"
	EndDate      *string           // Дата окончания
	ClearEndDate bool              // true снимает дату окончания (план бессрочный)
}

// Response модель ответа с обновленным планом
type Response struct {
	ID          int64            // ID плана
	BarberID    int64            // ID барбера
	ClientName  string           // Имя клиента
	ClientPhone *string          // Телефон клиента
	Weekday     int              // День недели
	StartTime   types.TimeString // Время начала
	StartDate   time.Time        // Дата начала действия
	EndDate     *time.Time       // Дата окончания

	CreatedAt time.Time // Время создания
}
