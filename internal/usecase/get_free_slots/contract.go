package get_free_slots

import (
	"context"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/types"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	ListOccupiedTimes(ctx context.Context, barberID int64, date string) ([]types.TimeString, error)
}

// PlanRepository интерфейс репозитория еженедельных планов
type PlanRepository interface {
	BlockedTimes(ctx context.Context, barberID int64, date string, weekday int) ([]types.TimeString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
