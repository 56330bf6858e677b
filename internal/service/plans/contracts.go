package plans

import (
	"context"

	"barber-scheduling-service/internal/domain"
)

// PlanRepository интерфейс репозитория еженедельных планов
type PlanRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.RecurringPlan, error)
	ListByBarber(ctx context.Context, barberID int64) ([]*domain.RecurringPlan, error)
	Delete(ctx context.Context, id int64) error
}

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
