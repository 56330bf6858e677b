package create_plan

import (
	"context"
	"time"

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

// PlanRepository интерфейс репозитория еженедельных планов
type PlanRepository interface {
	Create(ctx context.Context, plan *domain.RecurringPlan) (*domain.RecurringPlan, error)
	ListByKey(ctx context.Context, barberID int64, weekday int, startTime types.TimeString, excludeID *int64) ([]*domain.RecurringPlan, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
