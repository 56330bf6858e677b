package schedule

import (
	"context"

	"barber-scheduling-service/internal/domain"
)

// BarberRepository интерфейс репозитория барберов
type BarberRepository interface {
	Create(ctx context.Context, name string) (*domain.Barber, error)
	GetByID(ctx context.Context, id int64) (*domain.Barber, error)
	List(ctx context.Context, onlyActive bool) ([]*domain.Barber, error)
	Update(ctx context.Context, id int64, name *string, isActive *bool) error
}

// ScheduleRepository интерфейс репозитория конфигурации расписания
type ScheduleRepository interface {
	GetConfig(ctx context.Context, barberID int64) (*domain.ScheduleConfig, error)
	UpdateConfig(ctx context.Context, cfg *domain.ScheduleConfig) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
