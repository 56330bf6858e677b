package create_booking

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

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	Exists(ctx context.Context, barberID int64, date string, startTime types.TimeString) (bool, error)
}

// PlanRepository интерфейс репозитория еженедельных планов
type PlanRepository interface {
	BlockedTimes(ctx context.Context, barberID int64, date string, weekday int) ([]types.TimeString, error)
}

// TokenRepository интерфейс репозитория токенов подтверждения
type TokenRepository interface {
	Create(ctx context.Context, token *domain.ConfirmToken) (*domain.ConfirmToken, error)
}

// LinkTokenStore интерфейс хранилища токенов персональных ссылок
type LinkTokenStore interface {
	Get(ctx context.Context, token string) (string, error)
	Delete(ctx context.Context, token string) error
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	NotifyBestEffort(ctx context.Context, phone, text string)
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
