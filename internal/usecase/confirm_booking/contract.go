package confirm_booking

import (
	"context"
	"time"

	"barber-scheduling-service/internal/domain"
)

// TokenRepository интерфейс репозитория токенов подтверждения
type TokenRepository interface {
	GetByToken(ctx context.Context, token string) (*domain.ConfirmToken, error)
	MarkUsed(ctx context.Context, token string) error
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	NotifyBestEffort(ctx context.Context, phone, text string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
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
