package create_link_token

import "context"

// LinkTokenStore интерфейс хранилища токенов персональных ссылок
type LinkTokenStore interface {
	Put(ctx context.Context, token, phone string) error
}

// Notifier интерфейс отправки уведомлений клиенту
type Notifier interface {
	NotifyBestEffort(ctx context.Context, phone, text string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
