package create_link_token

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UseCase use case выпуска токена персональной ссылки
// Токен живет в Redis с TTL и позволяет клиенту записаться
// без повторного ввода телефона
type UseCase struct {
	linkTokens LinkTokenStore
	notifier   Notifier
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(linkTokens LinkTokenStore, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		linkTokens: linkTokens,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute выполняет use case выпуска токена
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}

	token := uuid.NewString()

	if err := uc.linkTokens.Put(ctx, token, phone); err != nil {
		uc.logger.Error("CreateLinkToken: failed to store token: %v", err)
		return nil, fmt.Errorf("%w: failed to store token: %v", ErrInternal, err)
	}

	link := fmt.Sprintf("%s?token=%s", strings.TrimRight(req.BaseURL, "/"), token)

	uc.notifier.NotifyBestEffort(ctx, phone, fmt.Sprintf(
		"Запишитесь по персональной ссылке: %s", link,
	))

	uc.logger.Info("CreateLinkToken: token issued for phone=%s", phone)

	return &Response{Token: token, Link: link}, nil
}
