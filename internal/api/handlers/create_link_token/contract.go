package create_link_token

import (
	"context"

	createLinkToken "barber-scheduling-service/internal/usecase/create_link_token"
)

type CreateLinkTokenUseCase interface {
	Execute(ctx context.Context, req *createLinkToken.Request) (*createLinkToken.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
