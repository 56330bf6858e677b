package create_plan

import (
	"context"

	createPlan "barber-scheduling-service/internal/usecase/create_plan"
)

type CreatePlanUseCase interface {
	Execute(ctx context.Context, req *createPlan.Request) (*createPlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
