package update_plan

import (
	"context"

	updatePlan "barber-scheduling-service/internal/usecase/update_plan"
)

type UpdatePlanUseCase interface {
	Execute(ctx context.Context, req *updatePlan.Request) (*updatePlan.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
