package list_plans

import (
	"context"

	"barber-scheduling-service/internal/service/plans/models"
)

type PlansService interface {
	ListByBarber(ctx context.Context, barberID int64) (*models.PlanListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
