package get_schedule_config

import (
	"context"

	"barber-scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetConfig(ctx context.Context, barberID int64) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
