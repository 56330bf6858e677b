package update_barber

import (
	"context"

	"barber-scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpdateBarber(ctx context.Context, req *models.UpdateBarberRequest) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
