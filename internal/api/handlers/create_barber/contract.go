package create_barber

import (
	"context"

	"barber-scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateBarber(ctx context.Context, name string) (*models.BarberResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
