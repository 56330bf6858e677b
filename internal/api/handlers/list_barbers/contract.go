package list_barbers

import (
	"context"

	"barber-scheduling-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ListBarbers(ctx context.Context, onlyActive bool) (*models.BarberListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
