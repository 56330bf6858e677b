package plan_occurrences

import (
	"context"
	"time"

	"barber-scheduling-service/internal/service/plans/models"
)

type PlansService interface {
	Occurrences(ctx context.Context, id int64, now time.Time) (*models.OccurrenceListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
