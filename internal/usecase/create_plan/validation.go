package create_plan

import (
	"fmt"
	"strings"
	"time"

	"barber-scheduling-service/internal/domain"
)

// validateRequest валидирует входные данные и собирает domain план
func validateRequest(req *Request) (*domain.RecurringPlan, error) {
	if req.BarberID <= 0 {
		return nil, fmt.Errorf("%w: barberID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ClientName) == "" {
		return nil, fmt.Errorf("%w: clientName is required", ErrInvalidInput)
	}
	if len(req.ClientName) > domain.MaxClientNameLength {
		return nil, fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return nil, fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}
	if err := req.StartTime.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	startDate, err := time.Parse(domain.DateFormat, req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, req.StartDate)
	}

	plan := &domain.RecurringPlan{
		BarberID:    req.BarberID,
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientPhone: req.ClientPhone,
		Weekday:     req.Weekday,
		StartTime:   req.StartTime,
		StartDate:   startDate,
	}

	if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
		plan.EndDate = &endDate
	}

	if !plan.HasValidRange() {
		return nil, ErrPlanRangeInvalid
	}

	return plan, nil
}
