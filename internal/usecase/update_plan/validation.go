package update_plan

import (
	"fmt"
	"strings"
	"time"

	"barber-scheduling-service/internal/domain"
)

// applyRequest накладывает изменения запроса на существующий план
func applyRequest(plan *domain.RecurringPlan, req *Request) error {
	if req.ClientName != nil {
		name := strings.TrimSpace(*req.ClientName)
		if name == "" {
			return fmt.Errorf("%w: clientName must not be empty", ErrInvalidInput)
		}
		if len(name) > domain.MaxClientNameLength {
			return fmt.Errorf("%w: clientName is too long", ErrInvalidInput)
		}
		plan.ClientName = name
	}

	if req.ClientPhone != nil {
		plan.ClientPhone = req.ClientPhone
	}

	if req.Weekday != nil {
		plan.Weekday = *req.Weekday
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
		plan.StartTime = *req.StartTime
	}

	if req.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *req.StartDate)
		if err != nil {
			return fmt.Errorf("%w: invalid startDate %q", ErrInvalidInput, *req.StartDate)
		}
		plan.StartDate = startDate
	}

	if req.ClearEndDate {
		plan.EndDate = nil
	} else if req.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *req.EndDate)
		if err != nil {
			return fmt.Errorf("%w: invalid endDate %q", ErrInvalidInput, *req.EndDate)
		}
		plan.EndDate = &endDate
	}

	if !plan.HasValidRange() {
		return ErrPlanRangeInvalid
	}

	return nil
}
