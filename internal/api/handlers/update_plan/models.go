package update_plan

import (
	"time"

	"barber-scheduling-service/internal/domain"
	updatePlan "barber-scheduling-service/internal/usecase/update_plan"
	"barber-scheduling-service/pkg/types"
)

// UpdatePlanRequest HTTP request model
// Отсутствующие поля остаются без изменений; clearEndDate=true
// делает план бессрочным
type UpdatePlanRequest struct {
	ClientName   *string `json:"clientName,omitempty"`
	ClientPhone  *string `json:"clientPhone,omitempty"`
	Weekday      *int    `json:"weekday,omitempty"`
	StartTime    *string `json:"startTime,omitempty"`
	StartDate    *string `json:"startDate,omitempty"`
	EndDate      *string `json:"endDate,omitempty"`
	ClearEndDate bool    `json:"clearEndDate,omitempty"`
}

// PlanResponse HTTP response model
type PlanResponse struct {
	ID          int64   `json:"id"`
	BarberID    int64   `json:"barberId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Weekday     int     `json:"weekday"`
	StartTime   string  `json:"startTime"`
	StartDate   string  `json:"startDate"`
	EndDate     *string `json:"endDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdatePlanRequest) ToUseCaseRequest(planID int64) (*updatePlan.Request, error) {
	req := &updatePlan.Request{
		PlanID:       planID,
		ClientName:   r.ClientName,
		ClientPhone:  r.ClientPhone,
		Weekday:      r.Weekday,
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		ClearEndDate: r.ClearEndDate,
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updatePlan.Response) *PlanResponse {
	result := &PlanResponse{
		ID:          resp.ID,
		BarberID:    resp.BarberID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		Weekday:     resp.Weekday,
		StartTime:   resp.StartTime.String(),
		StartDate:   resp.StartDate.Format(domain.DateFormat),
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
	}
	if resp.EndDate != nil {
		end := resp.EndDate.Format(domain.DateFormat)
		result.EndDate = &end
	}
	return result
}
