package create_plan

import (
	"time"

	"barber-scheduling-service/internal/domain"
	createPlan "barber-scheduling-service/internal/usecase/create_plan"
	"barber-scheduling-service/pkg/types"
)

// CreatePlanRequest HTTP request model
type CreatePlanRequest struct {
	BarberID    int64   `json:"barberId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Weekday     int     `json:"weekday"`   // 0=воскресенье ... 6=суббота
	StartTime   string  `json:"startTime"` // "10:00"
	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     *string `json:"endDate,omitempty"`
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
func (r *CreatePlanRequest) ToUseCaseRequest() (*createPlan.Request, error) {
	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createPlan.Request{
		BarberID:    r.BarberID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		Weekday:     r.Weekday,
		StartTime:   startTime,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createPlan.Response) *PlanResponse {
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
