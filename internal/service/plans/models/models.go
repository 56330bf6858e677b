package models

import (
	"time"

	"barber-scheduling-service/internal/domain"
)

// Response модели

// PlanResponse ответ с данными еженедельного плана
type PlanResponse struct {
	ID          int64   `json:"id"`
	BarberID    int64   `json:"barberId"`
	ClientName  string  `json:"clientName"`
	ClientPhone *string `json:"clientPhone,omitempty"`
	Weekday     int     `json:"weekday"`
	StartTime   string  `json:"startTime"` // "10:00"
	StartDate   string  `json:"startDate"` // "2025-10-15"
	EndDate     *string `json:"endDate,omitempty"`
	CreatedAt   string  `json:"createdAt"`
}

// PlanListResponse ответ со списком планов
type PlanListResponse struct {
	Plans []*PlanResponse `json:"plans"`
}

// OccurrenceListResponse ответ со списком конкретных дат плана
type OccurrenceListResponse struct {
	PlanID      int64    `json:"planId"`
	WindowStart string   `json:"windowStart"`
	WindowEnd   string   `json:"windowEnd"`
	Dates       []string `json:"dates"`
}

// FromDomainPlan конвертирует domain модель в response
func FromDomainPlan(p *domain.RecurringPlan) *PlanResponse {
	resp := &PlanResponse{
		ID:          p.ID,
		BarberID:    p.BarberID,
		ClientName:  p.ClientName,
		ClientPhone: p.ClientPhone,
		Weekday:     p.Weekday,
		StartTime:   p.StartTime.String(),
		StartDate:   p.StartDate.Format(domain.DateFormat),
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
	}
	if p.EndDate != nil {
		end := p.EndDate.Format(domain.DateFormat)
		resp.EndDate = &end
	}
	return resp
}

// FromDomainPlanList конвертирует список domain моделей в response
func FromDomainPlanList(plans []*domain.RecurringPlan) *PlanListResponse {
	result := make([]*PlanResponse, 0, len(plans))
	for _, p := range plans {
		result = append(result, FromDomainPlan(p))
	}
	return &PlanListResponse{Plans: result}
}

// FromOccurrences конвертирует развернутые даты плана в response
func FromOccurrences(planID int64, windowStart, windowEnd time.Time, dates []time.Time) *OccurrenceListResponse {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Format(domain.DateFormat))
	}
	return &OccurrenceListResponse{
		PlanID:      planID,
		WindowStart: windowStart.Format(domain.DateFormat),
		WindowEnd:   windowEnd.Format(domain.DateFormat),
		Dates:       result,
	}
}
