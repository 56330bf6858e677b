package models

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/types"
)

var (
	// ErrInvalidTime возвращается при некорректном формате времени
	ErrInvalidTime = errors.New("invalid time format, expected HH:MM")

	// ErrInvalidDate возвращается при некорректном формате даты
	ErrInvalidDate = errors.New("invalid date format")

	// ErrInvalidWeekday возвращается при значении дня недели вне 0..6
	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")

	// ErrInvalidSlotMinutes возвращается при длине слота вне допустимого диапазона
	ErrInvalidSlotMinutes = errors.New("slot minutes out of range")

	// ErrInvalidHours возвращается, когда конец дня не позже начала
	ErrInvalidHours = errors.New("day end must be after day start")
)

// dayOffFormats допустимые форматы дат выходных
// DD-MM-YYYY исторический формат админки, нормализуется в YYYY-MM-DD
var dayOffFormats = []string{domain.DateFormat, "02-01-2006"}

// Request модели

// UpdateBarberRequest запрос на обновление барбера
type UpdateBarberRequest struct {
	BarberID int64   `json:"barberId"`
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// UpdateConfigRequest запрос на обновление конфигурации расписания
type UpdateConfigRequest struct {
	BarberID    int64    `json:"barberId"`
	DayStart    string   `json:"dayStart"`    // "09:00"
	DayEnd      string   `json:"dayEnd"`      // "18:00"
	LunchStart  string   `json:"lunchStart"`  // "12:00"
	LunchEnd    string   `json:"lunchEnd"`    // "13:00"
	SlotMinutes int      `json:"slotMinutes"` // 1..240
	WorkDays    []int    `json:"workDays"`    // 0=воскресенье ... 6=суббота
	DaysOff     []string `json:"daysOff"`     // даты-исключения
}

// ToDomain валидирует запрос и конвертирует его в domain конфигурацию
func (r *UpdateConfigRequest) ToDomain() (*domain.ScheduleConfig, error) {
	cfg := &domain.ScheduleConfig{
		BarberID:    r.BarberID,
		SlotMinutes: r.SlotMinutes,
	}

	times := []struct {
		name  string
		value string
		dst   *types.TimeString
	}{
		{"dayStart", r.DayStart, &cfg.DayStart},
		{"dayEnd", r.DayEnd, &cfg.DayEnd},
		{"lunchStart", r.LunchStart, &cfg.LunchStart},
		{"lunchEnd", r.LunchEnd, &cfg.LunchEnd},
	}
	for _, t := range times {
		ts, err := types.NewTimeStringFromString(t.value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s=%q", ErrInvalidTime, t.name, t.value)
		}
		*t.dst = ts
	}

	if r.SlotMinutes < domain.MinSlotMinutes || r.SlotMinutes > domain.MaxSlotMinutes {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSlotMinutes, r.SlotMinutes)
	}
	if cfg.DayEnd.Minutes() <= cfg.DayStart.Minutes() {
		return nil, ErrInvalidHours
	}

	for _, d := range r.WorkDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: got %d", ErrInvalidWeekday, d)
		}
	}
	cfg.WorkDays = domain.NewWeekdaySet(r.WorkDays...)

	daysOff := make([]string, 0, len(r.DaysOff))
	for _, raw := range r.DaysOff {
		ymd, err := normalizeDayOff(raw)
		if err != nil {
			return nil, err
		}
		daysOff = append(daysOff, ymd)
	}
	cfg.DaysOff = domain.NewDateSet(daysOff...)

	return cfg, nil
}

func normalizeDayOff(raw string) (string, error) {
	for _, layout := range dayOffFormats {
		if d, err := time.Parse(layout, raw); err == nil {
			return d.Format(domain.DateFormat), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}

// Response модели

// BarberResponse ответ с данными барбера
type BarberResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
}

// BarberListResponse ответ со списком барберов
type BarberListResponse struct {
	Barbers []*BarberResponse `json:"barbers"`
}

// ConfigResponse ответ с конфигурацией расписания
type ConfigResponse struct {
	BarberID    int64    `json:"barberId"`
	DayStart    string   `json:"dayStart"`
	DayEnd      string   `json:"dayEnd"`
	LunchStart  string   `json:"lunchStart"`
	LunchEnd    string   `json:"lunchEnd"`
	SlotMinutes int      `json:"slotMinutes"`
	WorkDays    []int    `json:"workDays"`
	DaysOff     []string `json:"daysOff"`
}

// FromDomainBarber конвертирует domain модель в response
func FromDomainBarber(b *domain.Barber) *BarberResponse {
	return &BarberResponse{
		ID:       b.ID,
		Name:     b.Name,
		IsActive: b.IsActive,
	}
}

// FromDomainBarberList конвертирует список domain моделей в response
func FromDomainBarberList(barbers []*domain.Barber) *BarberListResponse {
	result := make([]*BarberResponse, 0, len(barbers))
	for _, b := range barbers {
		result = append(result, FromDomainBarber(b))
	}
	return &BarberListResponse{Barbers: result}
}

// FromDomainConfig конвертирует domain конфигурацию в response
// Выходные возвращаются отсортированными
func FromDomainConfig(cfg *domain.ScheduleConfig) *ConfigResponse {
	daysOff := cfg.DaysOff.List()
	sort.Strings(daysOff)

	return &ConfigResponse{
		BarberID:    cfg.BarberID,
		DayStart:    cfg.DayStart.String(),
		DayEnd:      cfg.DayEnd.String(),
		LunchStart:  cfg.LunchStart.String(),
		LunchEnd:    cfg.LunchEnd.String(),
		SlotMinutes: cfg.SlotMinutes,
		WorkDays:    cfg.WorkDays.List(),
		DaysOff:     daysOff,
	}
}
