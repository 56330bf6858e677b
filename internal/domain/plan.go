package domain

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// planMaxDate сентинел "без даты окончания" при сравнении диапазонов
var planMaxDate = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

// RecurringPlan represents a standing weekly reservation ("mensalista")
// for a barber, weekday and time, active over a date range
type RecurringPlan struct {
	ID          int64
	BarberID    int64
	ClientName  string
	ClientPhone *string
	Weekday     int // 0=Sunday .. 6=Saturday
	StartTime   types.TimeString
	StartDate   time.Time
	EndDate     *time.Time // nil = без даты окончания

	CreatedAt time.Time
}

// EndOrMax возвращает дату окончания плана или сентинел-максимум
func (p *RecurringPlan) EndOrMax() time.Time {
	if p.EndDate == nil {
		return planMaxDate
	}
	return *p.EndDate
}

// HasValidRange возвращает true, если день недели в 0..6
// и дата окончания (если есть) не раньше даты начала
func (p *RecurringPlan) HasValidRange() bool {
	if p.Weekday < 0 || p.Weekday > 6 {
		return false
	}
	if p.EndDate != nil && p.EndDate.Before(p.StartDate) {
		return false
	}
	return true
}

// Covers возвращает true, если план претендует на слот в указанную дату
func (p *RecurringPlan) Covers(date time.Time) bool {
	if int(date.Weekday()) != p.Weekday {
		return false
	}
	if date.Before(p.StartDate) {
		return false
	}
	return !date.After(p.EndOrMax())
}

// ConflictsWith возвращает true, если два плана претендуют на один слот:
// совпадают (барбер, день недели, время) и диапазоны дат пересекаются.
// Отсутствующая дата окончания трактуется как +бесконечность
func (p *RecurringPlan) ConflictsWith(other *RecurringPlan) bool {
	if p.BarberID != other.BarberID || p.Weekday != other.Weekday || p.StartTime != other.StartTime {
		return false
	}
	return !other.StartDate.After(p.EndOrMax()) && !p.StartDate.After(other.EndOrMax())
}

// Occurrences разворачивает еженедельный план в конкретные даты внутри окна
// [max(startDate, windowStart), min(endDate|∞, windowEnd)]
func (p *RecurringPlan) Occurrences(windowStart, windowEnd time.Time) []time.Time {
	occurrences := make([]time.Time, 0)

	from := p.StartDate
	if windowStart.After(from) {
		from = windowStart
	}
	to := p.EndOrMax()
	if windowEnd.Before(to) {
		to = windowEnd
	}
	if to.Before(from) {
		return occurrences
	}

	// Доводим from до первого совпадения дня недели
	date := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < 7 && int(date.Weekday()) != p.Weekday; i++ {
		date = date.AddDate(0, 0, 1)
	}
	if int(date.Weekday()) != p.Weekday {
		return occurrences
	}

	for !date.After(to) {
		occurrences = append(occurrences, date)
		date = date.AddDate(0, 0, 7)
	}

	return occurrences
}
