package domain

import (
	"time"

	"barber-scheduling-service/pkg/types"
)

// WeekdaySet множество дней недели, в которые барбер работает
// Индекс 0 = воскресенье ... 6 = суббота
type WeekdaySet [7]bool

// NewWeekdaySet создает множество из списка дней недели
// Значения вне 0..6 игнорируются
func NewWeekdaySet(weekdays ...int) WeekdaySet {
	var s WeekdaySet
	for _, d := range weekdays {
		if d >= 0 && d <= 6 {
			s[d] = true
		}
	}
	return s
}

// Has возвращает true, если день недели входит в множество
func (s WeekdaySet) Has(d time.Weekday) bool {
	return s[int(d)]
}

// IsEmpty возвращает true, если рабочих дней нет
func (s WeekdaySet) IsEmpty() bool {
	for _, v := range s {
		if v {
			return false
		}
	}
	return true
}

// List возвращает отсортированный список дней недели множества
func (s WeekdaySet) List() []int {
	result := make([]int, 0, 7)
	for d, v := range s {
		if v {
			result = append(result, d)
		}
	}
	return result
}

// DateSet множество календарных дат (исключения-выходные)
// Ключом служит дата в формате YYYY-MM-DD
type DateSet map[string]struct{}

// NewDateSet создает множество из списка дат в формате YYYY-MM-DD
func NewDateSet(dates ...string) DateSet {
	s := make(DateSet, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Has возвращает true, если дата входит в множество
func (s DateSet) Has(date time.Time) bool {
	_, ok := s[date.Format(DateFormat)]
	return ok
}

// List возвращает список дат множества (порядок не определен)
func (s DateSet) List() []string {
	result := make([]string, 0, len(s))
	for d := range s {
		result = append(result, d)
	}
	return result
}

// ScheduleConfig represents the working schedule of a single barber
type ScheduleConfig struct {
	BarberID    int64
	DayStart    types.TimeString
	DayEnd      types.TimeString
	LunchStart  types.TimeString
	LunchEnd    types.TimeString
	SlotMinutes int
	WorkDays    WeekdaySet
	DaysOff     DateSet

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultScheduleConfig возвращает конфигурацию по умолчанию
// (09:00-18:00, обед 12:00-13:00, слоты по 60 минут, Пн-Сб)
func DefaultScheduleConfig(barberID int64) *ScheduleConfig {
	return &ScheduleConfig{
		BarberID:    barberID,
		DayStart:    DefaultDayStart,
		DayEnd:      DefaultDayEnd,
		LunchStart:  DefaultLunchStart,
		LunchEnd:    DefaultLunchEnd,
		SlotMinutes: DefaultSlotMinutes,
		WorkDays:    NewWeekdaySet(1, 2, 3, 4, 5, 6),
		DaysOff:     NewDateSet(),
	}
}

// HasValidHours возвращает true, если рабочий интервал и длина слота корректны
func (c *ScheduleConfig) HasValidHours() bool {
	return c.DayEnd.Minutes() > c.DayStart.Minutes() &&
		c.SlotMinutes >= MinSlotMinutes &&
		c.SlotMinutes <= MaxSlotMinutes
}

// SlotsForDate генерирует упорядоченный список начал слотов на дату
//
// Пустой результат, если день недели нерабочий, дата в списке выходных,
// конец дня не позже начала или длина слота вне (0, 240].
// Слот исключается, если он пересекается с обеденным окном [lunchStart, lunchEnd):
// t < lunchEnd && t+slot > lunchStart. Граничные случаи (слот заканчивается
// ровно в начале обеда или начинается ровно в его конце) не считаются
// пересечением.
//
// Функция чистая: результат зависит только от аргументов
func (c *ScheduleConfig) SlotsForDate(date time.Time) []types.TimeString {
	slots := make([]types.TimeString, 0)

	if !c.WorkDays.Has(date.Weekday()) {
		return slots
	}
	if c.DaysOff.Has(date) {
		return slots
	}
	if !c.HasValidHours() {
		return slots
	}

	startMin := c.DayStart.Minutes()
	endMin := c.DayEnd.Minutes()
	lunchStartMin := c.LunchStart.Minutes()
	lunchEndMin := c.LunchEnd.Minutes()

	for t := startMin; t+c.SlotMinutes <= endMin; t += c.SlotMinutes {
		withinLunch := t < lunchEndMin && t+c.SlotMinutes > lunchStartMin
		if withinLunch {
			continue
		}
		slots = append(slots, types.FromMinutes(t))
	}

	return slots
}

// OffersSlot возвращает true, если time входит в слоты на дату
func (c *ScheduleConfig) OffersSlot(date time.Time, t types.TimeString) bool {
	for _, slot := range c.SlotsForDate(date) {
		if slot == t {
			return true
		}
	}
	return false
}

// RepresentativeDate подбирает конкретную дату с указанным днем недели,
// начиная с today: сначала шагает по дням до совпадения дня недели,
// затем перепрыгивает через выходные-исключения по неделе за раз.
// Возвращает ok=false, если ограничение итераций исчерпано:
// вызывающий должен трактовать это как отказ, а не угадывать дату
func (c *ScheduleConfig) RepresentativeDate(weekday int, today time.Time) (time.Time, bool) {
	if weekday < 0 || weekday > 6 {
		return time.Time{}, false
	}

	date := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)

	found := false
	for i := 0; i < RepresentativeDateMaxDaySteps; i++ {
		if int(date.Weekday()) == weekday {
			found = true
			break
		}
		date = date.AddDate(0, 0, 1)
	}
	if !found {
		return time.Time{}, false
	}

	for i := 0; i < RepresentativeDateMaxWeekHops; i++ {
		if !c.DaysOff.Has(date) {
			return date, true
		}
		date = date.AddDate(0, 0, 7)
	}

	return time.Time{}, false
}
