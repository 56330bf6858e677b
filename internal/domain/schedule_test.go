package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/types"
)

// monday is a regular working Monday used throughout the tests
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func TestSlotsForDateDefaultConfig(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	slots := cfg.SlotsForDate(monday)

	// 09:00-18:00 по часу, минус слот 12:00 (обед 12:00-13:00)
	expected := []types.TimeString{
		"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
	}
	assert.Equal(t, expected, slots)
}

func TestSlotsForDateLunchBoundaries(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.SlotMinutes = 90

	slots := cfg.SlotsForDate(monday)

	// 10:30-12:00 заканчивается ровно в начале обеда и не считается пересечением,
	// 12:00-13:30 пересекает обеденное окно и вырезается
	expected := []types.TimeString{
		"09:00", "10:30", "13:30", "15:00", "16:30",
	}
	assert.Equal(t, expected, slots)
}

func TestSlotsForDateSlotEndingAtLunchStart(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.LunchStart = "13:00"
	cfg.LunchEnd = "14:00"

	slots := cfg.SlotsForDate(monday)

	// Слот 12:00-13:00 заканчивается ровно в начале обеда и остается,
	// слот 14:00 начинается ровно в конце обеда и тоже остается
	assert.Contains(t, slots, types.TimeString("12:00"))
	assert.NotContains(t, slots, types.TimeString("13:00"))
	assert.Contains(t, slots, types.TimeString("14:00"))
}

func TestSlotsForDateNonWorkingWeekday(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	sunday := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	require.Equal(t, time.Sunday, sunday.Weekday())

	assert.Empty(t, cfg.SlotsForDate(sunday))
}

func TestSlotsForDateDayOff(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.DaysOff = domain.NewDateSet("2026-03-02")

	assert.Empty(t, cfg.SlotsForDate(monday))
}

func TestSlotsForDateInvalidHours(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.DayStart = "18:00"
	cfg.DayEnd = "09:00"
	assert.Empty(t, cfg.SlotsForDate(monday))

	cfg = domain.DefaultScheduleConfig(1)
	cfg.SlotMinutes = 0
	assert.Empty(t, cfg.SlotsForDate(monday))

	cfg = domain.DefaultScheduleConfig(1)
	cfg.SlotMinutes = domain.MaxSlotMinutes + 1
	assert.Empty(t, cfg.SlotsForDate(monday))
}

func TestSlotsForDateLastSlotMustFit(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.DayEnd = "17:30"

	slots := cfg.SlotsForDate(monday)

	// 17:00+60 > 17:30, последний слот не помещается
	assert.Equal(t, types.TimeString("16:00"), slots[len(slots)-1])
}

func TestSlotsForDateIsPure(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	first := cfg.SlotsForDate(monday)
	second := cfg.SlotsForDate(monday)

	assert.Equal(t, first, second)
}

func TestOffersSlot(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	assert.True(t, cfg.OffersSlot(monday, "09:00"))
	assert.False(t, cfg.OffersSlot(monday, "12:00")) // обед
	assert.False(t, cfg.OffersSlot(monday, "09:30")) // не на сетке слотов
	assert.False(t, cfg.OffersSlot(monday, "18:00")) // за границей дня
}

func TestRepresentativeDate(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	// Понедельник 2026-03-02, ищем ближайшую пятницу (weekday=5)
	date, ok := cfg.RepresentativeDate(5, monday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC), date)

	// Сегодняшний день недели подходит сразу
	date, ok = cfg.RepresentativeDate(1, monday)
	require.True(t, ok)
	assert.Equal(t, monday, date)
}

func TestRepresentativeDateSkipsDaysOff(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.DaysOff = domain.NewDateSet("2026-03-02", "2026-03-09")

	date, ok := cfg.RepresentativeDate(1, monday)
	require.True(t, ok)
	assert.Equal(t, time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC), date)
}

func TestRepresentativeDateExhausted(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	// Все понедельники в пределах поиска сделаны выходными
	daysOff := make([]string, 0, domain.RepresentativeDateMaxWeekHops+1)
	d := monday
	for i := 0; i <= domain.RepresentativeDateMaxWeekHops; i++ {
		daysOff = append(daysOff, d.Format(domain.DateFormat))
		d = d.AddDate(0, 0, 7)
	}
	cfg.DaysOff = domain.NewDateSet(daysOff...)

	_, ok := cfg.RepresentativeDate(1, monday)
	assert.False(t, ok)
}

func TestRepresentativeDateInvalidWeekday(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)

	_, ok := cfg.RepresentativeDate(-1, monday)
	assert.False(t, ok)

	_, ok = cfg.RepresentativeDate(7, monday)
	assert.False(t, ok)
}

func TestWeekdaySet(t *testing.T) {
	s := domain.NewWeekdaySet(1, 3, 5, 99, -2)

	assert.True(t, s.Has(time.Monday))
	assert.True(t, s.Has(time.Wednesday))
	assert.False(t, s.Has(time.Sunday))
	assert.Equal(t, []int{1, 3, 5}, s.List())
	assert.False(t, s.IsEmpty())

	assert.True(t, domain.NewWeekdaySet().IsEmpty())
}

func TestDateSet(t *testing.T) {
	s := domain.NewDateSet("2026-03-02")

	assert.True(t, s.Has(monday))
	assert.False(t, s.Has(monday.AddDate(0, 0, 1)))
}
