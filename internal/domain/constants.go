package domain

import "barber-scheduling-service/pkg/types"

// Default schedule configuration values
// Applied when a barber is referenced for the first time
const (
	DefaultSlotMinutes = 60
)

var (
	DefaultDayStart   = types.TimeString("09:00")
	DefaultDayEnd     = types.TimeString("18:00")
	DefaultLunchStart = types.TimeString("12:00")
	DefaultLunchEnd   = types.TimeString("13:00")
)

// Business validation constants
const (
	MinSlotMinutes = 1
	MaxSlotMinutes = 240 // 4 hours

	MaxClientNameLength = 120

	// DefaultClientPhone подставляется, когда телефон не указан
	DefaultClientPhone = "00000000000"
)

// Representative date search bounds
// Поиск конкретной даты для дня недели ограничен итерациями,
// а не замкнутой формулой; превышение означает NoRepresentativeDate
const (
	RepresentativeDateMaxDaySteps = 400
	RepresentativeDateMaxWeekHops = 60
)

// OccurrenceHorizonDays граница окна при разворачивании еженедельного плана
const OccurrenceHorizonDays = 365

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
