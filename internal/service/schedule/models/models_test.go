package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/internal/domain"
	"barber-scheduling-service/pkg/types"
)

func validUpdateConfigRequest() *UpdateConfigRequest {
	return &UpdateConfigRequest{
		BarberID:    1,
		DayStart:    "10:00",
		DayEnd:      "20:00",
		LunchStart:  "14:00",
		LunchEnd:    "15:00",
		SlotMinutes: 30,
		WorkDays:    []int{1, 2, 3, 4, 5},
		DaysOff:     []string{"2026-03-08"},
	}
}

func TestUpdateConfigRequestToDomain(t *testing.T) {
	cfg, err := validUpdateConfigRequest().ToDomain()
	require.NoError(t, err)

	assert.Equal(t, types.TimeString("10:00"), cfg.DayStart)
	assert.Equal(t, 30, cfg.SlotMinutes)
	assert.True(t, cfg.WorkDays.Has(1))
	assert.False(t, cfg.WorkDays.Has(0))
	assert.Equal(t, []string{"2026-03-08"}, cfg.DaysOff.List())
}

func TestUpdateConfigRequestNormalizesDayOffFormat(t *testing.T) {
	req := validUpdateConfigRequest()
	// Исторический формат админки DD-MM-YYYY
	req.DaysOff = []string{"08-03-2026"}

	cfg, err := req.ToDomain()
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-03-08"}, cfg.DaysOff.List())
}

func TestUpdateConfigRequestValidation(t *testing.T) {
	t.Run("malformed time", func(t *testing.T) {
		req := validUpdateConfigRequest()
		req.LunchStart = "2pm"
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidTime)
	})

	t.Run("slot minutes out of range", func(t *testing.T) {
		req := validUpdateConfigRequest()
		req.SlotMinutes = domain.MaxSlotMinutes + 1
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidSlotMinutes)

		req.SlotMinutes = 0
		_, err = req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidSlotMinutes)
	})

	t.Run("day end before day start", func(t *testing.T) {
		req := validUpdateConfigRequest()
		req.DayStart = "20:00"
		req.DayEnd = "10:00"
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidHours)
	})

	t.Run("weekday out of range", func(t *testing.T) {
		req := validUpdateConfigRequest()
		req.WorkDays = []int{1, 7}
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidWeekday)
	})

	t.Run("malformed day off", func(t *testing.T) {
		req := validUpdateConfigRequest()
		req.DaysOff = []string{"март 8"}
		_, err := req.ToDomain()
		assert.ErrorIs(t, err, ErrInvalidDate)
	})
}

func TestFromDomainConfigSortsDaysOff(t *testing.T) {
	cfg := domain.DefaultScheduleConfig(1)
	cfg.DaysOff = domain.NewDateSet("2026-05-01", "2026-03-08", "2026-04-12")

	resp := FromDomainConfig(cfg)

	assert.Equal(t, []string{"2026-03-08", "2026-04-12", "2026-05-01"}, resp.DaysOff)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6}, resp.WorkDays)
}
