package types_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"barber-scheduling-service/pkg/types"
)

func TestNewTimeStringFromString(t *testing.T) {
	valid := []string{"00:00", "09:00", "14:30", "23:59"}
	for _, s := range valid {
		ts, err := types.NewTimeStringFromString(s)
		require.NoError(t, err, s)
		assert.Equal(t, s, ts.String())
	}

	invalid := []string{"", "9:00", "24:00", "14:60", "14:30:00", "14-30", "ab:cd"}
	for _, s := range invalid {
		_, err := types.NewTimeStringFromString(s)
		assert.ErrorIs(t, err, types.ErrInvalidTimeString, s)
	}
}

func TestTimeStringMinutes(t *testing.T) {
	assert.Equal(t, 0, types.TimeString("00:00").Minutes())
	assert.Equal(t, 540, types.TimeString("09:00").Minutes())
	assert.Equal(t, 870, types.TimeString("14:30").Minutes())
	assert.Equal(t, 1439, types.TimeString("23:59").Minutes())

	// Невалидное значение не паникует
	assert.Equal(t, 0, types.TimeString("garbage").Minutes())
}

func TestFromMinutes(t *testing.T) {
	assert.Equal(t, types.TimeString("00:00"), types.FromMinutes(0))
	assert.Equal(t, types.TimeString("09:30"), types.FromMinutes(570))
	assert.Equal(t, types.TimeString("23:59"), types.FromMinutes(1439))
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts, err := types.TimeString("09:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("10:30"), ts)

	_, err = types.TimeString("23:30").AddMinutes(60)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)

	_, err = types.TimeString("00:30").AddMinutes(-60)
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}

func TestTimeStringOrdering(t *testing.T) {
	assert.True(t, types.TimeString("09:00").IsBefore("09:01"))
	assert.False(t, types.TimeString("09:01").IsBefore("09:00"))
	assert.True(t, types.TimeString("18:00").IsAfter("09:00"))
}

func TestTimeStringScan(t *testing.T) {
	var ts types.TimeString

	require.NoError(t, ts.Scan("18:30"))
	assert.Equal(t, types.TimeString("18:30"), ts)

	// TIME колонки приходят с секундами
	require.NoError(t, ts.Scan("18:30:00"))
	assert.Equal(t, types.TimeString("18:30"), ts)

	require.NoError(t, ts.Scan([]byte("07:15")))
	assert.Equal(t, types.TimeString("07:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 11, 45, 0, 0, time.UTC)))
	assert.Equal(t, types.TimeString("11:45"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}

func TestTimeStringValue(t *testing.T) {
	v, err := types.TimeString("14:00").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:00", v)

	_, err = types.TimeString("25:00").Value()
	assert.ErrorIs(t, err, types.ErrInvalidTimeString)
}
