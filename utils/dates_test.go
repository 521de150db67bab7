package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-03-25")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 25, d.Day())
	assert.Equal(t, "2024-03-25", FormatDate(d))

	_, err = ParseDate("25-03-2024")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDayStart(t *testing.T) {
	at := time.Date(2024, 3, 25, 18, 45, 12, 999, time.Local)
	start := DayStart(at)
	assert.Equal(t, time.Date(2024, 3, 25, 0, 0, 0, 0, time.Local), start)
}

func TestDaysFromToday(t *testing.T) {
	today := Today()
	assert.Equal(t, today, DaysFromToday(0))
	assert.Equal(t, today.AddDate(0, 0, 2), DaysFromToday(2))
	assert.Equal(t, today.AddDate(0, 0, -6), DaysFromToday(-6))
}
