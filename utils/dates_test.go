package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	t.Run("plain date", func(t *testing.T) {
		parsed, err := ParseDate("2024-06-11")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), parsed)
	})

	t.Run("rfc3339 timestamp", func(t *testing.T) {
		parsed, err := ParseDate("2024-06-11T14:30:00Z")
		require.NoError(t, err)
		assert.Equal(t, 14, parsed.Hour())
	})

	t.Run("invalid input", func(t *testing.T) {
		for _, value := range []string{"", "yesterday", "11-06-2024", "2024/06/11"} {
			_, err := ParseDate(value)
			assert.Error(t, err, "%q should not parse", value)
		}
	})
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(time.Date(2024, 6, 11, 14, 30, 45, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2024, 6, 12, 0, 0, 0, 0, time.UTC), end)

	t.Run("midnight stays on its own day", func(t *testing.T) {
		start, end := DayRange(time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC))
		assert.Equal(t, time.Date(2024, 6, 11, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, 24*time.Hour, end.Sub(start))
	})
}
