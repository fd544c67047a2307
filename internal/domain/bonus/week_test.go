package bonus

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeekNumberForDay(t *testing.T) {
	tests := []struct {
		day  int
		want int
	}{
		{1, 1}, {7, 1},
		{8, 2}, {15, 2},
		{16, 3}, {23, 3},
		{24, 4}, {28, 4}, {31, 4},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WeekNumberForDay(tt.day), "day %d", tt.day)
	}
}

func TestWeekBounds(t *testing.T) {
	t.Run("first three weeks of january", func(t *testing.T) {
		start, end, err := WeekBounds(2025, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
		assert.Equal(t, time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC), end)

		start, end, err = WeekBounds(2025, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 8, start.Day())
		assert.Equal(t, 15, end.Day())

		start, end, err = WeekBounds(2025, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, 16, start.Day())
		assert.Equal(t, 23, end.Day())
	})

	t.Run("final week absorbs the rest of the month", func(t *testing.T) {
		_, end, err := WeekBounds(2025, 1, 4)
		require.NoError(t, err)
		assert.Equal(t, 31, end.Day())

		_, end, err = WeekBounds(2025, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, 28, end.Day())

		_, end, err = WeekBounds(2024, 2, 4)
		require.NoError(t, err)
		assert.Equal(t, 29, end.Day())

		_, end, err = WeekBounds(2025, 4, 4)
		require.NoError(t, err)
		assert.Equal(t, 30, end.Day())
	})

	t.Run("weeks tile the month without gaps or overlap", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			var prevEnd time.Time
			for week := 1; week <= 4; week++ {
				start, end, err := WeekBounds(2025, month, week)
				require.NoError(t, err)
				require.False(t, end.Before(start))
				if week > 1 {
					require.Equal(t, prevEnd.AddDate(0, 0, 1), start, "month %d week %d", month, week)
				}
				prevEnd = end
			}
		}
	})

	t.Run("invalid input", func(t *testing.T) {
		_, _, err := WeekBounds(2025, 1, 0)
		assert.ErrorIs(t, err, ErrInvalidWeekNumber)

		_, _, err = WeekBounds(2025, 1, 5)
		assert.ErrorIs(t, err, ErrInvalidWeekNumber)

		_, _, err = WeekBounds(2025, 13, 1)
		assert.ErrorIs(t, err, ErrInvalidPeriod)

		_, _, err = WeekBounds(2025, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestWeekOf(t *testing.T) {
	year, month, week, start, end := WeekOf(time.Date(2025, 3, 19, 14, 30, 0, 0, time.UTC))
	assert.Equal(t, 2025, year)
	assert.Equal(t, 3, month)
	assert.Equal(t, 3, week)
	assert.Equal(t, 16, start.Day())
	assert.Equal(t, 23, end.Day())

	// A day in the absorbed tail of the month
	_, _, week, start, end = WeekOf(time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 4, week)
	assert.Equal(t, 24, start.Day())
	assert.Equal(t, 31, end.Day())
}
