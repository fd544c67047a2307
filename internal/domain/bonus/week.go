package bonus

import "time"

// The bonus program divides a month into four payout weeks:
// days 1-7 are week 1, 8-15 week 2, 16-23 week 3, and week 4 absorbs
// everything from day 24 to the end of the month. This mapping must stay in
// lockstep with WeekBounds; the aggregator queries exactly these ranges.

const weeksPerMonth = 4

// WeekNumberForDay maps a day of the month to its payout week number.
func WeekNumberForDay(day int) int {
	switch {
	case day <= 7:
		return 1
	case day <= 15:
		return 2
	case day <= 23:
		return 3
	default:
		return 4
	}
}

// WeekBounds returns the inclusive date range of a payout week, normalized to
// midnight UTC.
func WeekBounds(year, month, week int) (start, end time.Time, err error) {
	if month < 1 || month > 12 || year < 1 {
		return time.Time{}, time.Time{}, ErrInvalidPeriod
	}
	if week < 1 || week > weeksPerMonth {
		return time.Time{}, time.Time{}, ErrInvalidWeekNumber
	}

	firstDays := [weeksPerMonth]int{1, 8, 16, 24}
	lastDay := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()

	startDay := firstDays[week-1]
	endDay := lastDay
	if week < weeksPerMonth {
		endDay = firstDays[week] - 1
	}

	start = time.Date(year, time.Month(month), startDay, 0, 0, 0, 0, time.UTC)
	end = time.Date(year, time.Month(month), endDay, 0, 0, 0, 0, time.UTC)
	return start, end, nil
}

// WeekOf resolves the payout week containing t. The caller injects the time;
// nothing in this package reads a clock.
func WeekOf(t time.Time) (year, month, week int, start, end time.Time) {
	year, m, day := t.Date()
	month = int(m)
	week = WeekNumberForDay(day)
	start, end, _ = WeekBounds(year, month, week)
	return year, month, week, start, end
}
