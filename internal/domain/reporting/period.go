package reporting

import "time"

// PeriodStart maps a calendar date to the first day of its enclosing
// period. It works on the date components only, so the caller's time zone
// or time of day never shifts a sample across a bucket boundary. Weeks are
// ISO weeks starting on Monday; quarters start in January, April, July and
// October.
func PeriodStart(d time.Time, period PeriodType) time.Time {
	year, month, day := d.Date()
	date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	switch period {
	case PeriodDay:
		return date
	case PeriodWeek:
		offset := (int(date.Weekday()) + 6) % 7
		return date.AddDate(0, 0, -offset)
	case PeriodMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	case PeriodQuarter:
		quarterMonth := time.Month(((int(month)-1)/3)*3 + 1)
		return time.Date(year, quarterMonth, 1, 0, 0, 0, 0, time.UTC)
	case PeriodYear:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	return date
}
