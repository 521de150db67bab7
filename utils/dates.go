package utils

import "time"

const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DayStart truncates t to local midnight; date columns are compared
// against this value everywhere.
func DayStart(t time.Time) time.Time {
	tt := t.In(time.Local)
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.Local)
}

func Today() time.Time {
	return DayStart(time.Now())
}

func DaysFromToday(days int) time.Time {
	return Today().AddDate(0, 0, days)
}
