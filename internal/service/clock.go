package service

import "time"

// today returns the calendar date of now as midnight UTC.
func today(now time.Time) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// weekEnd returns the Monday after the ISO week containing day.
func weekEnd(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, 7-offset)
}
