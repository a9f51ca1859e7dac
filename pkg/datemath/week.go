package datemath

import "time"

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Week returns the Monday and Sunday (both at midnight) of the week containing ref.
// Weeks start on Monday.
func Week(ref time.Time) (monday, sunday time.Time) {
	offset := (int(ref.Weekday()) + 6) % 7
	monday = StartOfDay(ref).AddDate(0, 0, -offset)
	return monday, monday.AddDate(0, 0, 6)
}

// NextWeek returns the calendar week after the one containing ref,
// no matter how many days remain in the current week.
func NextWeek(ref time.Time) (monday, sunday time.Time) {
	thisMonday, _ := Week(ref)
	monday = thisMonday.AddDate(0, 0, 7)
	return monday, monday.AddDate(0, 0, 6)
}

// DayRange expands a YYYY-MM-DD date into its first and last canonical second.
func DayRange(date string) (start, end string) {
	return date + startOfDayClock, date + endOfDayClock
}
