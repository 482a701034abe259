package timetext

import "time"

// FormatClockTime renders t as a short wall-clock reading, e.g. "3:04 PM".
func FormatClockTime(t time.Time) string {
	return t.Format("3:04 PM")
}

// FormatDateTime renders t with both date and time, e.g. "Jan 2, 2006, 3:04 PM".
func FormatDateTime(t time.Time) string {
	return t.Format("Jan 2, 2006, 3:04 PM")
}
