package timetext

import (
	"fmt"
	"time"
)

// Relative renders how long ago t happened, relative to now.
//
// Instants less than ten seconds old read as "Just now"; older instants fall
// through seconds, minutes, hours and days tiers, truncating toward zero.
// Instants in the future also read as "Just now".
func Relative(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < 10*time.Second:
		return "Just now"
	case elapsed < time.Minute:
		return fmt.Sprintf("%d seconds ago", int(elapsed.Seconds()))
	case elapsed < time.Hour:
		return fmt.Sprintf("%d minutes ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%d hours ago", int(elapsed.Hours()))
	default:
		return fmt.Sprintf("%d days ago", int(elapsed.Hours()/24))
	}
}

// Ago is Relative measured against the system clock.
func Ago(t time.Time) string {
	return Relative(t, time.Now())
}
