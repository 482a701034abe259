package timetext

import (
	"fmt"
	"time"
)

// FormatDuration renders d in the coarsest unit pair that fits its magnitude.
//
// Sub-second durations read as integer milliseconds, durations under a minute
// as seconds with two decimals, under an hour as minutes and seconds, and
// anything longer as hours and minutes. Negative durations read as "0ms".
func FormatDuration(d time.Duration) string {
	switch {
	case d < 0:
		return "0ms"
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d < time.Hour:
		m := int(d.Minutes())
		return fmt.Sprintf("%dm %ds", m, int(d.Seconds())-m*60)
	default:
		h := int(d.Hours())
		return fmt.Sprintf("%dh %dm", h, int(d.Minutes())-h*60)
	}
}

// FormatMillis renders d as truncated integer milliseconds regardless of
// magnitude. Negative durations read as "0ms".
func FormatMillis(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	return fmt.Sprintf("%dms", d.Milliseconds())
}

// FormatUptime renders an uptime span in day, hour and minute tiers.
// Non-positive spans read as "Unknown", meaning no uptime data exists,
// as opposed to an uptime of zero.
func FormatUptime(d time.Duration) string {
	switch {
	case d <= 0:
		return "Unknown"
	case d >= 24*time.Hour:
		days := int(d.Hours()) / 24
		return fmt.Sprintf("%dd %dh", days, int(d.Hours())%24)
	case d >= time.Hour:
		h := int(d.Hours())
		return fmt.Sprintf("%dh %dm", h, int(d.Minutes())-h*60)
	default:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	}
}
