package dashboard

import (
	"fmt"
	"time"

	"github.com/pulsedeck/pulsedeck-go/timetext"
)

// AvailabilityCaption renders a [0, 1] share as a percentage, e.g. "99.9%".
func AvailabilityCaption(share float64) string {
	return fmt.Sprintf("%.1f%%", share*100)
}

// LatencyCaption renders a check latency for a service row.
func LatencyCaption(d time.Duration) string {
	return timetext.FormatDuration(d)
}

// UptimeCaption renders an uptime span for a service row.
func UptimeCaption(d time.Duration) string {
	return timetext.FormatUptime(d)
}

// LastCheckedCaption renders when a service was last probed.
func LastCheckedCaption(t, now time.Time) string {
	return timetext.Relative(t, now)
}
