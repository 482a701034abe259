package timetext_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/pulsedeck/pulsedeck-go/timetext"
)

func TestRelative(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	type testCase struct {
		name    string
		elapsed time.Duration
		want    string
	}
	tests := []testCase{
		{name: "zero elapsed", elapsed: 0, want: "Just now"},
		{name: "five seconds", elapsed: 5 * time.Second, want: "Just now"},
		{name: "just under ten seconds", elapsed: 10*time.Second - time.Nanosecond, want: "Just now"},
		{name: "exactly ten seconds", elapsed: 10 * time.Second, want: "10 seconds ago"},
		{name: "thirty seconds", elapsed: 30 * time.Second, want: "30 seconds ago"},
		{name: "just under a minute", elapsed: time.Minute - time.Second, want: "59 seconds ago"},
		{name: "exactly one minute", elapsed: time.Minute, want: "1 minutes ago"},
		{name: "three minutes", elapsed: 180 * time.Second, want: "3 minutes ago"},
		{name: "truncates partial minutes", elapsed: 3*time.Minute + 59*time.Second, want: "3 minutes ago"},
		{name: "exactly one hour", elapsed: time.Hour, want: "1 hours ago"},
		{name: "two hours", elapsed: 7200 * time.Second, want: "2 hours ago"},
		{name: "truncates partial hours", elapsed: 2*time.Hour + 45*time.Minute, want: "2 hours ago"},
		{name: "just under a day", elapsed: 24*time.Hour - time.Minute, want: "23 hours ago"},
		{name: "exactly one day", elapsed: 24 * time.Hour, want: "1 days ago"},
		{name: "two days", elapsed: 172800 * time.Second, want: "2 days ago"},
		{name: "a week", elapsed: 7 * 24 * time.Hour, want: "7 days ago"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, timetext.Relative(now.Add(-tt.elapsed), now), "elapsed %v", tt.elapsed)
		})
	}
}

// Future instants clamp to the freshest phrase instead of going negative.
func TestRelativeFutureInstant(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "Just now", timetext.Relative(now.Add(5*time.Second), now))
	assert.Equal(t, "Just now", timetext.Relative(now.Add(48*time.Hour), now))
}

func TestAgo(t *testing.T) {
	assert.Equal(t, "Just now", timetext.Ago(time.Now()))
	assert.Equal(t, "2 hours ago", timetext.Ago(time.Now().Add(-2*time.Hour)))
}
