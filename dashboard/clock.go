package dashboard

import "time"

// Clock supplies the current instant. Injecting one pins the builder's output
// to a fixed moment in tests and previews.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
