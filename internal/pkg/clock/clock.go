package clock

import "time"

// Clock abstracts time.Now so token expiry and other time-stamped
// behavior can be pinned in tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func NewRealClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a frozen clock for tests.
type Fixed struct {
	current time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

func (f *Fixed) Now() time.Time {
	return f.current
}

func (f *Fixed) Advance(d time.Duration) {
	f.current = f.current.Add(d)
}
