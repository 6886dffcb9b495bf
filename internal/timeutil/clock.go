package timeutil

import (
	"math"
	"time"
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

// ZoneClock reports the time of Base in a fixed display timezone
type ZoneClock struct {
	Base     Clock
	Location *time.Location
}

// NewZoneClock returns a clock shifted to a fixed UTC offset in hours.
// A nil offset keeps the system timezone.
func NewZoneClock(base Clock, name string, offsetHours *float64) Clock {
	if offsetHours == nil {
		return base
	}
	if name == "" {
		name = "UTC"
	}
	seconds := int(math.Round(*offsetHours * 3600))
	return ZoneClock{Base: base, Location: time.FixedZone(name, seconds)}
}

func (z ZoneClock) Now() time.Time {
	return z.Base.Now().In(z.Location)
}

type MockClock struct {
	FixedNow time.Time
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}
