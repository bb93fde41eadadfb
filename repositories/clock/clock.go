// Package clock abstracts time.Now so that time-sensitive logic, like the
// activity recency factor in matching, can run against a frozen instant in
// tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

func New() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now()
}

// Mock always reports the instant it was created with.
type Mock struct {
	now time.Time
}

func NewMock(now time.Time) *Mock {
	return &Mock{now: now}
}

func (m *Mock) Now() time.Time {
	return m.now
}
