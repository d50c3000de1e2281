package mocks

import "time"

// FakeClock returns a fixed instant until advanced.
type FakeClock struct {
	Time time.Time
}

func NewFakeClock(t time.Time) *FakeClock { return &FakeClock{Time: t} }

func (c *FakeClock) Now() time.Time { return c.Time }

func (c *FakeClock) Advance(d time.Duration) { c.Time = c.Time.Add(d) }
