package engine

import (
	"sync/atomic"
	"time"
)

// MockTimeProvider is a wall clock that moves only when a test advances it
// Game time is independent: it advances by the dt passed to each tick
type MockTimeProvider struct {
	epoch time.Time
	nanos atomic.Int64
}

func NewMockTimeProvider(start time.Time) *MockTimeProvider {
	return &MockTimeProvider{epoch: start}
}

func (m *MockTimeProvider) Now() time.Time {
	return m.epoch.Add(time.Duration(m.nanos.Load()))
}

// Advance moves the clock forward by d, safe from any goroutine
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.nanos.Add(int64(d))
}
