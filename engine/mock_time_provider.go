package engine

import (
	"sync"
	"time"
)

// MockTimeProvider provides a controllable time source for testing
// Sleep advances the clock by the requested duration plus a fixed overshoot
type MockTimeProvider struct {
	mu          sync.RWMutex
	currentTime time.Time
	overshoot   time.Duration
	slept       []time.Duration
}

// NewMockTimeProvider creates a new mock time provider with the given start time
func NewMockTimeProvider(startTime time.Time) *MockTimeProvider {
	return &MockTimeProvider{
		currentTime: startTime,
	}
}

// Now returns the current mocked time
func (m *MockTimeProvider) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.currentTime
}

// Advance advances the current time by the given duration
func (m *MockTimeProvider) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.currentTime = m.currentTime.Add(d)
}

// SetOvershoot makes every Sleep last d longer than requested
func (m *MockTimeProvider) SetOvershoot(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.overshoot = d
}

// Sleep records the request and advances the clock
func (m *MockTimeProvider) Sleep(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slept = append(m.slept, d)
	m.currentTime = m.currentTime.Add(d + m.overshoot)
}

// Slept returns every recorded sleep request
func (m *MockTimeProvider) Slept() []time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]time.Duration, len(m.slept))
	copy(out, m.slept)
	return out
}
