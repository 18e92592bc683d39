package llm

import (
	"sync"
	"time"
)

// availabilityState tracks whether the model endpoint is usable.
type availabilityState int

const (
	// availabilityUnknown means no probe has run yet.
	availabilityUnknown availabilityState = iota
	// availabilityUp means the endpoint answered the probe.
	availabilityUp
	// availabilityDown means the probe or a later request failed.
	availabilityDown
)

// AvailabilityGate memoizes whether the model endpoint is reachable so the
// provider does not pay a network round trip on every request once the
// endpoint is known to be down. A failed request invalidates the gate;
// after RetryAfter the next caller probes again.
type AvailabilityGate struct {
	mu          sync.RWMutex
	state       availabilityState
	lastFailure time.Time
	retryAfter  time.Duration
}

// DefaultRetryAfter is how long the gate stays down before re-probing.
const DefaultRetryAfter = 60 * time.Second

// NewAvailabilityGate creates a gate in the unknown state. retryAfter <= 0
// falls back to DefaultRetryAfter.
func NewAvailabilityGate(retryAfter time.Duration) *AvailabilityGate {
	if retryAfter <= 0 {
		retryAfter = DefaultRetryAfter
	}
	return &AvailabilityGate{retryAfter: retryAfter}
}

// ShouldProbe reports whether the caller needs to run an availability
// probe: true in the unknown state, and again once retryAfter has elapsed
// since the last failure.
func (g *AvailabilityGate) ShouldProbe() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	switch g.state {
	case availabilityUnknown:
		return true
	case availabilityDown:
		return time.Since(g.lastFailure) > g.retryAfter
	default:
		return false
	}
}

// IsAvailable reports the memoized availability. Unknown counts as
// unavailable until a probe marks the gate up.
func (g *AvailabilityGate) IsAvailable() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state == availabilityUp
}

// MarkAvailable records a successful probe or request.
func (g *AvailabilityGate) MarkAvailable() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = availabilityUp
}

// Invalidate records a failure and marks the endpoint down. Callers fall
// back to templated output until the gate re-probes.
func (g *AvailabilityGate) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = availabilityDown
	g.lastFailure = time.Now()
}

// Reset returns the gate to the unknown state. Intended for tests and
// manual intervention.
func (g *AvailabilityGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = availabilityUnknown
	g.lastFailure = time.Time{}
}
