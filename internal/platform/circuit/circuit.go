// Package circuit implements a consecutive-failure circuit breaker for the
// downstream data API. While the circuit is open, calls fail fast and the
// record is retried later instead of hammering a struggling service.
package circuit

import "sync"

type state int

const (
	closed state = iota
	open
)

// Breaker opens after a run of consecutive failures and closes again after a
// run of consecutive successes.
type Breaker struct {
	mu               sync.Mutex
	state            state
	failureCount     int
	successCount     int
	failureThreshold int
	successThreshold int
}

// New returns a breaker with the given thresholds. Non-positive thresholds
// fall back to the defaults of five failures and three successes.
func New(failureThreshold, successThreshold int) *Breaker {
	if failureThreshold <= 0 {
		failureThreshold = 5
	}
	if successThreshold <= 0 {
		successThreshold = 3
	}
	return &Breaker{
		failureThreshold: failureThreshold,
		successThreshold: successThreshold,
	}
}

// IsOpen reports whether calls should fail fast.
func (b *Breaker) IsOpen() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.state == open
}

// RecordFailure counts a failed call and reports whether the circuit is open
// afterwards.
func (b *Breaker) RecordFailure() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failureCount++
	b.successCount = 0
	if b.state == open {
		return true
	}
	if b.failureCount >= b.failureThreshold {
		b.state = open
		return true
	}
	return false
}

// RecordSuccess counts a successful call and reports whether the circuit is
// closed afterwards.
func (b *Breaker) RecordSuccess() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.state == open {
		b.successCount++
		if b.successCount >= b.successThreshold {
			b.state = closed
			b.failureCount = 0
			b.successCount = 0
			return true
		}
		return false
	}
	b.failureCount = 0
	return true
}
