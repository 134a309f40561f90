package limiter

import (
	"sync"
	"time"
)

// DurationLimiter allows an operation to run only a set number of times
// within a rolling window, blocking callers once the window is exhausted.
type DurationLimiter struct {
	mu        sync.Mutex
	duration  time.Duration
	resetsAt  time.Time
	limit     int32
	available int32
}

// NewDurationLimiter creates a DurationLimiter. This is useful for allowing
// a specific operation to run only X amount of times in a duration of Y.
func NewDurationLimiter(limit int32, duration time.Duration) *DurationLimiter {
	return &DurationLimiter{
		duration: duration,
		limit:    limit,
	}
}

// Lock waits until there is an available slot in the limiter and consumes it.
func (l *DurationLimiter) Lock() {
	for {
		l.mu.Lock()

		now := time.Now()
		if !now.Before(l.resetsAt) {
			l.resetsAt = now.Add(l.duration)
			l.available = l.limit
		}

		if l.available > 0 {
			l.available--
			l.mu.Unlock()

			return
		}

		wait := l.resetsAt.Sub(now)
		l.mu.Unlock()

		time.Sleep(wait)
	}
}

// Available returns the slots left in the current window.
func (l *DurationLimiter) Available() int32 {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !time.Now().Before(l.resetsAt) {
		return l.limit
	}

	return l.available
}

// Reset starts a new window without freeing any slots.
func (l *DurationLimiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.resetsAt = time.Now().Add(l.duration)
}
