package backend

import (
	"sync"
	"time"
)

// Throttle ensures a minimum interval between successive operations. The
// owning loop uses it to pace frames.
type Throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
	now  func() time.Time
	// sleep is swapped out by tests.
	sleep func(time.Duration)
}

// NewThrottle returns a throttle that spaces Wait returns by interval. A
// non-positive interval never waits.
func NewThrottle(interval time.Duration) *Throttle {
	t := &Throttle{now: time.Now, sleep: time.Sleep}
	if interval > 0 {
		t.interval = interval
	}
	return t
}

// Interval reports the configured spacing.
func (t *Throttle) Interval() time.Duration {
	if t == nil {
		return 0
	}
	return t.interval
}

// Wait blocks until at least one interval has passed since the previous
// Wait returned. The first call returns immediately.
func (t *Throttle) Wait() {
	if t == nil || t.interval <= 0 {
		return
	}
	for {
		t.mu.Lock()
		wait := t.next.Sub(t.now())
		if wait <= 0 {
			t.next = t.now().Add(t.interval)
			t.mu.Unlock()
			return
		}
		t.mu.Unlock()
		if wait > t.interval {
			wait = t.interval
		}
		t.sleep(wait)
	}
}
