package backend

import (
	"testing"
	"time"
)

func TestThrottleSpacesCalls(t *testing.T) {
	clock := time.Unix(0, 0)
	var slept []time.Duration
	th := NewThrottle(10 * time.Millisecond)
	th.now = func() time.Time { return clock }
	th.sleep = func(d time.Duration) {
		slept = append(slept, d)
		clock = clock.Add(d)
	}

	th.Wait()
	if len(slept) != 0 {
		t.Fatalf("expected first wait to return immediately, slept %v", slept)
	}
	clock = clock.Add(4 * time.Millisecond)
	th.Wait()
	if len(slept) != 1 || slept[0] != 6*time.Millisecond {
		t.Fatalf("expected a single 6ms sleep, got %v", slept)
	}
}

func TestThrottleDisabled(t *testing.T) {
	th := NewThrottle(0)
	th.sleep = func(time.Duration) { t.Fatalf("disabled throttle must not sleep") }
	th.Wait()
	th.Wait()
	if th.Interval() != 0 {
		t.Fatalf("expected zero interval, got %v", th.Interval())
	}
	var nilThrottle *Throttle
	nilThrottle.Wait()
}
