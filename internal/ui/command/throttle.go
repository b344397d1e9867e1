package command

import (
	"sync"
	"time"
)

// throttle spaces successive launches by at least interval.
type throttle struct {
	interval time.Duration

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{}
	}
	return &throttle{interval: interval}
}

// wait blocks until the next slot and reports how long it waited.
func (t *throttle) wait() time.Duration {
	if t == nil || t.interval <= 0 {
		return 0
	}
	var waited time.Duration
	for {
		t.mu.Lock()
		delay := time.Until(t.next)
		if delay <= 0 {
			t.next = time.Now().Add(t.interval)
			t.mu.Unlock()
			return waited
		}
		t.mu.Unlock()
		if delay > t.interval {
			delay = t.interval
		}
		time.Sleep(delay)
		waited += delay
	}
}
