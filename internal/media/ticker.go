package media

import (
	"context"
	"sync"
	"time"
)

// TickInterval is the period of the playback progress timer.
const TickInterval = time.Second

// Tick is one firing of the playback timer. Generation identifies the Start
// call that produced it.
type Tick struct {
	Generation uint64
	At         time.Time
}

// Clock drives Controller progress. Start begins a new timer generation and
// returns its id; Stop tears the current one down.
type Clock interface {
	Start() uint64
	Stop()
}

// Ticker is the real Clock: one goroutine per generation publishing Ticks on
// a shared channel until stopped.
type Ticker struct {
	interval time.Duration

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
	closed     bool

	ticks chan Tick
	wg    sync.WaitGroup
}

// NewTicker creates a stopped ticker firing every interval.
func NewTicker(interval time.Duration) *Ticker {
	if interval <= 0 {
		interval = TickInterval
	}
	return &Ticker{
		interval: interval,
		ticks:    make(chan Tick, 4),
	}
}

// Ticks returns the channel ticks are published on. It is closed by Close.
func (t *Ticker) Ticks() <-chan Tick {
	return t.ticks
}

// Start cancels any running generation and starts a new one.
func (t *Ticker) Start() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.generation++
	if t.closed {
		return t.generation
	}
	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.wg.Add(1)
	go t.run(ctx, t.generation)
	return t.generation
}

// Stop cancels the running generation, if any.
func (t *Ticker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
}

// Close stops the ticker, waits for its goroutine and closes the channel.
func (t *Ticker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	if t.cancel != nil {
		t.cancel()
		t.cancel = nil
	}
	t.mu.Unlock()
	t.wg.Wait()
	close(t.ticks)
}

func (t *Ticker) run(ctx context.Context, generation uint64) {
	defer t.wg.Done()

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			select {
			case <-ctx.Done():
				return
			case t.ticks <- Tick{Generation: generation, At: now}:
			}
		}
	}
}
