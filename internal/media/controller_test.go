package media

import (
	"errors"
	"testing"

	"github.com/atomicstack/clickwheel/internal/catalog"
)

type fakeClock struct {
	generation uint64
	running    bool
	starts     int
	stops      int
}

func (c *fakeClock) Start() uint64 {
	c.generation++
	c.running = true
	c.starts++
	return c.generation
}

func (c *fakeClock) Stop() {
	c.running = false
	c.stops++
}

type recordingBackend struct {
	intents []string
	err     error
}

func (b *recordingBackend) Load(track catalog.Track) error {
	b.intents = append(b.intents, "load:"+track.Ref())
	return b.err
}

func (b *recordingBackend) Play() error {
	b.intents = append(b.intents, "play")
	return b.err
}

func (b *recordingBackend) Pause() error {
	b.intents = append(b.intents, "pause")
	return b.err
}

func testCatalog(n int) *catalog.Catalog {
	cat := &catalog.Catalog{}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		cat.Tracks = append(cat.Tracks, catalog.Track{ID: id, Title: "Song " + id, Artist: "Band"})
	}
	return cat
}

func newTestController(n int, opts ...Option) (*Controller, *fakeClock, *recordingBackend) {
	clock := &fakeClock{}
	backend := &recordingBackend{}
	opts = append([]Option{WithClock(clock), WithBackend(backend)}, opts...)
	return NewController(testCatalog(n), opts...), clock, backend
}

func TestInitialStateHasNoTrack(t *testing.T) {
	c, clock, _ := newTestController(3)
	s := c.State()
	if s.Track != nil || s.Playing || s.TrackIndex != -1 || s.Duration != DefaultDurationSeconds {
		t.Fatalf("unexpected initial state %#v", s)
	}
	c.TogglePlayPause()
	c.ToggleFullView()
	if c.State().Playing || clock.starts != 0 {
		t.Fatalf("expected toggles without a track to do nothing")
	}
}

func TestLoadAndPlayStartsClock(t *testing.T) {
	c, clock, backend := newTestController(3)
	track, _ := c.catalog.At(1)
	c.LoadAndPlay(track)

	s := c.State()
	if s.Track == nil || s.Track.ID != "b" || !s.Playing || s.TrackIndex != 1 || s.Elapsed != 0 {
		t.Fatalf("unexpected state after load %#v", s)
	}
	if !clock.running || !c.Running() || c.Generation() != 1 {
		t.Fatalf("expected clock generation 1 running")
	}
	if len(backend.intents) != 2 || backend.intents[0] != "load:b" || backend.intents[1] != "play" {
		t.Fatalf("unexpected intents %v", backend.intents)
	}
}

func TestLoadAndPlaySameTrackIsIdempotent(t *testing.T) {
	c, clock, backend := newTestController(3)
	track, _ := c.catalog.At(0)
	c.LoadAndPlay(track)
	c.Tick()
	c.Tick()
	c.TogglePlayPause()
	before := c.State()

	c.LoadAndPlay(track)
	after := c.State()
	if after.Elapsed != before.Elapsed || after.Playing != before.Playing {
		t.Fatalf("expected reselect to keep state, before %#v after %#v", before, after)
	}
	if clock.starts != 1 {
		t.Fatalf("expected no clock restart, got %d starts", clock.starts)
	}
	if len(backend.intents) != 3 {
		t.Fatalf("expected no new intents, got %v", backend.intents)
	}
}

func TestTogglePlayPauseControlsClock(t *testing.T) {
	c, clock, backend := newTestController(2)
	track, _ := c.catalog.At(0)
	c.LoadAndPlay(track)

	c.TogglePlayPause()
	if c.State().Playing || clock.running || c.Running() {
		t.Fatalf("expected paused with clock stopped")
	}
	c.TogglePlayPause()
	if !c.State().Playing || !clock.running || c.Generation() != 2 {
		t.Fatalf("expected playing with a new clock generation, got %d", c.Generation())
	}
	if backend.intents[len(backend.intents)-2] != "pause" || backend.intents[len(backend.intents)-1] != "play" {
		t.Fatalf("unexpected intents %v", backend.intents)
	}
}

func TestNextWrapsFromLastTrack(t *testing.T) {
	c, _, _ := newTestController(4)
	last, _ := c.catalog.At(3)
	c.LoadAndPlay(last)
	c.Next()
	s := c.State()
	if s.TrackIndex != 0 || s.Track.ID != "a" {
		t.Fatalf("expected wrap to first track, got %#v", s)
	}
	c.Previous()
	if s := c.State(); s.TrackIndex != 3 || s.Track.ID != "d" {
		t.Fatalf("expected wrap back to last track, got %#v", s)
	}
}

func TestNextWithNothingLoaded(t *testing.T) {
	c, _, _ := newTestController(3)
	c.Next()
	if s := c.State(); s.TrackIndex != 0 || !s.Playing {
		t.Fatalf("expected first track playing, got %#v", s)
	}

	c2, _, _ := newTestController(3)
	c2.Previous()
	if s := c2.State(); s.TrackIndex != 2 {
		t.Fatalf("expected last track, got %#v", s)
	}
}

func TestNextOnSingleTrackDoesNotReload(t *testing.T) {
	c, clock, backend := newTestController(1)
	track, _ := c.catalog.At(0)
	c.LoadAndPlay(track)
	c.Tick()
	c.Next()
	if c.State().Elapsed != 1 || clock.starts != 1 || len(backend.intents) != 2 {
		t.Fatalf("expected next on a single track to be a no-op")
	}
}

func TestTickAutoAdvances(t *testing.T) {
	c, _, _ := newTestController(3, WithDuration(3))
	track, _ := c.catalog.At(2)
	c.LoadAndPlay(track)
	c.Tick()
	c.Tick()
	if c.State().Elapsed != 2 {
		t.Fatalf("expected elapsed 2, got %d", c.State().Elapsed)
	}
	c.Tick()
	s := c.State()
	if s.TrackIndex != 0 || s.Elapsed != 0 || !s.Playing {
		t.Fatalf("expected auto-advance to track 0, got %#v", s)
	}
}

func TestFullViewPausesProgress(t *testing.T) {
	c, clock, _ := newTestController(2)
	track, _ := c.catalog.At(0)
	c.LoadAndPlay(track)
	c.ToggleFullView()
	if clock.running || !c.State().FullView {
		t.Fatalf("expected clock stopped in full view")
	}
	c.Tick()
	if c.State().Elapsed != 0 {
		t.Fatalf("expected no progress in full view")
	}
	c.Next()
	if c.State().FullView || !clock.running {
		t.Fatalf("expected track change to leave full view and restart clock")
	}
}

func TestHandleTickDropsStaleGenerations(t *testing.T) {
	c, _, _ := newTestController(3)
	first, _ := c.catalog.At(0)
	c.LoadAndPlay(first)
	stale := c.Generation()
	c.Next()
	if c.Generation() == stale {
		t.Fatalf("expected track change to restart the clock")
	}
	if c.HandleTick(Tick{Generation: stale}) {
		t.Fatalf("expected stale tick to be dropped")
	}
	if !c.HandleTick(Tick{Generation: c.Generation()}) {
		t.Fatalf("expected live tick to apply")
	}
	if c.State().Elapsed != 1 {
		t.Fatalf("expected elapsed 1, got %d", c.State().Elapsed)
	}
	c.TogglePlayPause()
	if c.HandleTick(Tick{Generation: c.Generation()}) {
		t.Fatalf("expected ticks ignored while paused")
	}
}

func TestBackendErrorsDoNotChangeState(t *testing.T) {
	c, _, backend := newTestController(2)
	backend.err = errors.New("offline")
	track, _ := c.catalog.At(0)
	c.LoadAndPlay(track)
	if !c.State().Playing {
		t.Fatalf("expected logical state to advance despite backend errors")
	}
}

func TestProgress(t *testing.T) {
	cases := []struct {
		s    State
		want float64
	}{
		{State{Elapsed: 90, Duration: 180}, 0.5},
		{State{Elapsed: 200, Duration: 180}, 1},
		{State{Elapsed: 5}, 0},
	}
	for _, tc := range cases {
		if got := tc.s.Progress(); got != tc.want {
			t.Fatalf("Progress(%#v) = %v, want %v", tc.s, got, tc.want)
		}
	}
}
