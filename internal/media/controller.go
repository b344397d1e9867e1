// Package media tracks the logical playback state of the wheel's player:
// the loaded track, play/pause, simulated progress and auto-advance.
package media

import (
	"fmt"

	"github.com/atomicstack/clickwheel/internal/catalog"
	"github.com/atomicstack/clickwheel/internal/logging"
	"github.com/atomicstack/clickwheel/internal/logging/events"
)

// DefaultDurationSeconds is the estimated length assigned to every track.
const DefaultDurationSeconds = 180

// State is a snapshot of the player.
type State struct {
	Track      *catalog.Track
	Playing    bool
	TrackIndex int
	Elapsed    int
	Duration   int
	FullView   bool
}

// Progress is elapsed over duration in [0, 1].
func (s State) Progress() float64 {
	if s.Duration <= 0 {
		return 0
	}
	p := float64(s.Elapsed) / float64(s.Duration)
	if p > 1 {
		return 1
	}
	return p
}

// Controller owns the media state. Like the navigation machine it runs on the
// host event loop and is not safe for concurrent use.
type Controller struct {
	catalog  *catalog.Catalog
	backend  Backend
	clock    Clock
	duration int

	state      State
	running    bool
	generation uint64
}

// Option customises a Controller.
type Option func(*Controller)

// WithBackend sets the intent receiver.
func WithBackend(b Backend) Option {
	return func(c *Controller) { c.backend = b }
}

// WithClock sets the progress timer.
func WithClock(clock Clock) Option {
	return func(c *Controller) { c.clock = clock }
}

// WithDuration overrides the estimated track length in seconds.
func WithDuration(seconds int) Option {
	return func(c *Controller) {
		if seconds > 0 {
			c.duration = seconds
		}
	}
}

// NewController returns a controller with nothing loaded.
func NewController(cat *catalog.Catalog, opts ...Option) *Controller {
	c := &Controller{
		catalog:  cat,
		duration: DefaultDurationSeconds,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	if c.backend == nil {
		c.backend = &TraceBackend{}
	}
	c.state = State{TrackIndex: -1, Duration: c.duration}
	return c
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	s := c.state
	if s.Track != nil {
		track := *s.Track
		s.Track = &track
	}
	return s
}

// Current returns the loaded track.
func (c *Controller) Current() (catalog.Track, bool) {
	if c.state.Track == nil {
		return catalog.Track{}, false
	}
	return *c.state.Track, true
}

// Running reports whether the progress timer is live.
func (c *Controller) Running() bool {
	return c.running
}

// Generation is the id of the live timer generation.
func (c *Controller) Generation() uint64 {
	return c.generation
}

// LoadAndPlay switches to track and starts playing it. Reselecting the loaded
// track changes nothing.
func (c *Controller) LoadAndPlay(track catalog.Track) {
	if c.state.Track != nil && c.state.Track.ID == track.ID {
		events.Media.Reselect(track.ID)
		return
	}
	c.commit(c.catalog.IndexOf(track.ID), track)
}

func (c *Controller) commit(index int, track catalog.Track) {
	loaded := track
	c.state.Track = &loaded
	c.state.TrackIndex = index
	c.state.Elapsed = 0
	c.state.Duration = c.duration
	c.state.Playing = true
	c.state.FullView = false
	events.Media.Load(track.ID, index)

	c.intent("load", func() error { return c.backend.Load(track) })
	c.intent("play", c.backend.Play)
	c.restartClock()
}

// TogglePlayPause flips playing. It does nothing with no track loaded.
func (c *Controller) TogglePlayPause() {
	if c.state.Track == nil {
		return
	}
	c.state.Playing = !c.state.Playing
	events.Media.Playing(c.state.Track.ID, c.state.Playing)
	if c.state.Playing {
		c.intent("play", c.backend.Play)
	} else {
		c.intent("pause", c.backend.Pause)
	}
	c.syncClock()
}

// Next advances to the following catalog track, wrapping at the end.
func (c *Controller) Next() {
	c.advance(1)
}

// Previous retreats to the preceding catalog track, wrapping at the start.
func (c *Controller) Previous() {
	c.advance(-1)
}

func (c *Controller) advance(delta int) {
	n := c.catalog.Len()
	if n == 0 {
		return
	}
	var target int
	switch {
	case c.state.Track == nil && delta > 0:
		target = 0
	case c.state.Track == nil:
		target = n - 1
	default:
		target = ((c.state.TrackIndex+delta)%n + n) % n
	}
	track, ok := c.catalog.At(target)
	if !ok {
		return
	}
	from := ""
	if c.state.Track != nil {
		if c.state.Track.ID == track.ID {
			return
		}
		from = c.state.Track.ID
	}
	events.Media.Advance(from, track.ID)
	c.commit(target, track)
}

// ToggleFullView flips the embedded full-media view. Progress pauses while it
// is shown.
func (c *Controller) ToggleFullView() {
	if c.state.Track == nil {
		return
	}
	c.state.FullView = !c.state.FullView
	events.Media.FullView(c.state.FullView)
	c.syncClock()
}

// Tick advances simulated progress by one second, moving to the next track
// once the estimated duration is reached.
func (c *Controller) Tick() {
	if !c.state.Playing || c.state.FullView || c.state.Track == nil {
		return
	}
	c.state.Elapsed++
	if c.state.Elapsed >= c.state.Duration {
		c.Next()
		c.state.Elapsed = 0
	}
}

// HandleTick applies a timer tick if it belongs to the live generation.
func (c *Controller) HandleTick(t Tick) bool {
	if !c.running || t.Generation != c.generation {
		events.Media.StaleTick(t.Generation, c.generation)
		return false
	}
	c.Tick()
	return true
}

// Stop tears down the progress timer.
func (c *Controller) Stop() {
	c.stopClock()
}

func (c *Controller) restartClock() {
	c.stopClock()
	c.syncClock()
}

func (c *Controller) syncClock() {
	want := c.state.Playing && !c.state.FullView && c.state.Track != nil
	switch {
	case want && !c.running:
		if c.clock != nil {
			c.generation = c.clock.Start()
		} else {
			c.generation++
		}
		c.running = true
		events.Media.Timer(true, c.generation)
	case !want && c.running:
		c.stopClock()
	}
}

func (c *Controller) stopClock() {
	if !c.running {
		return
	}
	if c.clock != nil {
		c.clock.Stop()
	}
	c.running = false
	events.Media.Timer(false, c.generation)
}

func (c *Controller) intent(name string, fn func() error) {
	if err := fn(); err != nil {
		logging.Error(fmt.Errorf("media %s: %w", name, err))
	}
}
