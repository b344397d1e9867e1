// Package gesture turns raw pointer, touch and scroll input on the click wheel
// into discrete step and click commands. Each interaction yields either
// rotation steps or a single click, never both.
package gesture

import (
	"math"
	"time"

	"github.com/atomicstack/clickwheel/internal/geometry"
	"github.com/atomicstack/clickwheel/internal/logging/events"
	"github.com/google/uuid"
)

const (
	DefaultMouseThresholdDeg = 15.0
	DefaultTouchThresholdDeg = 10.0
	DefaultScrollThreshold   = 50.0
	DefaultTouchSuppression  = 500 * time.Millisecond

	thresholdEpsilon = 1e-9
)

// Source identifies the input modality of a gesture.
type Source int

const (
	SourceMouse Source = iota
	SourceTouch
)

func (s Source) String() string {
	if s == SourceTouch {
		return "touch"
	}
	return "mouse"
}

// Config tunes the disambiguator.
type Config struct {
	Center            geometry.Point
	CenterRadius      float64
	MouseThresholdDeg float64
	TouchThresholdDeg float64
	ScrollThreshold   float64
	TouchSuppression  time.Duration
}

// DefaultConfig returns the stock thresholds for a wheel
// centred at center.
func DefaultConfig(center geometry.Point) Config {
	return Config{
		Center:            center,
		CenterRadius:      geometry.DefaultCenterRadius,
		MouseThresholdDeg: DefaultMouseThresholdDeg,
		TouchThresholdDeg: DefaultTouchThresholdDeg,
		ScrollThreshold:   DefaultScrollThreshold,
		TouchSuppression:  DefaultTouchSuppression,
	}
}

func (c Config) withDefaults() Config {
	if c.CenterRadius <= 0 {
		c.CenterRadius = geometry.DefaultCenterRadius
	}
	if c.MouseThresholdDeg <= 0 {
		c.MouseThresholdDeg = DefaultMouseThresholdDeg
	}
	if c.TouchThresholdDeg <= 0 {
		c.TouchThresholdDeg = DefaultTouchThresholdDeg
	}
	if c.ScrollThreshold <= 0 {
		c.ScrollThreshold = DefaultScrollThreshold
	}
	if c.TouchSuppression < 0 {
		c.TouchSuppression = 0
	}
	return c
}

// Option customises a Disambiguator.
type Option func(*Disambiguator)

// WithClock replaces time.Now, mainly for tests of the suppression window.
func WithClock(now func() time.Time) Option {
	return func(d *Disambiguator) {
		if now != nil {
			d.now = now
		}
	}
}

// Disambiguator owns at most one live Accumulator plus the scroll
// accumulator and the touch suppression window.
type Disambiguator struct {
	cfg           Config
	now           func() time.Time
	active        *Accumulator
	scrollDelta   float64
	suppressUntil time.Time
}

// New constructs a Disambiguator.
func New(cfg Config, opts ...Option) *Disambiguator {
	d := &Disambiguator{cfg: cfg.withDefaults(), now: time.Now}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Config returns the effective configuration.
func (d *Disambiguator) Config() Config {
	return d.cfg
}

// Active reports whether a gesture is being tracked.
func (d *Disambiguator) Active() bool {
	return d.active != nil
}

// Threshold returns the angular step threshold in radians for a source.
func (d *Disambiguator) Threshold(src Source) float64 {
	deg := d.cfg.MouseThresholdDeg
	if src == SourceTouch {
		deg = d.cfg.TouchThresholdDeg
	}
	return deg * math.Pi / 180
}

// Begin starts a gesture at p. A mouse press inside the suppression window
// that follows a touch gesture is dropped and reported as false.
func (d *Disambiguator) Begin(src Source, p geometry.Point) bool {
	if src == SourceMouse && d.now().Before(d.suppressUntil) {
		events.Gesture.Suppressed(src.String())
		return false
	}
	if d.active != nil {
		d.Cancel()
	}
	acc := &Accumulator{
		ID:         uuid.NewString(),
		Source:     src,
		Start:      p,
		HasStart:   true,
		CenterOnly: geometry.IsWithinCenterZone(d.cfg.Center, p, d.cfg.CenterRadius),
	}
	if !acc.CenterOnly {
		acc.LastAngle = geometry.AngleRadians(d.cfg.Center, p)
		acc.HasLastAngle = true
	}
	d.active = acc
	events.Gesture.Begin(acc.ID, src.String(), acc.CenterOnly)
	return true
}

// Move feeds a new position into the live gesture and returns any steps that
// crossed the threshold.
func (d *Disambiguator) Move(src Source, p geometry.Point) []Command {
	acc := d.active
	if acc == nil || acc.Source != src || !acc.HasLastAngle {
		return nil
	}
	angle := geometry.AngleRadians(d.cfg.Center, p)
	acc.Accumulated += geometry.NormalizeDelta(angle - acc.LastAngle)
	acc.LastAngle = angle

	threshold := d.Threshold(src)
	var out []Command
	for math.Abs(acc.Accumulated) >= threshold-thresholdEpsilon {
		dir := Forward
		if acc.Accumulated < 0 {
			dir = Backward
		}
		acc.Accumulated -= float64(dir) * threshold
		acc.Dragged = true
		out = append(out, Step{Direction: dir})
		events.Gesture.Step(acc.ID, dir.String())
	}
	return out
}

// End finishes the live gesture. A gesture that never crossed the threshold
// resolves to a click on the area under its start position.
func (d *Disambiguator) End(src Source) []Command {
	acc := d.active
	if acc == nil || acc.Source != src {
		return nil
	}
	d.active = nil
	if src == SourceTouch {
		d.suppressUntil = d.now().Add(d.cfg.TouchSuppression)
	}
	if acc.Dragged || !acc.HasStart {
		events.Gesture.End(acc.ID, "drag")
		return nil
	}
	area := AreaCenter
	if !acc.CenterOnly {
		deg := geometry.AngleDegrees(d.cfg.Center, acc.Start)
		area = AreaFromSector(geometry.SectorOf(deg))
	}
	events.Gesture.Click(acc.ID, area.String())
	return []Command{Click{Area: area}}
}

// Cancel drops the live gesture without emitting anything. It is the exit
// path for pointer-leave, focus loss and touch-cancel.
func (d *Disambiguator) Cancel() {
	if d.active == nil {
		return
	}
	events.Gesture.Cancel(d.active.ID)
	d.active = nil
}

// Scroll accumulates the magnitude of a wheel delta and emits one step in the
// scroll direction once the threshold is reached. No residual carries over.
func (d *Disambiguator) Scroll(deltaY float64) []Command {
	if deltaY == 0 || math.IsNaN(deltaY) {
		return nil
	}
	d.scrollDelta += math.Abs(deltaY)
	if d.scrollDelta < d.cfg.ScrollThreshold {
		return nil
	}
	d.scrollDelta = 0
	dir := Forward
	if deltaY < 0 {
		dir = Backward
	}
	events.Gesture.Scroll(dir.String())
	return []Command{Step{Direction: dir}}
}
