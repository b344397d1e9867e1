// Package shell wires raw wheel input into the gesture disambiguator and
// routes the resulting commands into the navigation machine. Hosts call the
// entry points below and never see gestures or sectors themselves.
package shell

import (
	"errors"

	"github.com/atomicstack/clickwheel/internal/geometry"
	"github.com/atomicstack/clickwheel/internal/gesture"
)

// WheelSize is the side of the square wheel box in wheel units.
const WheelSize = 200.0

// WheelCenter is the centre of the wheel box.
var WheelCenter = geometry.Point{X: WheelSize / 2, Y: WheelSize / 2}

// Navigator consumes wheel commands.
type Navigator interface {
	StepForward()
	StepBackward()
	HandleClick(area gesture.Area) error
}

// Shell is the single entry point for wheel input.
type Shell struct {
	gestures *gesture.Disambiguator
	nav      Navigator
}

// New builds a shell. A nil disambiguator gets the default configuration for
// a wheel centred in the wheel box.
func New(d *gesture.Disambiguator, nav Navigator) *Shell {
	if d == nil {
		d = gesture.New(gesture.DefaultConfig(WheelCenter))
	}
	return &Shell{gestures: d, nav: nav}
}

// Gestures exposes the underlying disambiguator.
func (s *Shell) Gestures() *gesture.Disambiguator {
	return s.gestures
}

// Tracking reports whether a pointer or touch gesture is live.
func (s *Shell) Tracking() bool {
	return s.gestures.Active()
}

func (s *Shell) PointerDown(p geometry.Point) bool {
	return s.gestures.Begin(gesture.SourceMouse, p)
}

func (s *Shell) PointerMove(p geometry.Point) error {
	return s.dispatch(s.gestures.Move(gesture.SourceMouse, p))
}

func (s *Shell) PointerUp() error {
	return s.dispatch(s.gestures.End(gesture.SourceMouse))
}

// PointerLeave ends tracking when the pointer leaves the wheel mid-gesture.
func (s *Shell) PointerLeave() {
	s.gestures.Cancel()
}

func (s *Shell) TouchStart(p geometry.Point) bool {
	return s.gestures.Begin(gesture.SourceTouch, p)
}

func (s *Shell) TouchMove(p geometry.Point) error {
	return s.dispatch(s.gestures.Move(gesture.SourceTouch, p))
}

func (s *Shell) TouchEnd() error {
	return s.dispatch(s.gestures.End(gesture.SourceTouch))
}

func (s *Shell) TouchCancel() {
	s.gestures.Cancel()
}

// Wheel feeds a scroll delta. Positive values scroll forward.
func (s *Shell) Wheel(deltaY float64) error {
	return s.dispatch(s.gestures.Scroll(deltaY))
}

// Blur cancels any gesture when the host loses focus.
func (s *Shell) Blur() {
	s.gestures.Cancel()
}

// Press clicks an area directly, as the keyboard does.
func (s *Shell) Press(area gesture.Area) error {
	return s.dispatch([]gesture.Command{gesture.Click{Area: area}})
}

// Rotate issues a single step directly.
func (s *Shell) Rotate(dir gesture.Direction) error {
	return s.dispatch([]gesture.Command{gesture.Step{Direction: dir}})
}

func (s *Shell) dispatch(cmds []gesture.Command) error {
	if s.nav == nil {
		return nil
	}
	var errs []error
	for _, cmd := range cmds {
		switch c := cmd.(type) {
		case gesture.Step:
			if c.Direction == gesture.Backward {
				s.nav.StepBackward()
			} else {
				s.nav.StepForward()
			}
		case gesture.Click:
			if err := s.nav.HandleClick(c.Area); err != nil {
				errs = append(errs, err)
			}
		}
	}
	return errors.Join(errs...)
}
