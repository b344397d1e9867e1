package gesture

import "github.com/atomicstack/clickwheel/internal/geometry"

// Accumulator is the state of one pointer or touch interaction, from press to
// release. It is discarded when the interaction ends.
type Accumulator struct {
	ID           string
	Source       Source
	LastAngle    float64
	HasLastAngle bool
	Accumulated  float64
	Dragged      bool
	Start        geometry.Point
	HasStart     bool
	// CenterOnly marks a gesture that began on the centre button; it never
	// tracks rotation.
	CenterOnly bool
}
