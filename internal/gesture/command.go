package gesture

import (
	"fmt"

	"github.com/atomicstack/clickwheel/internal/geometry"
)

// Area is a clickable region of the wheel: one of the four sectors or the
// centre button.
type Area int

const (
	AreaTop Area = iota
	AreaRight
	AreaBottom
	AreaLeft
	AreaCenter
)

func (a Area) String() string {
	switch a {
	case AreaTop:
		return "top"
	case AreaRight:
		return "right"
	case AreaBottom:
		return "bottom"
	case AreaLeft:
		return "left"
	case AreaCenter:
		return "center"
	default:
		return fmt.Sprintf("area(%d)", int(a))
	}
}

// AreaFromSector converts a geometry sector to its wheel area.
func AreaFromSector(s geometry.Sector) Area {
	switch s {
	case geometry.Right:
		return AreaRight
	case geometry.Bottom:
		return AreaBottom
	case geometry.Left:
		return AreaLeft
	default:
		return AreaTop
	}
}

// Direction is the sign of a rotation step.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Command is a discrete navigation command produced from raw input.
type Command interface {
	command()
}

// Step is one unit of rotation.
type Step struct {
	Direction Direction
}

// Click is a press on one wheel area.
type Click struct {
	Area Area
}

func (Step) command()  {}
func (Click) command() {}
