// Package geometry maps pointer coordinates on the click wheel to angles and
// directional sectors.
package geometry

import "math"

// DefaultCenterRadius is the radius, in wheel units, of the centre button.
const DefaultCenterRadius = 32.0

// Point is a position in wheel units. The y axis grows downwards, so a
// positive change in angle is a clockwise turn on screen.
type Point struct {
	X, Y float64
}

// Sector is one of the four directional quadrants of the wheel.
type Sector int

const (
	Top Sector = iota
	Right
	Bottom
	Left
)

func (s Sector) String() string {
	switch s {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// AngleRadians returns the bearing of p from center in (-π, π], with 0
// pointing along the positive x axis.
func AngleRadians(center, p Point) float64 {
	return math.Atan2(p.Y-center.Y, p.X-center.X)
}

// AngleDegrees is AngleRadians in degrees.
func AngleDegrees(center, p Point) float64 {
	return AngleRadians(center, p) * 180 / math.Pi
}

// SectorOf maps an angle in degrees to a sector. The partition is half-open:
// right [-45,45), bottom [45,135), left [135,180] ∪ [-180,-135), top otherwise.
func SectorOf(deg float64) Sector {
	deg = normalizeDegrees(deg)
	switch {
	case deg >= -45 && deg < 45:
		return Right
	case deg >= 45 && deg < 135:
		return Bottom
	case deg >= 135 || deg < -135:
		return Left
	default:
		return Top
	}
}

// IsWithinCenterZone reports whether p lies on or inside the circle of the
// given radius around center.
func IsWithinCenterZone(center, p Point, radius float64) bool {
	dx := p.X - center.X
	dy := p.Y - center.Y
	return math.Sqrt(dx*dx+dy*dy) <= radius
}

// Distance is the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NormalizeDelta folds a radian delta into (-π, π] so a crossing of the ±π
// seam reads as a small step.
func NormalizeDelta(delta float64) float64 {
	if math.IsNaN(delta) || math.IsInf(delta, 0) {
		return 0
	}
	delta = math.Mod(delta, 2*math.Pi)
	if delta > math.Pi {
		delta -= 2 * math.Pi
	} else if delta <= -math.Pi {
		delta += 2 * math.Pi
	}
	return delta
}

func normalizeDegrees(deg float64) float64 {
	if deg >= -180 && deg <= 180 {
		return deg
	}
	deg = math.Mod(deg, 360)
	if deg > 180 {
		deg -= 360
	} else if deg < -180 {
		deg += 360
	}
	return deg
}
