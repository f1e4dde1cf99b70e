package light

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// unitSphereArea is the surface area of the unit sphere, 4*pi.
const unitSphereArea = 4 * math.Pi

// Point is a delta point light: radiance falls off with inverse square
// distance, intensity being the radiance at unit distance.
type Point struct {
	Position  math.Vec3
	Intensity math.Vec3
}

func NewPoint(position, intensity math.Vec3) *Point {
	return &Point{Position: position, Intensity: intensity}
}

func (p *Point) Sample(hit primitive.Hit, u0, u1 float32) Sample {
	wi := p.Position.Sub(hit.Point)
	radiance := p.Intensity.Mul(1 / wi.LengthSqr())

	return Sample{
		Wi:           wi.Normalize(),
		PointOnLight: p.Position,
		Radiance:     radiance,
		Pdf:          1,
		Kind:         KindDeltaPoint,
	}
}

func (p *Point) Power() math.Vec3 {
	return p.Intensity.Mul(unitSphereArea)
}
