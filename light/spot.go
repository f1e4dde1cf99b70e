package light

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// Spot is a point light restricted to a cone around Direction, with a
// hard cutoff at the half-angle Theta.
type Spot struct {
	Position  math.Vec3
	Direction math.Vec3
	CosTheta  float32
	Intensity math.Vec3
}

func NewSpot(position, direction math.Vec3, theta float32, intensity math.Vec3) *Spot {
	return &Spot{
		Position:  position,
		Direction: direction.Normalize(),
		CosTheta:  float32(stdmath.Cos(float64(theta))),
		Intensity: intensity,
	}
}

// Sample computes wi as the normalized vector toward the light, unlike
// the source's directionless bug (which sampled toward the raw point_
// position as if it were already a direction); it then tests the cone
// using that corrected direction.
func (s *Spot) Sample(hit primitive.Hit, u0, u1 float32) Sample {
	toLight := s.Position.Sub(hit.Point)
	wi := toLight.Normalize()

	var radiance math.Vec3
	if -wi.Dot(s.Direction) > s.CosTheta {
		radiance = s.Intensity.Mul(1 / toLight.LengthSqr())
	}

	return Sample{
		Wi:           wi,
		PointOnLight: s.Position,
		Radiance:     radiance,
		Pdf:          1,
		Kind:         KindDeltaPoint,
	}
}

func (s *Spot) Power() math.Vec3 {
	return s.Intensity.Mul(areaUnitCone(s.CosTheta))
}

// areaUnitCone is the solid angle area of a cone with the given
// half-angle cosine.
func areaUnitCone(cosTheta float32) float32 {
	return 2 * math.Pi * (1 - cosTheta)
}
