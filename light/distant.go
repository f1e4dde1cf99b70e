package light

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// Distant is a directional light, parallel rays cast from infinitely
// far away along Direction.
type Distant struct {
	Direction   math.Vec3
	Intensity   math.Vec3
	WorldRadius float32
}

func NewDistant(direction, intensity math.Vec3, worldRadius float32) *Distant {
	return &Distant{Direction: direction.Normalize(), Intensity: intensity, WorldRadius: worldRadius}
}

func (d *Distant) Sample(hit primitive.Hit, u0, u1 float32) Sample {
	return Sample{
		Wi:       d.Direction.Negate(),
		Radiance: d.Intensity,
		Pdf:      1,
		Kind:     KindDeltaDirection,
	}
}

func (d *Distant) Power() math.Vec3 {
	return d.Intensity.Mul(math.Pi * d.WorldRadius * d.WorldRadius)
}
