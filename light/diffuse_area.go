package light

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// DiffuseArea is an emitter bound to a single primitive's surface: every
// point on the primitive emits Intensity uniformly outward along its
// geometric normal. It holds a back-reference to the primitive so it can
// sample points on it, which is why it lives here rather than on
// Primitive itself (see primitive.AreaLight).
type DiffuseArea struct {
	Owner     *primitive.Primitive
	Intensity math.Vec3
}

func NewDiffuseArea(owner *primitive.Primitive, intensity math.Vec3) *DiffuseArea {
	return &DiffuseArea{Owner: owner, Intensity: intensity}
}

// Emit implements primitive.AreaLight: radiance for a ray that directly
// hits the owning primitive is unconditionally Intensity (orientation is
// only tested when explicitly sampling the light, not here).
func (d *DiffuseArea) Emit(rayDir math.Vec3) math.Vec3 {
	return d.Intensity
}

func (d *DiffuseArea) Sample(hit primitive.Hit, u0, u1 float32) Sample {
	point, normal, pdf := d.Owner.SamplePoint(u0, u1)

	wi := point.Sub(hit.Point)
	var radiance math.Vec3
	if wi.Dot(normal) < 0 {
		radiance = d.Intensity
	}

	return Sample{
		Wi:           wi.Normalize(),
		PointOnLight: point,
		Radiance:     radiance,
		Pdf:          pdf,
		Kind:         KindArea,
	}
}

func (d *DiffuseArea) Power() math.Vec3 {
	return d.Intensity.Mul(math.Pi * d.Owner.Area())
}
