package light

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// Kind tags the sampling strategy a light contributes.
type Kind int

const (
	KindDeltaPoint Kind = iota
	KindDeltaDirection
	KindArea
	KindInfinite
)

// Sample is the result of sampling a light from a shaded point: an
// incident direction in world space, the point sampled on the light (if
// any, used for visibility testing), the carried radiance, its pdf, and
// the light's kind.
type Sample struct {
	Wi           math.Vec3
	PointOnLight math.Vec3
	Radiance     math.Vec3
	Pdf          float32
	Kind         Kind
}

// Light is sampled from a shading point to estimate direct illumination,
// and can report the total power it emits into the scene for
// importance-based light selection.
type Light interface {
	Sample(hit primitive.Hit, u0, u1 float32) Sample
	Power() math.Vec3
}

// AreaOrInfiniteLight additionally evaluates radiance along a ray that
// escapes the scene or hits the light directly, for camera/specular-ray
// self-emission.
type AreaOrInfiniteLight interface {
	Light
	Eval(ray math.Ray) math.Vec3
}
