package light

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/texture"
)

// Infinite is an environment light: radiance for a direction is looked
// up in a texture parameterized with the same atan2/acos convention
// Sphere uses for its own uv (resolves the source's ambiguity about
// which convention environment sampling should follow).
type Infinite struct {
	Texture     texture.Texture
	Intensity   float32
	WorldRadius float32
}

func NewInfinite(tex texture.Texture, intensity, worldRadius float32) *Infinite {
	return &Infinite{Texture: tex, Intensity: intensity, WorldRadius: worldRadius}
}

func (inf *Infinite) Eval(ray math.Ray) math.Vec3 {
	return inf.evalDirection(ray.Direction)
}

func (inf *Infinite) evalDirection(dir math.Vec3) math.Vec3 {
	u := 1 - float32(stdmath.Atan2(float64(dir.Y), float64(dir.X)))/(2*math.Pi)
	v := 1 - float32(stdmath.Acos(clampUnit(float64(dir.Z))))/math.Pi
	if u < 0 {
		u += 1
	}
	return inf.Texture.Eval(math.Vec2{X: u, Y: v}, math.Vec2{}, math.Vec2{}).Mul(inf.Intensity)
}

func clampUnit(x float64) float64 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}

// Sample draws a uniform direction over the hemisphere aligned with the
// shading normal, so the environment is never sampled from behind the
// surface.
func (inf *Infinite) Sample(hit primitive.Hit, u0, u1 float32) Sample {
	wi := math.SampleUniformSphere(u0, u1)
	if wi.Dot(hit.Ns) < 0 {
		wi = wi.Negate()
	}

	return Sample{
		Wi:       wi,
		Radiance: inf.evalDirection(wi),
		Pdf:      math.UniformSpherePdf() * 2,
		Kind:     KindInfinite,
	}
}

func (inf *Infinite) Power() math.Vec3 {
	p := inf.Intensity * math.Pi * inf.WorldRadius * inf.WorldRadius
	return math.Vec3{X: p, Y: p, Z: p}
}
