package shape

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// Triangle is a single triangle given by a vertex and two edge vectors,
// with per-vertex shading normals and uv coordinates for interpolation.
type Triangle struct {
	V0, E1, E2 math.Vec3
	N0, N1, N2 math.Vec3
	UV0, UV1, UV2 math.Vec2
}

func NewTriangle(v0, v1, v2 math.Vec3) Triangle {
	return Triangle{V0: v0, E1: v1.Sub(v0), E2: v2.Sub(v0)}
}

func (t Triangle) Area() float32 {
	return t.E1.Cross(t.E2).Length() * 0.5
}

func (t Triangle) Bounding() math.BoundingBox {
	v1 := t.V0.Add(t.E1)
	v2 := t.V0.Add(t.E2)
	box := math.NewBoundingBox(t.V0, v1)
	return box.UnionPoint(v2)
}

// Intersect implements the Moeller-Trumbore algorithm. The geometric
// normal written to isect is normalized, unlike the raw double-area-scaled
// cross product.
func (t Triangle) Intersect(ray math.Ray, tMin, tMax float32, isect *math.Intersection) bool {
	h := ray.Direction.Cross(t.E2)
	a := t.E1.Dot(h)
	if a > -math.Epsilon && a < math.Epsilon {
		return false
	}

	f := 1 / a
	s := ray.Origin.Sub(t.V0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return false
	}

	q := s.Cross(t.E1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return false
	}

	tHit := f * t.E2.Dot(q)
	if tHit < tMin || tHit > tMax {
		return false
	}

	w := 1 - u - v
	ng := t.E1.Cross(t.E2).Normalize()
	var ns math.Vec3
	if t.N0 != (math.Vec3{}) || t.N1 != (math.Vec3{}) || t.N2 != (math.Vec3{}) {
		ns = t.N0.Mul(w).Add(t.N1.Mul(u)).Add(t.N2.Mul(v)).Normalize()
	} else {
		ns = ng
	}
	uv := math.Vec2{
		X: t.UV0.X*w + t.UV1.X*u + t.UV2.X*v,
		Y: t.UV0.Y*w + t.UV1.Y*u + t.UV2.Y*v,
	}

	isect.T = tHit
	isect.Point = ray.At(tHit)
	isect.Ng = ng
	isect.Ns = ns
	isect.UV = uv
	return true
}

func (t Triangle) SamplePoint(u0, u1 float32) (p, n math.Vec3, pdf float32) {
	su0 := sqrt32(u0)
	b0 := 1 - su0
	b1 := u1 * su0
	p = t.V0.Add(t.E1.Mul(b0)).Add(t.E2.Mul(b1))
	n = t.E1.Cross(t.E2).Normalize()
	pdf = 1 / t.Area()
	return
}

func sqrt32(x float32) float32 {
	if x < 0 {
		return 0
	}
	return float32(stdmath.Sqrt(float64(x)))
}
