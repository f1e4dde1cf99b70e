package shape

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// Sphere is a shape centered at Center with the given Radius.
type Sphere struct {
	Center math.Vec3
	Radius float32
}

func NewSphere(center math.Vec3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Area returns the true surface area 4*pi*r^2.
func (s Sphere) Area() float32 {
	return 4 * math.Pi * s.Radius * s.Radius
}

func (s Sphere) Bounding() math.BoundingBox {
	r := math.Vec3{X: s.Radius, Y: s.Radius, Z: s.Radius}
	return math.NewBoundingBox(s.Center.Sub(r), s.Center.Add(r))
}

func (s Sphere) Intersect(ray math.Ray, tMin, tMax float32, isect *math.Intersection) bool {
	d := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(d)
	c := d.Dot(d) - s.Radius*s.Radius

	deltaSq := b*b - 4*a*c
	if deltaSq < 0 {
		return false
	}
	delta := float32(stdmath.Sqrt(float64(deltaSq)))
	t0 := (-b - delta) / (2 * a)
	t1 := (-b + delta) / (2 * a)

	t := t0
	if t < tMin {
		t = t1
	}
	if t < tMin || t > tMax {
		return false
	}

	p := ray.At(t)
	n := p.Sub(s.Center).Normalize()
	u := 1 - float32(stdmath.Atan2(float64(n.Y), float64(n.X)))/(2*math.Pi)
	v := 1 - float32(stdmath.Acos(clamp(float64(n.Z), -1, 1)))/math.Pi
	if u < 0 {
		u += 1
	}

	isect.T = t
	isect.Point = p
	isect.Ng = n
	isect.Ns = n
	isect.UV = math.Vec2{X: u, Y: v}
	return true
}

func (s Sphere) SamplePoint(u0, u1 float32) (p, n math.Vec3, pdf float32) {
	n = math.SampleUniformSphere(u0, u1)
	p = n.Mul(s.Radius).Add(s.Center)
	pdf = 1 / s.Area()
	return
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
