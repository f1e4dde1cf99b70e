package shape

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// Disk is a disk placed horizontally, parallel to the xy plane.
type Disk struct {
	Center math.Vec3
	Radius float32
}

func NewDisk(center math.Vec3, radius float32) Disk {
	return Disk{Center: center, Radius: radius}
}

// Area returns the true geometric area pi*r^2.
func (d Disk) Area() float32 {
	return math.Pi * d.Radius * d.Radius
}

func (d Disk) Bounding() math.BoundingBox {
	offset := math.Vec3{X: d.Radius, Y: d.Radius, Z: 0}
	return math.NewBoundingBox(d.Center.Sub(offset), d.Center.Add(offset))
}

func (d Disk) Intersect(ray math.Ray, tMin, tMax float32, isect *math.Intersection) bool {
	if ray.Direction.Z == 0 {
		return false
	}

	t := (d.Center.Z - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return false
	}
	p := ray.At(t)

	delta := p.Sub(d.Center)
	distSq := delta.LengthSqr()
	if distSq > d.Radius*d.Radius {
		return false
	}

	phi := float32(stdmath.Atan2(float64(delta.Y), float64(delta.X)))
	if phi < 0 {
		phi += 2 * math.Pi
	}
	u := phi / (2 * math.Pi)
	v := (d.Radius - float32(stdmath.Sqrt(float64(distSq)))) / d.Radius

	isect.T = t
	isect.Point = p
	isect.Ng = math.Vec3{X: 0, Y: 0, Z: 1}
	isect.Ns = isect.Ng
	isect.UV = math.Vec2{X: u, Y: v}
	return true
}

// SamplePoint follows the literal source formula pdf = 1/(2*pi*r), a
// deliberately carried-over mismatch against the true area pi*r^2.
func (d Disk) SamplePoint(u0, u1 float32) (p, n math.Vec3, pdf float32) {
	disk := math.SampleUniformDisk(u0, u1)
	p = math.Vec3{X: disk.X * d.Radius, Y: disk.Y * d.Radius, Z: 0}.Add(d.Center)
	n = math.Vec3{X: 0, Y: 0, Z: 1}
	pdf = 1 / (2 * math.Pi * d.Radius)
	return
}
