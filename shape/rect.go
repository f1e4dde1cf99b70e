package shape

import "github.com/daiyousei-qz/Usami/math"

// Rect is an axis-aligned rectangle parallel to the xy plane, centered
// at Center with extent LenX by LenY.
type Rect struct {
	pMinXY     math.Vec3
	lenX, lenY float32
}

func NewRect(center math.Vec3, lenX, lenY float32) Rect {
	offset := math.Vec3{X: lenX, Y: lenY, Z: 0}.Mul(0.5)
	return Rect{pMinXY: center.Sub(offset), lenX: lenX, lenY: lenY}
}

func (r Rect) Area() float32 {
	return r.lenX * r.lenY
}

func (r Rect) Bounding() math.BoundingBox {
	return math.NewBoundingBox(r.pMinXY, r.pMinXY.Add(math.Vec3{X: r.lenX, Y: r.lenY, Z: 0}))
}

func (r Rect) Intersect(ray math.Ray, tMin, tMax float32, isect *math.Intersection) bool {
	if ray.Direction.Z == 0 {
		return false
	}

	t := (r.pMinXY.Z - ray.Origin.Z) / ray.Direction.Z
	if t < tMin || t > tMax {
		return false
	}
	p := ray.At(t)

	dx := p.X - r.pMinXY.X
	dy := p.Y - r.pMinXY.Y
	if dx < 0 || dx > r.lenX || dy < 0 || dy > r.lenY {
		return false
	}

	isect.T = t
	isect.Point = p
	isect.Ng = math.Vec3{X: 0, Y: 0, Z: 1}
	isect.Ns = isect.Ng
	isect.UV = math.Vec2{X: dx / r.lenX, Y: dy / r.lenY}
	return true
}

func (r Rect) SamplePoint(u0, u1 float32) (p, n math.Vec3, pdf float32) {
	p = r.pMinXY.Add(math.Vec3{X: u0 * r.lenX, Y: u1 * r.lenY, Z: 0})
	n = math.Vec3{X: 0, Y: 0, Z: 1}
	pdf = 1 / r.Area()
	return
}
