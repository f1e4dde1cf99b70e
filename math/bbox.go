package math

// BoundingBox is an axis-aligned bounding box, stored as (p_min, p_max)
// with p_min <= p_max component-wise.
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

var BoundingBoxEmpty = BoundingBox{
	Min: Vec3{X: Inf, Y: Inf, Z: Inf},
	Max: Vec3{X: -Inf, Y: -Inf, Z: -Inf},
}

func MinFloat32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func MaxFloat32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func ClampFloat32(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func MinVec3(a, b Vec3) Vec3 {
	return Vec3{X: MinFloat32(a.X, b.X), Y: MinFloat32(a.Y, b.Y), Z: MinFloat32(a.Z, b.Z)}
}

func MaxVec3(a, b Vec3) Vec3 {
	return Vec3{X: MaxFloat32(a.X, b.X), Y: MaxFloat32(a.Y, b.Y), Z: MaxFloat32(a.Z, b.Z)}
}

func NewBoundingBox(a, b Vec3) BoundingBox {
	return BoundingBox{Min: MinVec3(a, b), Max: MaxVec3(a, b)}
}

// Union returns the smallest bounding box containing both b and other.
func (b BoundingBox) Union(other BoundingBox) BoundingBox {
	return BoundingBox{Min: MinVec3(b.Min, other.Min), Max: MaxVec3(b.Max, other.Max)}
}

// UnionPoint returns the smallest bounding box containing both b and p.
func (b BoundingBox) UnionPoint(p Vec3) BoundingBox {
	return BoundingBox{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

func (b BoundingBox) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

func (b BoundingBox) Centroid() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// SurfaceArea returns the total surface area of the box; zero for an
// empty box. A planar box counts both faces of its one non-zero side.
func (b BoundingBox) SurfaceArea() float32 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// MaxExtentAxis returns the axis (0=x, 1=y, 2=z) along which the box is
// longest.
func (b BoundingBox) MaxExtentAxis() int {
	e := b.Extent()
	if e.X > e.Y && e.X > e.Z {
		return 0
	}
	if e.Y > e.Z {
		return 1
	}
	return 2
}

func vecComponent(v Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Intersect performs a robust component-wise slab test against the ray
// on the parametric interval [tMin, tMax]. For a zero ray direction
// component the slab is not divided by: the ray misses if its origin lies
// outside that slab, and otherwise that axis does not narrow the
// interval. Returns the near hit distance and whether the ray
// overlaps the box at all within the interval.
func (b BoundingBox) Intersect(ray Ray, tMin, tMax float32) (float32, bool) {
	near := tMin
	far := tMax

	for axis := 0; axis < 3; axis++ {
		o := vecComponent(ray.Origin, axis)
		d := vecComponent(ray.Direction, axis)
		lo := vecComponent(b.Min, axis)
		hi := vecComponent(b.Max, axis)

		if d == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		invD := 1 / d
		t0 := (lo - o) * invD
		t1 := (hi - o) * invD
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > near {
			near = t0
		}
		if t1 < far {
			far = t1
		}
		if near > far {
			return 0, false
		}
	}

	if far <= tMin || near >= tMax {
		return 0, false
	}
	return near, true
}
