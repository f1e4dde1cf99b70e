package primitive

import "github.com/daiyousei-qz/Usami/math"

// NaiveComposite intersects a ray against every primitive in turn,
// keeping the closest hit. It exists primarily as a reference
// implementation to validate the BVH's acceleration against brute force.
type NaiveComposite struct {
	Primitives []*Primitive
}

func NewNaiveComposite(primitives []*Primitive) *NaiveComposite {
	return &NaiveComposite{Primitives: primitives}
}

func (c *NaiveComposite) Intersect(ray math.Ray, tMin, tMax float32, hit *Hit) bool {
	found := false
	closest := tMax
	for _, p := range c.Primitives {
		var candidate Hit
		if p.Intersect(ray, tMin, closest, &candidate) {
			found = true
			closest = candidate.T
			*hit = candidate
		}
	}
	return found
}

func (c *NaiveComposite) IntersectOcclude(ray math.Ray, tMin, tMax float32) bool {
	for _, p := range c.Primitives {
		var candidate Hit
		if p.Intersect(ray, tMin, tMax, &candidate) {
			return true
		}
	}
	return false
}
