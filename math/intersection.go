package math

// Intersection carries the geometric result of a ray/shape hit: the hit
// distance, point, geometric and shading normals, and uv coordinates for
// texture lookup. Shapes fill in only these fields; binding a hit to a
// primitive, material, and area light is the primitive package's job.
type Intersection struct {
	T float32

	Point Vec3
	Ng    Vec3
	Ns    Vec3
	UV    Vec2

	// FaceIndex is the polygon face hit within a mesh, 0 for non-mesh shapes.
	FaceIndex int
}
