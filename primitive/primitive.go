package primitive

import (
	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/math"
)

// Geometry is the shape contract a Primitive wraps: pure geometric
// intersection and sampling, with no material or lighting concerns.
// Concrete shapes (shape.Sphere, shape.Triangle, ...) satisfy this
// structurally without needing to import this package.
type Geometry interface {
	Area() float32
	Bounding() math.BoundingBox
	Intersect(ray math.Ray, tMin, tMax float32, isect *math.Intersection) bool
	SamplePoint(u0, u1 float32) (p, n math.Vec3, pdf float32)
}

// Allocator is the subset of workspace.Workspace's construction methods
// a Material needs to build a Bsdf without escaping the per-ray scratch
// pool. Declaring it here (rather than importing the workspace package)
// keeps primitive free of any dependency on workspace, which itself
// depends on primitive for mesh-hit wrapper allocation.
type Allocator interface {
	NewLambertian(albedo math.Vec3) *bsdf.Lambertian
	NewSpecularReflection(albedo math.Vec3) *bsdf.SpecularReflection
	NewSpecularTransmission(albedo math.Vec3, etaIn, etaOut float32) *bsdf.SpecularTransmission
	NewMicrofacetReflection(albedo math.Vec3, fresnel bsdf.Fresnel, dist bsdf.MicrofacetDistribution) *bsdf.MicrofacetReflection
	NewMix(a, b bsdf.Bsdf, weightA float32) *bsdf.Mix
}

// Material builds the Bsdf applicable at a hit point, allocated from the
// given workspace. Concrete material types live in the material package
// and implement this structurally.
type Material interface {
	ComputeBsdf(ws Allocator, hit Hit) bsdf.Bsdf
}

// AreaLight is the minimal surface a primitive's owned emitter must
// expose so the renderer can evaluate self-emission when a ray directly
// hits the light (unconditional on facing, matching light sampling's
// separate one-sided test). Concrete area lights live in the light
// package and implement this structurally, while also holding a
// back-reference to the Primitive they sample points from.
type AreaLight interface {
	Emit(rayDir math.Vec3) math.Vec3
}

// Hit is the full result of a ray hitting a Primitive: the geometric
// intersection plus the primitive, material, and area light (if any) it
// belongs to.
type Hit struct {
	math.Intersection
	Primitive *Primitive
	Material  Material
	AreaLight AreaLight
}

// Primitive binds a Geometry to a Material and an optional, exclusively
// owned AreaLight, with an optional orientation flip for geometry
// authored inside-out (e.g. an environment sphere).
type Primitive struct {
	Geometry           Geometry
	ReverseOrientation bool

	material  Material
	areaLight AreaLight
}

func New(geometry Geometry, reverseOrientation bool) *Primitive {
	return &Primitive{Geometry: geometry, ReverseOrientation: reverseOrientation}
}

func (p *Primitive) BindMaterial(m Material) {
	p.material = m
}

func (p *Primitive) BindAreaLight(l AreaLight) {
	p.areaLight = l
}

func (p *Primitive) GetMaterial() Material {
	return p.material
}

func (p *Primitive) GetAreaLight() AreaLight {
	return p.areaLight
}

func (p *Primitive) Area() float32 {
	return p.Geometry.Area()
}

func (p *Primitive) Bounding() math.BoundingBox {
	return p.Geometry.Bounding()
}

// Intersect fills hit with the full result of hitting this primitive,
// applying the orientation flip to normals and uv when configured.
func (p *Primitive) Intersect(ray math.Ray, tMin, tMax float32, hit *Hit) bool {
	if !p.Geometry.Intersect(ray, tMin, tMax, &hit.Intersection) {
		return false
	}

	if p.ReverseOrientation {
		hit.Ns = hit.Ns.Negate()
		hit.Ng = hit.Ng.Negate()
		hit.UV = math.Vec2{X: 1 - hit.UV.X, Y: 1 - hit.UV.Y}
	}

	hit.Primitive = p
	hit.Material = p.material
	hit.AreaLight = p.areaLight
	return true
}

// SamplePoint samples a point on the primitive's surface, flipping the
// sampled normal to match an inverted orientation.
func (p *Primitive) SamplePoint(u0, u1 float32) (point, n math.Vec3, pdf float32) {
	point, n, pdf = p.Geometry.SamplePoint(u0, u1)
	if p.ReverseOrientation {
		n = n.Negate()
	}
	return
}
