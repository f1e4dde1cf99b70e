package workspace

import (
	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// capacity bounds how many instances of a single concrete type a
// workspace can hand out between two Reset calls. A single bounce
// constructs at most one instance of each pooled Bsdf type and, for mesh
// hits, one temporary primitive wrapper, so this is generous headroom rather than a tight
// budget.
const capacity = 8

// Workspace is per-thread, per-ray scratch storage: a fixed pool of
// preallocated typed slices (one per concrete Bsdf/Primitive type) with
// a cursor per pool, reset to zero at the start of every bounce. This is
// the idiomatic Go analog of a bump-pointer memory arena — fixed
// capacity means the backing arrays never reallocate, so pointers handed
// out by a New* method stay valid until the next Reset, exactly like the
// arena's "valid until reset()" contract. It must never be shared
// between goroutines.
type Workspace struct {
	lambertians    [capacity]bsdf.Lambertian
	lambertianNext int

	specularRefl    [capacity]bsdf.SpecularReflection
	specularReflNext int

	specularTrans    [capacity]bsdf.SpecularTransmission
	specularTransNext int

	microfacet    [capacity]bsdf.MicrofacetReflection
	microfacetNext int

	mixes    [capacity]bsdf.Mix
	mixNext  int

	meshPrimitives    [capacity]primitive.Primitive
	meshPrimitiveNext int
}

func New() *Workspace {
	return &Workspace{}
}

// Reset must run between bounces, before any allocation for the new
// bounce happens. It has no destructors to run: every pooled type here
// is plain data, so clearing the cursors is sufficient.
func (w *Workspace) Reset() {
	w.lambertianNext = 0
	w.specularReflNext = 0
	w.specularTransNext = 0
	w.microfacetNext = 0
	w.mixNext = 0
	w.meshPrimitiveNext = 0
}

func (w *Workspace) NewLambertian(albedo math.Vec3) *bsdf.Lambertian {
	b := &w.lambertians[w.lambertianNext]
	w.lambertianNext++
	*b = bsdf.Lambertian{Albedo: albedo}
	return b
}

func (w *Workspace) NewSpecularReflection(albedo math.Vec3) *bsdf.SpecularReflection {
	b := &w.specularRefl[w.specularReflNext]
	w.specularReflNext++
	*b = bsdf.SpecularReflection{Albedo: albedo}
	return b
}

func (w *Workspace) NewSpecularTransmission(albedo math.Vec3, etaIn, etaOut float32) *bsdf.SpecularTransmission {
	b := &w.specularTrans[w.specularTransNext]
	w.specularTransNext++
	*b = bsdf.SpecularTransmission{Albedo: albedo, EtaIn: etaIn, EtaOut: etaOut}
	return b
}

func (w *Workspace) NewMicrofacetReflection(albedo math.Vec3, fresnel bsdf.Fresnel, dist bsdf.MicrofacetDistribution) *bsdf.MicrofacetReflection {
	b := &w.microfacet[w.microfacetNext]
	w.microfacetNext++
	*b = bsdf.MicrofacetReflection{Albedo: albedo, Fresnel: fresnel, Distribution: dist}
	return b
}

func (w *Workspace) NewMix(a, b bsdf.Bsdf, weightA float32) *bsdf.Mix {
	m := &w.mixes[w.mixNext]
	w.mixNext++
	*m = bsdf.Mix{A: a, B: b, WeightA: weightA}
	return m
}

// NewMeshFacePrimitive allocates the temporary primitive wrapper a mesh
// BVH hit needs so interaction.primitive can reference something,
// without constructing a real long-lived primitive for every one of a
// mesh's faces up front.
func (w *Workspace) NewMeshFacePrimitive(geometry primitive.Geometry, reverseOrientation bool) *primitive.Primitive {
	p := &w.meshPrimitives[w.meshPrimitiveNext]
	w.meshPrimitiveNext++
	*p = *primitive.New(geometry, reverseOrientation)
	return p
}
