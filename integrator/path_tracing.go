// Package integrator turns a scene and a camera ray into an estimate of
// outgoing radiance. PathTracing is the only strategy implemented: plain
// unidirectional Monte Carlo path tracing with explicit light sampling
// and BSDF-sampled indirect bounces.
package integrator

import (
	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/light"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/workspace"
	"github.com/daiyousei-qz/Usami/world"
)

// PathTracing estimates outgoing radiance along a camera ray by
// alternating an explicit direct-light loop over every light in the
// scene with a single BSDF-sampled indirect bounce, terminating
// stochastically via Russian roulette past MinBounce and unconditionally
// at MaxBounce.
type PathTracing struct {
	MinBounce int
	MaxBounce int
}

func NewPathTracing(minBounce, maxBounce int) *PathTracing {
	if minBounce <= 0 || maxBounce < minBounce {
		panic("integrator: require 0 < MinBounce <= MaxBounce")
	}
	return &PathTracing{MinBounce: minBounce, MaxBounce: maxBounce}
}

// Li estimates radiance arriving along ray from scn. ws supplies scratch
// storage for the BSDFs allocated at each bounce (reset at the start of
// every bounce) and rng drives every Monte Carlo decision: light
// sampling, BSDF sampling, and Russian roulette.
func (pt *PathTracing) Li(scn *world.Scene, ws *workspace.Workspace, rng *math.RNG, ray math.Ray) math.Vec3 {
	result := math.Vec3{}
	contrib := math.Vec3{X: 1, Y: 1, Z: 1}

	fromCameraOrSpecular := true
	for bounce := 0; bounce < pt.MaxBounce; bounce++ {
		ws.Reset()

		var hit primitive.Hit
		if !scn.Intersect(ray, world.TravelDistanceMin, world.TravelDistanceMax, &hit) {
			if g := scn.GlobalLight(); g != nil {
				result = result.Add(contrib.MulVec(g.Eval(ray)))
			}
			break
		}

		// Explicit light sampling already accounts for this light's
		// contribution on every other bounce; only add it here when the
		// ray couldn't have been steered toward it on purpose.
		if hit.AreaLight != nil && fromCameraOrSpecular {
			result = result.Add(contrib.MulVec(hit.AreaLight.Emit(ray.Direction)))
		}

		if hit.Material == nil {
			break
		}

		b := hit.Material.ComputeBsdf(ws, hit)

		nx, ny, nz := bsdf.CreateBsdfCoordTransform(hit.Ns)
		woBsdf := bsdf.ToLocal(nx, ny, nz, ray.Direction.Negate())

		isSpecular := b.Type().Contain(bsdf.Specular)
		fromCameraOrSpecular = isSpecular

		if !isSpecular {
			direct := sampleAllDirectLight(scn, rng, hit, woBsdf, b, nx, ny, nz)
			result = result.Add(contrib.MulVec(direct))
		}

		u0, u1 := rng.Next2D()
		wiBsdf, pdfWi, f := b.SampleAndEval(u0, u1, woBsdf)
		if pdfWi == 0 {
			break
		}

		contrib = contrib.MulVec(f).Mul(bsdf.AbsCosTheta(wiBsdf) / pdfWi)
		ray = math.NewRay(hit.Point, bsdf.ToWorld(nx, ny, nz, wiBsdf))

		if bounce >= pt.MinBounce {
			probHalt := maxComponent(contrib)
			if probHalt <= 0 {
				break
			}
			if probHalt > 1 {
				probHalt = 1
			}
			if rng.NextFloat() > probHalt {
				break
			}
			contrib = contrib.Mul(1 / probHalt)
		}
	}

	return result
}

// sampleAllDirectLight loops over every light rather than importance
// sampling one by power: with no multiple-importance-weighting yet in
// place, visiting every light keeps the estimator unbiased at the cost
// of a pass over all of them each bounce.
func sampleAllDirectLight(scn *world.Scene, rng *math.RNG, hit primitive.Hit, woBsdf math.Vec3, b bsdf.Bsdf, nx, ny, nz math.Vec3) math.Vec3 {
	total := math.Vec3{}
	for _, l := range scn.Lights() {
		u0, u1 := rng.Next2D()
		sample := l.Sample(hit, u0, u1)
		if sample.Pdf == 0 || sample.Radiance == (math.Vec3{}) {
			continue
		}
		if !visible(scn, hit.Point, sample) {
			continue
		}

		wiBsdf := bsdf.ToLocal(nx, ny, nz, sample.Wi)
		incident := sample.Radiance.Mul(bsdf.AbsCosTheta(wiBsdf))
		exitant := incident.MulVec(b.Eval(woBsdf, wiBsdf))
		total = total.Add(exitant.Mul(1 / sample.Pdf))
	}
	return total
}

// visible casts a shadow ray toward a light sample, bounding it to just
// short of the sampled point for delta-point and area lights (which have
// a finite distance to fall short of) and to the scene's travel-distance
// ceiling for directional and infinite lights.
func visible(scn *world.Scene, point math.Vec3, sample light.Sample) bool {
	tMax := float32(world.TravelDistanceMax)
	if sample.Kind == light.KindDeltaPoint || sample.Kind == light.KindArea {
		tMax = point.Distance(sample.PointOnLight) - world.TravelDistanceMin
		if tMax <= world.TravelDistanceMin {
			return false
		}
	}

	ray := math.NewRay(point, sample.Wi)
	return !scn.IntersectOcclude(ray, world.TravelDistanceMin, tMax)
}

func maxComponent(v math.Vec3) float32 {
	m := v.X
	if v.Y > m {
		m = v.Y
	}
	if v.Z > m {
		m = v.Z
	}
	return m
}
