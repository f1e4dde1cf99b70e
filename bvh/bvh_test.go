package bvh

import (
	stdmath "math"
	"testing"

	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/shape"
)

func buildRandomSpherePrimitives(rng *math.RNG, n int) []*primitive.Primitive {
	prims := make([]*primitive.Primitive, n)
	for i := 0; i < n; i++ {
		x := rng.NextFloat()*10 - 5
		y := rng.NextFloat()*10 - 5
		z := rng.NextFloat()*10 - 5
		r := 0.1 + rng.NextFloat()*0.4
		s := shape.NewSphere(math.Vec3{X: x, Y: y, Z: z}, r)
		prims[i] = primitive.New(s, false)
	}
	return prims
}

func TestBvhMatchesNaiveOnRandomSpheres(t *testing.T) {
	rng := math.NewRNG(12345)
	prims := buildRandomSpherePrimitives(rng, 1000)

	tree := Build(prims)
	naive := primitive.NewNaiveComposite(prims)

	const numRays = 2000
	for i := 0; i < numRays; i++ {
		origin := math.Vec3{
			X: rng.NextFloat()*20 - 10,
			Y: rng.NextFloat()*20 - 10,
			Z: rng.NextFloat()*20 - 10,
		}
		dir := math.SampleUniformSphere(rng.Next2D())
		ray := math.NewRay(origin, dir)

		var bvhHit, naiveHit primitive.Hit
		bvhFound := tree.Intersect(ray, 1e-4, 1e30, &bvhHit)
		naiveFound := naive.Intersect(ray, 1e-4, 1e30, &naiveHit)

		if bvhFound != naiveFound {
			t.Fatalf("ray %d: hit mismatch bvh=%v naive=%v", i, bvhFound, naiveFound)
		}
		if bvhFound && stdmath.Abs(float64(bvhHit.T-naiveHit.T)) > 1e-4 {
			t.Fatalf("ray %d: t mismatch bvh=%v naive=%v", i, bvhHit.T, naiveHit.T)
		}
	}
}

func TestBvhBoundsContainAllPrimitives(t *testing.T) {
	rng := math.NewRNG(7)
	prims := buildRandomSpherePrimitives(rng, 200)
	tree := Build(prims)

	total := tree.Bounding()
	for _, p := range prims {
		b := p.Bounding()
		if b.Min.X < total.Min.X-1e-3 || b.Min.Y < total.Min.Y-1e-3 || b.Min.Z < total.Min.Z-1e-3 {
			t.Fatalf("primitive bounds not contained in tree bounds")
		}
		if b.Max.X > total.Max.X+1e-3 || b.Max.Y > total.Max.Y+1e-3 || b.Max.Z > total.Max.Z+1e-3 {
			t.Fatalf("primitive bounds not contained in tree bounds")
		}
	}
}
