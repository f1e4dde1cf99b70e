package integrator

import (
	"testing"

	"github.com/daiyousei-qz/Usami/light"
	"github.com/daiyousei-qz/Usami/material"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/shape"
	"github.com/daiyousei-qz/Usami/texture"
	"github.com/daiyousei-qz/Usami/workspace"
	"github.com/daiyousei-qz/Usami/world"
)

func newLitSphereScene() *world.Scene {
	scn := world.New()

	sphere := primitive.New(shape.NewSphere(math.Vec3{X: 0, Y: 0, Z: 5}, 1), false)
	sphere.BindMaterial(material.NewDiffuse(texture.NewConstant(math.Vec3{X: 0.8, Y: 0.8, Z: 0.8})))
	scn.AddPrimitive(sphere)

	scn.AddLight(light.NewPoint(math.Vec3{X: 0, Y: 5, Z: 5}, math.Vec3{X: 50, Y: 50, Z: 50}))
	scn.Commit()
	return scn
}

func TestLiReturnsPositiveRadianceForLitSurface(t *testing.T) {
	scn := newLitSphereScene()
	ws := workspace.New()
	rng := math.NewRNG(1)
	pt := NewPathTracing(2, 6)

	ray := math.NewRay(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1})
	result := pt.Li(scn, ws, rng, ray)

	if result.X <= 0 || result.Y <= 0 || result.Z <= 0 {
		t.Errorf("expected positive radiance reflecting off the lit sphere, got %v", result)
	}
}

func TestLiReturnsZeroWhenRayMissesEverything(t *testing.T) {
	scn := newLitSphereScene()
	ws := workspace.New()
	rng := math.NewRNG(1)
	pt := NewPathTracing(2, 6)

	ray := math.NewRay(math.Vec3{}, math.Vec3{X: 1, Y: 0, Z: 0})
	result := pt.Li(scn, ws, rng, ray)

	if result != (math.Vec3{}) {
		t.Errorf("expected zero radiance for a ray that hits nothing and has no global light, got %v", result)
	}
}

func TestLiUsesGlobalLightOnMiss(t *testing.T) {
	scn := world.New()
	scn.SetGlobalLight(light.NewInfinite(texture.NewConstant(math.Vec3{X: 2, Y: 2, Z: 2}), 1, 100))
	scn.Commit()

	ws := workspace.New()
	rng := math.NewRNG(1)
	pt := NewPathTracing(2, 6)

	ray := math.NewRay(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1})
	result := pt.Li(scn, ws, rng, ray)

	if result.X <= 0 {
		t.Errorf("expected the global light's constant radiance on a miss, got %v", result)
	}
}

func TestLiDoesNotProduceNaNOverManySamples(t *testing.T) {
	scn := newLitSphereScene()
	ws := workspace.New()
	pt := NewPathTracing(2, 6)

	for i := 0; i < 200; i++ {
		rng := math.NewRNG(uint64(i + 1))
		ray := math.NewRay(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1})
		result := pt.Li(scn, ws, rng, ray)
		if result.X != result.X || result.Y != result.Y || result.Z != result.Z {
			t.Fatalf("seed %d: got NaN radiance %v", i, result)
		}
	}
}
