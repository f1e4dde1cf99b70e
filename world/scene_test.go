package world

import (
	"testing"

	"github.com/daiyousei-qz/Usami/light"
	"github.com/daiyousei-qz/Usami/material"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/shape"
	"github.com/daiyousei-qz/Usami/texture"
)

func TestSceneIntersectFindsNearestPrimitive(t *testing.T) {
	s := New()

	near := primitive.New(shape.NewSphere(math.Vec3{X: 0, Y: 0, Z: 5}, 1), false)
	near.BindMaterial(material.NewDiffuse(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1})))
	far := primitive.New(shape.NewSphere(math.Vec3{X: 0, Y: 0, Z: 10}, 1), false)
	far.BindMaterial(material.NewDiffuse(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1})))

	s.AddPrimitive(near)
	s.AddPrimitive(far)
	s.Commit()

	ray := math.NewRay(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1})
	var hit primitive.Hit
	if !s.Intersect(ray, TravelDistanceMin, TravelDistanceMax, &hit) {
		t.Fatalf("expected a hit")
	}
	if hit.Primitive != near {
		t.Errorf("expected the nearer sphere to be the reported hit")
	}
}

func TestSceneIntersectOccludeDetectsAnyHit(t *testing.T) {
	s := New()
	blocker := primitive.New(shape.NewSphere(math.Vec3{X: 0, Y: 0, Z: 5}, 1), false)
	s.AddPrimitive(blocker)
	s.Commit()

	ray := math.NewRay(math.Vec3{}, math.Vec3{X: 0, Y: 0, Z: 1})
	if !s.IntersectOcclude(ray, TravelDistanceMin, TravelDistanceMax) {
		t.Errorf("expected occlusion test to report a hit")
	}

	miss := math.NewRay(math.Vec3{}, math.Vec3{X: 1, Y: 0, Z: 0})
	if s.IntersectOcclude(miss, TravelDistanceMin, TravelDistanceMax) {
		t.Errorf("expected occlusion test to report no hit along a missing ray")
	}
}

func TestSceneSampleLightWeightsByPower(t *testing.T) {
	s := New()
	dim := light.NewPoint(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 1, Y: 1, Z: 1})
	bright := light.NewPoint(math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 100, Y: 100, Z: 100})
	s.AddLight(dim)
	s.AddLight(bright)
	s.Commit()

	counts := [2]int{}
	for i := 0; i < 1000; i++ {
		u := (float32(i) + 0.5) / 1000
		l, pmf := s.SampleLight(u)
		if pmf <= 0 {
			t.Fatalf("expected a positive pmf from SampleLight")
		}
		if l == dim {
			counts[0]++
		} else if l == bright {
			counts[1]++
		}
	}
	if counts[1] <= counts[0] {
		t.Errorf("expected the brighter light to be sampled more often, got dim=%d bright=%d", counts[0], counts[1])
	}
}
