package shape

import (
	stdmath "math"
	"testing"

	"github.com/daiyousei-qz/Usami/math"
)

func TestSphereIntersectNormalMatchesSurface(t *testing.T) {
	s := NewSphere(math.Vec3{X: 0, Y: 0, Z: 0}, 2)
	ray := math.NewRay(math.Vec3{X: 0, Y: 0, Z: -10}, math.Vec3{X: 0, Y: 0, Z: 1})

	var isect math.Intersection
	if !s.Intersect(ray, 0, 1e30, &isect) {
		t.Fatalf("expected hit")
	}
	if stdmath.Abs(float64(isect.T-8)) > 1e-3 {
		t.Errorf("t: expected ~8, got %v", isect.T)
	}
	expectedN := math.Vec3{X: 0, Y: 0, Z: -1}
	if isect.Ng.Sub(expectedN).Length() > 1e-4 {
		t.Errorf("normal: expected %v, got %v", expectedN, isect.Ng)
	}
	if stdmath.Abs(float64(isect.Ng.Length()-1)) > 1e-4 {
		t.Errorf("normal not unit length: %v", isect.Ng.Length())
	}
}

func TestSphereAreaIsTrueSurfaceArea(t *testing.T) {
	s := NewSphere(math.Vec3{}, 3)
	expected := float32(4 * math.Pi * 9)
	if stdmath.Abs(float64(s.Area()-expected)) > 1e-2 {
		t.Errorf("Area: expected %v, got %v", expected, s.Area())
	}
}

func TestSphereSamplePointLiesOnSurface(t *testing.T) {
	s := NewSphere(math.Vec3{X: 1, Y: 2, Z: 3}, 4)
	rng := math.NewRNG(1)
	for i := 0; i < 100; i++ {
		u0, u1 := rng.Next2D()
		p, n, pdf := s.SamplePoint(u0, u1)
		dist := p.Sub(s.Center).Length()
		if stdmath.Abs(float64(dist-4)) > 1e-3 {
			t.Fatalf("sampled point not on sphere: dist=%v", dist)
		}
		if stdmath.Abs(float64(n.Length()-1)) > 1e-4 {
			t.Fatalf("sampled normal not unit length")
		}
		if pdf != 1/s.Area() {
			t.Fatalf("pdf: expected %v, got %v", 1/s.Area(), pdf)
		}
	}
}

func TestTriangleIntersectBarycentric(t *testing.T) {
	tri := NewTriangle(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	ray := math.NewRay(math.Vec3{X: 0.2, Y: 0.2, Z: -1}, math.Vec3{X: 0, Y: 0, Z: 1})

	var isect math.Intersection
	if !tri.Intersect(ray, 0, 1e30, &isect) {
		t.Fatalf("expected hit inside triangle")
	}
	if stdmath.Abs(float64(isect.Point.X-0.2)) > 1e-4 || stdmath.Abs(float64(isect.Point.Y-0.2)) > 1e-4 {
		t.Errorf("hit point: expected (0.2,0.2,0), got %v", isect.Point)
	}
	expectedNg := math.Vec3{X: 0, Y: 0, Z: 1}
	if isect.Ng.Sub(expectedNg).Length() > 1e-4 {
		t.Errorf("normalized geometric normal: expected %v, got %v", expectedNg, isect.Ng)
	}
}

func TestTriangleMissOutsideBounds(t *testing.T) {
	tri := NewTriangle(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 1, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 1, Z: 0},
	)
	ray := math.NewRay(math.Vec3{X: 2, Y: 2, Z: -1}, math.Vec3{X: 0, Y: 0, Z: 1})
	var isect math.Intersection
	if tri.Intersect(ray, 0, 1e30, &isect) {
		t.Errorf("expected miss outside triangle")
	}
}

func TestDiskAreaVsSamplePdfQuirk(t *testing.T) {
	d := NewDisk(math.Vec3{}, 3)
	trueArea := float32(math.Pi * 9)
	if stdmath.Abs(float64(d.Area()-trueArea)) > 1e-3 {
		t.Errorf("Area: expected true area %v, got %v", trueArea, d.Area())
	}

	_, _, pdf := d.SamplePoint(0.5, 0.5)
	legacyPdf := float32(1 / (2 * math.Pi * d.Radius))
	if pdf != legacyPdf {
		t.Errorf("SamplePoint pdf carries the documented legacy formula: expected %v, got %v", legacyPdf, pdf)
	}
	if pdf == 1/d.Area() {
		t.Errorf("pdf unexpectedly matches true area reciprocal; quirk regressed")
	}
}

func TestRectIntersectAndSample(t *testing.T) {
	r := NewRect(math.Vec3{X: 0, Y: 0, Z: 5}, 4, 2)
	ray := math.NewRay(math.Vec3{X: 1, Y: 0.5, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1})

	var isect math.Intersection
	if !r.Intersect(ray, 0, 1e30, &isect) {
		t.Fatalf("expected hit")
	}
	if stdmath.Abs(float64(isect.T-5)) > 1e-4 {
		t.Errorf("t: expected 5, got %v", isect.T)
	}

	rng := math.NewRNG(7)
	for i := 0; i < 20; i++ {
		u0, u1 := rng.Next2D()
		p, _, pdf := r.SamplePoint(u0, u1)
		if p.Z != 5 {
			t.Fatalf("sampled point off the rect's plane: %v", p)
		}
		if pdf != 1/r.Area() {
			t.Fatalf("pdf: expected %v, got %v", 1/r.Area(), pdf)
		}
	}
}
