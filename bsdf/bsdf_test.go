package bsdf

import (
	stdmath "math"
	"testing"

	"github.com/daiyousei-qz/Usami/math"
)

func TestCreateBsdfCoordTransformRoundTrip(t *testing.T) {
	normals := []math.Vec3{
		{X: 0, Y: 0, Z: 1},
		{X: 1, Y: 0, Z: 0},
		{X: 0.3, Y: 0.4, Z: 0.866},
	}
	for _, n := range normals {
		nx, ny, nz := CreateBsdfCoordTransform(n)
		w := math.Vec3{X: 0.2, Y: -0.5, Z: 0.7}.Normalize()
		local := ToLocal(nx, ny, nz, w)
		back := ToWorld(nx, ny, nz, local)
		if back.Sub(w).Length() > 1e-4 {
			t.Errorf("round trip failed for n=%v: got %v, want %v", n, back, w)
		}
	}
}

func TestSameHemisphere(t *testing.T) {
	a := math.Vec3{X: 0, Y: 0, Z: 1}
	b := math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}
	c := math.Vec3{X: 0.5, Y: 0.5, Z: -0.5}
	if !SameHemisphere(a, b) {
		t.Errorf("expected same hemisphere")
	}
	if SameHemisphere(a, c) {
		t.Errorf("expected opposite hemisphere")
	}
}

func TestLambertianSampleMatchesPdfAndEval(t *testing.T) {
	l := NewLambertian(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5})
	wo := math.Vec3{X: 0, Y: 0, Z: 1}
	rng := math.NewRNG(42)

	for i := 0; i < 50; i++ {
		u0, u1 := rng.Next2D()
		wi, pdf, f := l.SampleAndEval(u0, u1, wo)
		if pdf <= 0 {
			t.Fatalf("expected positive pdf, got %v", pdf)
		}
		expectedPdf := l.Pdf(wo, wi)
		if stdmath.Abs(float64(pdf-expectedPdf)) > 1e-5 {
			t.Errorf("pdf mismatch: SampleAndEval=%v Pdf=%v", pdf, expectedPdf)
		}
		expectedF := l.Eval(wo, wi)
		if f.Sub(expectedF).Length() > 1e-5 {
			t.Errorf("eval mismatch: SampleAndEval=%v Eval=%v", f, expectedF)
		}
	}
}

func TestLambertianEnergyConservation(t *testing.T) {
	l := NewLambertian(math.Vec3{X: 0.9, Y: 0.9, Z: 0.9})
	wo := math.Vec3{X: 0, Y: 0, Z: 1}
	rng := math.NewRNG(7)

	const n = 20000
	var sum float32
	for i := 0; i < n; i++ {
		wi := math.SampleUniformHemisphere(rng.Next2D())
		f := l.Eval(wo, wi)
		pdf := math.UniformHemispherePdf()
		sum += f.X * AbsCosTheta(wi) / pdf
	}
	albedo := sum / n
	if albedo > 1.01 {
		t.Errorf("lambertian reflectance exceeds 1: got %v", albedo)
	}
}

func TestSpecularReflectionMirrorsAboutNormal(t *testing.T) {
	s := NewSpecularReflection(math.Vec3{X: 1, Y: 1, Z: 1})
	wo := math.Vec3{X: 0.3, Y: 0.4, Z: 0.866}.Normalize()
	wi, pdf, f := s.SampleAndEval(0, 0, wo)

	expected := math.Vec3{X: -wo.X, Y: -wo.Y, Z: wo.Z}
	if wi.Sub(expected).Length() > 1e-5 {
		t.Errorf("expected mirrored direction %v, got %v", expected, wi)
	}
	if pdf != 1 {
		t.Errorf("expected pdf=1, got %v", pdf)
	}
	if f != s.Albedo {
		t.Errorf("expected f=albedo, got %v", f)
	}
}

func TestSpecularTransmissionTotalInternalReflectionFallsBackToMirror(t *testing.T) {
	// steep grazing angle from the dense medium into a less dense one
	// triggers total internal reflection.
	s := NewSpecularTransmission(math.Vec3{X: 1, Y: 1, Z: 1}, 1.5, 1.0)
	wo := math.Vec3{X: 0.99, Y: 0, Z: 0.1411}.Normalize()

	wi, pdf, _ := s.SampleAndEval(0.99, 0, wo)
	expected := ReflectRayQuick(wo)
	if wi.Sub(expected).Length() > 1e-4 {
		t.Errorf("expected mirror fallback direction %v, got %v", expected, wi)
	}
	if pdf != 1 {
		t.Errorf("expected pdf=1 on TIR fallback, got %v", pdf)
	}
}

func TestMicrofacetReflectionEvalMatchesSample(t *testing.T) {
	dist := NewMicrofacetDistribution(0.3)
	fr := NewFresnelDielectric(1, 1.5)
	m := NewMicrofacetReflection(math.Vec3{X: 0.8, Y: 0.8, Z: 0.8}, fr, dist)

	wo := math.Vec3{X: 0, Y: 0, Z: 1}
	rng := math.NewRNG(99)
	for i := 0; i < 50; i++ {
		u0, u1 := rng.Next2D()
		wi, pdf, f := m.SampleAndEval(u0, u1, wo)
		if pdf == 0 {
			continue
		}
		expectedF := m.Eval(wo, wi)
		if f.Sub(expectedF).Length() > 1e-4 {
			t.Errorf("eval mismatch: sampled=%v direct=%v", f, expectedF)
		}
		expectedPdf := m.Pdf(wo, wi)
		if stdmath.Abs(float64(pdf-expectedPdf)) > 1e-4 {
			t.Errorf("pdf mismatch: sampled=%v direct=%v", pdf, expectedPdf)
		}
	}
}
