package light

import (
	stdmath "math"
	"testing"

	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/shape"
)

func hitAt(p math.Vec3) primitive.Hit {
	var h primitive.Hit
	h.Point = p
	h.Ns = math.Vec3{X: 0, Y: 0, Z: 1}
	return h
}

func TestPointLightInverseSquareFalloff(t *testing.T) {
	p := NewPoint(math.Vec3{X: 0, Y: 0, Z: 2}, math.Vec3{X: 10, Y: 10, Z: 10})
	s := p.Sample(hitAt(math.Vec3{X: 0, Y: 0, Z: 0}), 0, 0)

	expectedRadiance := float32(10) / 4 // distance 2, 1/d^2 = 1/4
	if stdmath.Abs(float64(s.Radiance.X-expectedRadiance)) > 1e-4 {
		t.Errorf("radiance: expected %v, got %v", expectedRadiance, s.Radiance.X)
	}
	if s.Pdf != 1 {
		t.Errorf("expected pdf=1 for delta light, got %v", s.Pdf)
	}
	expectedWi := math.Vec3{X: 0, Y: 0, Z: 1}
	if s.Wi.Sub(expectedWi).Length() > 1e-5 {
		t.Errorf("wi: expected %v, got %v", expectedWi, s.Wi)
	}
}

func TestSpotLightDirectionIsNormalizedTowardLight(t *testing.T) {
	// spot is directly above the shading point, pointing straight down,
	// wide cone: should illuminate.
	s := NewSpot(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{X: 0, Y: 0, Z: -1}, 0.5, math.Vec3{X: 1, Y: 1, Z: 1})
	sample := s.Sample(hitAt(math.Vec3{X: 0, Y: 0, Z: 0}), 0, 0)

	if sample.Wi.Length() < 0.99 || sample.Wi.Length() > 1.01 {
		t.Fatalf("expected unit-length wi, got length %v", sample.Wi.Length())
	}
	if sample.Radiance.X <= 0 {
		t.Errorf("expected illumination within the cone, got zero radiance")
	}
}

func TestSpotLightOutsideConeIsDark(t *testing.T) {
	s := NewSpot(math.Vec3{X: 0, Y: 0, Z: 5}, math.Vec3{X: 0, Y: 0, Z: -1}, 0.1, math.Vec3{X: 1, Y: 1, Z: 1})
	// shading point far off to the side, well outside a narrow cone
	sample := s.Sample(hitAt(math.Vec3{X: 10, Y: 0, Z: 0}), 0, 0)
	if sample.Radiance.X != 0 {
		t.Errorf("expected zero radiance outside cone, got %v", sample.Radiance)
	}
}

func TestDistantLightConstantDirection(t *testing.T) {
	d := NewDistant(math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 1, Y: 1, Z: 1}, 100)
	s1 := d.Sample(hitAt(math.Vec3{X: 0, Y: 0, Z: 0}), 0.1, 0.2)
	s2 := d.Sample(hitAt(math.Vec3{X: 5, Y: 5, Z: 5}), 0.9, 0.3)
	if s1.Wi != s2.Wi {
		t.Errorf("expected direction independent of shading point")
	}
	expected := math.Vec3{X: 0, Y: 0, Z: 1}
	if s1.Wi.Sub(expected).Length() > 1e-6 {
		t.Errorf("expected wi = -direction = %v, got %v", expected, s1.Wi)
	}
}

func TestDiffuseAreaOneSidedEmission(t *testing.T) {
	rect := shape.NewRect(math.Vec3{X: 0, Y: 0, Z: 5}, 2, 2)
	prim := primitive.New(rect, false)
	al := NewDiffuseArea(prim, math.Vec3{X: 1, Y: 1, Z: 1})
	prim.BindAreaLight(al)

	// shading point above the light: rect's normal is +z, so a point with
	// z > 5 sees the emitting front face.
	above := al.Sample(hitAt(math.Vec3{X: 0, Y: 0, Z: 10}), 0.5, 0.5)
	if above.Radiance.X <= 0 {
		t.Errorf("expected emission toward a point above the light, got %v", above.Radiance)
	}

	// shading point below the light, on the back side: a point with z < 5
	// sees the back face and gets no emission.
	below := al.Sample(hitAt(math.Vec3{X: 0, Y: 0, Z: 0}), 0.5, 0.5)
	if below.Radiance.X != 0 {
		t.Errorf("expected zero emission from the back face, got %v", below.Radiance)
	}
}

func TestDiffuseAreaPowerScalesWithArea(t *testing.T) {
	rect := shape.NewRect(math.Vec3{}, 2, 3)
	prim := primitive.New(rect, false)
	al := NewDiffuseArea(prim, math.Vec3{X: 2, Y: 2, Z: 2})

	expected := float32(2 * math.Pi * 6) // intensity * pi * area
	if stdmath.Abs(float64(al.Power().X-expected)) > 1e-3 {
		t.Errorf("power: expected %v, got %v", expected, al.Power().X)
	}
}

type constTexture struct{ v math.Vec3 }

func (c constTexture) Eval(uv, dx, dy math.Vec2) math.Vec3 { return c.v }

func TestInfiniteLightScalesByIntensity(t *testing.T) {
	inf := NewInfinite(constTexture{v: math.Vec3{X: 1, Y: 1, Z: 1}}, 2, 100)
	dir := math.Vec3{X: 0, Y: 0, Z: 1}
	radiance := inf.evalDirection(dir)
	expected := math.Vec3{X: 2, Y: 2, Z: 2}
	if radiance.Sub(expected).Length() > 1e-4 {
		t.Errorf("expected intensity-scaled radiance %v, got %v", expected, radiance)
	}
}

func TestInfiniteSampleStaysInUpperHemisphere(t *testing.T) {
	inf := NewInfinite(constTexture{v: math.Vec3{X: 1, Y: 1, Z: 1}}, 1, 100)
	rng := math.NewRNG(3)
	h := hitAt(math.Vec3{})
	for i := 0; i < 100; i++ {
		u0, u1 := rng.Next2D()
		s := inf.Sample(h, u0, u1)
		if s.Wi.Dot(h.Ns) < 0 {
			t.Fatalf("sampled direction fell below the shading hemisphere: %v", s.Wi)
		}
	}
}
