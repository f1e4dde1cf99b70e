package material

import (
	stdmath "math"
	"testing"

	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/texture"
	"github.com/daiyousei-qz/Usami/workspace"
)

func TestDiffuseProducesLambertian(t *testing.T) {
	ws := workspace.New()
	m := NewDiffuse(texture.NewConstant(math.Vec3{X: 0.5, Y: 0.5, Z: 0.5}))

	b := m.ComputeBsdf(ws, primitive.Hit{})
	if b.Type() != bsdf.DiffuseRefl {
		t.Errorf("expected DiffuseRefl type, got %v", b.Type())
	}

	wo := math.Vec3{X: 0, Y: 0, Z: 1}
	wi := math.Vec3{X: 0, Y: 0, Z: 1}
	f := b.Eval(wo, wi)
	expected := float32(0.5 / math.Pi)
	if stdmath.Abs(float64(f.X-expected)) > 1e-4 {
		t.Errorf("expected lambertian eval ~%v, got %v", expected, f.X)
	}
}

func TestStandardPureMetallicIsGlossyOnly(t *testing.T) {
	ws := workspace.New()
	s := NewStandard(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1}), 1.0, 0.3, 1.5, 0)

	b := s.ComputeBsdf(ws, primitive.Hit{})
	if b.Type() != bsdf.GlossyRefl {
		t.Errorf("expected pure metallic to yield only the glossy lobe, got type %v", b.Type())
	}
}

func TestStandardNonMetallicIsDiffuseOnly(t *testing.T) {
	ws := workspace.New()
	s := NewStandard(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1}), 0, 0.3, 1.5, 0)

	b := s.ComputeBsdf(ws, primitive.Hit{})
	if b.Type() != bsdf.DiffuseRefl {
		t.Errorf("expected zero metallic to yield only the diffuse lobe, got type %v", b.Type())
	}
}

func TestStandardPartialMetallicMixesBothLobes(t *testing.T) {
	ws := workspace.New()
	s := NewStandard(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1}), 0.5, 0.3, 1.5, 0)

	b := s.ComputeBsdf(ws, primitive.Hit{})
	mixType := b.Type()
	if !mixType.Contain(bsdf.Diffuse) || !mixType.Contain(bsdf.Glossy) {
		t.Errorf("expected a mix of diffuse and glossy, got type %v", mixType)
	}
}

func TestStandardTransmissionOverridesMetallic(t *testing.T) {
	ws := workspace.New()
	s := NewStandard(texture.NewConstant(math.Vec3{X: 1, Y: 1, Z: 1}), 1, 0, 1.5, 0.8)

	b := s.ComputeBsdf(ws, primitive.Hit{})
	if !b.Type().Contain(bsdf.Transmission) {
		t.Errorf("expected transmissive branch, got type %v", b.Type())
	}

	wo := math.Vec3{X: 0, Y: 0, Z: 1}
	_, pdf, _ := b.SampleAndEval(0.01, 0, wo)
	if pdf <= 0 {
		t.Errorf("expected a positive pdf from the transmissive branch")
	}
}
