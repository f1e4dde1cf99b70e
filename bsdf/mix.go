package bsdf

import "github.com/daiyousei-qz/Usami/math"

// Mix probabilistically blends two Bsdf lobes (e.g. a diffuse base layer
// and a glossy/specular layer), weighted by WeightA. It is the general
// technique a metallic-roughness style material needs to combine a
// diffuse and a microfacet (or transmissive) response into a single
// sampleable Bsdf.
type Mix struct {
	A, B    Bsdf
	WeightA float32
}

func NewMix(a, b Bsdf, weightA float32) *Mix {
	return &Mix{A: a, B: b, WeightA: weightA}
}

func (m *Mix) Type() Type {
	return m.A.Type().Also(m.B.Type())
}

func (m *Mix) Eval(wo, wi math.Vec3) math.Vec3 {
	fa := m.A.Eval(wo, wi).Mul(m.WeightA)
	fb := m.B.Eval(wo, wi).Mul(1 - m.WeightA)
	return fa.Add(fb)
}

func (m *Mix) SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3) {
	// reuse u0 to choose a lobe, rescale it so the chosen branch still
	// sees a uniform [0,1) sample.
	if u0 < m.WeightA {
		rescaled := u0 / m.WeightA
		wi, _, _ = m.A.SampleAndEval(rescaled, u1, wo)
	} else {
		rescaled := (u0 - m.WeightA) / (1 - m.WeightA)
		wi, _, _ = m.B.SampleAndEval(rescaled, u1, wo)
	}

	pdf = m.Pdf(wo, wi)
	f = m.Eval(wo, wi)
	return
}

func (m *Mix) Pdf(wo, wi math.Vec3) float32 {
	return m.WeightA*m.A.Pdf(wo, wi) + (1-m.WeightA)*m.B.Pdf(wo, wi)
}
