package bsdf

import "github.com/daiyousei-qz/Usami/math"

// SpecularReflection is a perfect mirror Bsdf.
type SpecularReflection struct {
	Albedo math.Vec3
}

func NewSpecularReflection(albedo math.Vec3) *SpecularReflection {
	return &SpecularReflection{Albedo: albedo}
}

func (s *SpecularReflection) Type() Type {
	return SpecularRefl
}

func (s *SpecularReflection) Eval(wo, wi math.Vec3) math.Vec3 {
	return math.Vec3{}
}

func (s *SpecularReflection) SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3) {
	wi = ReflectRayQuick(wo)
	pdf = 1
	f = s.Albedo
	return
}

func (s *SpecularReflection) Pdf(wo, wi math.Vec3) float32 {
	return 0
}

// SpecularTransmission is a dielectric interface that either refracts or
// totally-internally-reflects, chosen deterministically by Snell's law
// with a Schlick-approximated Fresnel term weighting reflection vs
// transmission probabilistically. EtaIn/EtaOut are the refractive
// indices of the medium wo's side and the far side respectively.
type SpecularTransmission struct {
	Albedo math.Vec3
	EtaIn  float32
	EtaOut float32
}

func NewSpecularTransmission(albedo math.Vec3, etaIn, etaOut float32) *SpecularTransmission {
	return &SpecularTransmission{Albedo: albedo, EtaIn: etaIn, EtaOut: etaOut}
}

func (s *SpecularTransmission) Type() Type {
	return SpecularTrans
}

func (s *SpecularTransmission) Eval(wo, wi math.Vec3) math.Vec3 {
	return math.Vec3{}
}

// SampleAndEval picks reflection or refraction, weighted by the Schlick
// Fresnel reflectance. On total internal reflection it falls back to a
// mirror bounce rather than returning a degenerate sample.
func (s *SpecularTransmission) SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3) {
	entering := CosTheta(wo) > 0

	etaI, etaT := s.EtaIn, s.EtaOut
	n := math.Vec3{X: 0, Y: 0, Z: 1}
	if !entering {
		etaI, etaT = s.EtaOut, s.EtaIn
		n = math.Vec3{X: 0, Y: 0, Z: -1}
	}
	eta := etaI / etaT

	cosThetaI := AbsCosTheta(wo)
	fr := Schlick(cosThetaI, eta)

	refracted, ok := RefractRay(wo, n, eta)
	if !ok {
		// total internal reflection: no transmitted ray exists, behave
		// like a mirror.
		wi = ReflectRayQuick(wo)
		pdf = 1
		f = s.Albedo
		return
	}

	if u0 < fr {
		wi = ReflectRayQuick(wo)
		pdf = fr
		f = s.Albedo.Mul(fr)
		return
	}

	wi = refracted
	pdf = 1 - fr
	f = s.Albedo.Mul(1 - fr)
	return
}

func (s *SpecularTransmission) Pdf(wo, wi math.Vec3) float32 {
	return 0
}
