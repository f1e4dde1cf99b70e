package bsdf

import "github.com/daiyousei-qz/Usami/math"

// Lambertian is a perfectly diffuse reflective Bsdf.
type Lambertian struct {
	Albedo math.Vec3
}

func NewLambertian(albedo math.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

func (l *Lambertian) Type() Type {
	return DiffuseRefl
}

func (l *Lambertian) Eval(wo, wi math.Vec3) math.Vec3 {
	if !SameHemisphere(wo, wi) {
		return math.Vec3{}
	}
	return l.Albedo.Mul(1 / math.Pi)
}

func (l *Lambertian) SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3) {
	wi = math.SampleCosineWeightedHemisphere(u0, u1)
	absWiZ := wi.Z
	if wo.Z < 0 {
		wi.Z = -wi.Z
	}

	pdf = math.CosineHemispherePdf(absWiZ)
	f = l.Albedo.Mul(1 / math.Pi)
	return
}

func (l *Lambertian) Pdf(wo, wi math.Vec3) float32 {
	if !SameHemisphere(wo, wi) {
		return 0
	}
	return math.CosineHemispherePdf(AbsCosTheta(wi))
}
