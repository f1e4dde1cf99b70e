package bsdf

import (
	stdmath "math"

	"github.com/daiyousei-qz/Usami/math"
)

// Fresnel is the Schlick approximation to the Fresnel reflectance curve,
// parameterized either by the two sides' refractive indices or directly
// by the normal-incidence reflectance f0 (supports colored conductors).
type Fresnel struct {
	f0 math.Vec3
}

func NewFresnelDielectric(etaI, etaT float32) Fresnel {
	r0 := (etaI - etaT) / (etaI + etaT)
	r0 = r0 * r0
	return Fresnel{f0: math.Vec3{X: r0, Y: r0, Z: r0}}
}

func NewFresnelF0(f0 math.Vec3) Fresnel {
	return Fresnel{f0: f0}
}

func (fr Fresnel) Eval(cosThetaI float32) math.Vec3 {
	x := 1 - cosThetaI
	pow5 := x * x * x * x * x
	one := math.Vec3{X: 1, Y: 1, Z: 1}
	return fr.f0.Add(one.Sub(fr.f0).Mul(pow5))
}

// MicrofacetDistribution is a GGX/Trowbridge-Reitz normal distribution
// with a Smith masking-shadowing term, parameterized by a perceptual
// Roughness in [0, 1] (alpha = roughness^2).
type MicrofacetDistribution struct {
	alpha float32
}

func NewMicrofacetDistribution(roughness float32) MicrofacetDistribution {
	return MicrofacetDistribution{alpha: roughness * roughness}
}

func (m MicrofacetDistribution) D(wh math.Vec3) float32 {
	cos2Theta := Cos2Theta(wh)

	var root float32
	if cos2Theta == 1 {
		root = 1 / m.alpha
	} else {
		root = m.alpha / (cos2Theta*(m.alpha*m.alpha-1) + 1)
	}
	return (root * root) / math.Pi
}

func (m MicrofacetDistribution) smithG1(v math.Vec3) float32 {
	tanTheta := TanTheta(v)
	root := m.alpha * tanTheta
	return 2 / (1 + sqrtf(1+root*root))
}

func (m MicrofacetDistribution) G(wo, wi math.Vec3) float32 {
	return m.smithG1(wo) * m.smithG1(wi)
}

// SampleWh importance-samples a microfacet normal from the GGX distribution.
func (m MicrofacetDistribution) SampleWh(u0, u1 float32) math.Vec3 {
	alpha2 := m.alpha * m.alpha
	cos2Theta := (1 - u0) / (u0*(alpha2-1) + 1)
	r := sqrtf(1 - cos2Theta)
	phi := u1 * 2 * math.Pi
	return math.Vec3{
		X: r * float32(stdmath.Cos(float64(phi))),
		Y: r * float32(stdmath.Sin(float64(phi))),
		Z: sqrtf(cos2Theta),
	}
}

func (m MicrofacetDistribution) Pdf(wh math.Vec3) float32 {
	return m.D(wh) * AbsCosTheta(wh)
}

// MicrofacetReflection is a Cook-Torrance glossy reflection Bsdf.
type MicrofacetReflection struct {
	Albedo       math.Vec3
	Fresnel      Fresnel
	Distribution MicrofacetDistribution
}

func NewMicrofacetReflection(albedo math.Vec3, fresnel Fresnel, dist MicrofacetDistribution) *MicrofacetReflection {
	return &MicrofacetReflection{Albedo: albedo, Fresnel: fresnel, Distribution: dist}
}

func (m *MicrofacetReflection) Type() Type {
	return GlossyRefl
}

func (m *MicrofacetReflection) Eval(wo, wi math.Vec3) math.Vec3 {
	if !SameHemisphere(wo, wi) {
		return math.Vec3{}
	}

	wh := wo.Add(wi).Normalize()
	d := m.Distribution.D(wh)
	f := m.Fresnel.Eval(wh.Dot(wi))
	g := m.Distribution.G(wo, wi)

	denom := 4 * CosTheta(wo) * CosTheta(wi)
	return m.Albedo.MulVec(f.Mul(d * g / denom))
}

func (m *MicrofacetReflection) SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3) {
	if wo.Z <= 0 {
		return math.Vec3{}, 0, math.Vec3{}
	}

	wh := m.Distribution.SampleWh(u0, u1)
	wiCand := ReflectRay(wo, wh)
	if wiCand.Z <= 0 {
		return math.Vec3{}, 0, math.Vec3{}
	}

	d := m.Distribution.D(wh)
	fr := m.Fresnel.Eval(wh.Dot(wiCand))
	g := m.Distribution.G(wo, wiCand)

	denom := 4 * CosTheta(wo) * CosTheta(wiCand)
	value := m.Albedo.MulVec(fr.Mul(d * g / denom))
	p := m.Pdf(wo, wiCand)

	wi = wiCand
	pdf = p
	f = value
	return
}

func (m *MicrofacetReflection) Pdf(wo, wi math.Vec3) float32 {
	if !SameHemisphere(wo, wi) {
		return 0
	}
	wh := wo.Add(wi).Normalize()
	return m.Distribution.Pdf(wh) / (4 * wh.Dot(wo))
}
