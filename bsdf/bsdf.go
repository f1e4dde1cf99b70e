package bsdf

import "github.com/daiyousei-qz/Usami/math"

// Type is a coarse bitmask description of a Bsdf's characteristics.
type Type int

const (
	None Type = 0

	Reflection   Type = 1 << 0
	Transmission Type = 1 << 1

	Diffuse  Type = 1 << 2
	Glossy   Type = 1 << 3
	Specular Type = 1 << 4

	Any           = Reflection | Transmission | Diffuse | Glossy | Specular
	DiffuseRefl   = Reflection | Diffuse
	GlossyRefl    = Reflection | Glossy
	SpecularRefl  = Reflection | Specular
	SpecularTrans = Reflection | Transmission | Specular
)

func (t Type) Also(other Type) Type {
	return t | other
}

func (t Type) Contain(flag Type) bool {
	return t&flag != 0
}

func (t Type) ContainReflection() bool {
	return t.Contain(Reflection)
}

func (t Type) ContainTransmission() bool {
	return t.Contain(Transmission)
}

// Bsdf is a bidirectional scattering distribution function, evaluated
// entirely in local shading coordinates where the surface normal is
// (0, 0, 1); everything above the z=0 plane is outside the surface. wi
// is the direction light departs toward (the reverse of incident light
// travel), matching wo's convention for ease of implementation.
type Bsdf interface {
	Type() Type

	// Eval returns the fraction of radiance along wi scattered into wo.
	Eval(wo, wi math.Vec3) math.Vec3

	// SampleAndEval samples an incident direction wi and evaluates the
	// Bsdf for it in one step, returning the scattered radiance fraction.
	SampleAndEval(u0, u1 float32, wo math.Vec3) (wi math.Vec3, pdf float32, f math.Vec3)

	// Pdf returns the probability density SampleAndEval would have
	// produced wi, given wo.
	Pdf(wo, wi math.Vec3) float32
}
