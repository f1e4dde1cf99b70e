package material

import (
	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/texture"
)

// Diffuse is a purely Lambertian material, grounded directly in the
// source's DiffuseMaterial.
type Diffuse struct {
	Albedo texture.Texture
}

func NewDiffuse(albedo texture.Texture) *Diffuse {
	return &Diffuse{Albedo: albedo}
}

func (d *Diffuse) ComputeBsdf(ws primitive.Allocator, hit primitive.Hit) bsdf.Bsdf {
	albedo := d.Albedo.Eval(hit.UV, math.Vec2{}, math.Vec2{})
	return ws.NewLambertian(albedo)
}

// Standard is a metallic-roughness material: it mixes a diffuse base
// layer with a GGX microfacet specular layer weighted by Metallic, or,
// when Transmission is non-zero, behaves as a smooth dielectric
// interface. This completes the source's MatalicRoughnessMaterial,
// left unimplemented there.
type Standard struct {
	BaseColor    texture.Texture
	Metallic     float32
	Roughness    float32
	Ior          float32
	Transmission float32
}

func NewStandard(baseColor texture.Texture, metallic, roughness, ior, transmission float32) *Standard {
	return &Standard{
		BaseColor:    baseColor,
		Metallic:     metallic,
		Roughness:    roughness,
		Ior:          ior,
		Transmission: transmission,
	}
}

func (s *Standard) ComputeBsdf(ws primitive.Allocator, hit primitive.Hit) bsdf.Bsdf {
	albedo := s.BaseColor.Eval(hit.UV, math.Vec2{}, math.Vec2{})

	if s.Transmission > 0 {
		return ws.NewSpecularTransmission(albedo, 1.0, s.Ior)
	}

	dist := bsdf.NewMicrofacetDistribution(s.Roughness)
	fr := bsdf.NewFresnelDielectric(1.0, s.Ior)
	specular := ws.NewMicrofacetReflection(albedo, fr, dist)

	if s.Metallic <= 0 {
		return ws.NewLambertian(albedo)
	}
	if s.Metallic >= 1 {
		return specular
	}

	diffuse := ws.NewLambertian(albedo)
	return ws.NewMix(specular, diffuse, s.Metallic)
}
