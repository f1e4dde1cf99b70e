package scene

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/texture"
)

// SceneMaterial is a material as authored in a scene file: the set of
// inputs a BSDF factory needs to build a Bsdf at a shading point, with no
// opinion yet about which BSDF model to use for it. material.FromScene
// turns one of these into a renderer material.Material.
type SceneMaterial struct {
	Name string

	BaseColor        math.Vec3
	BaseColorTexture texture.Texture // nil => use BaseColor

	Emissive        math.Vec3
	EmissiveTexture texture.Texture // nil => use Emissive

	Metallic  float32
	Roughness float32

	// Ior is the index of refraction for materials with Transmission > 0.
	Ior float32
	// Transmission is the fraction of light that refracts through the
	// surface rather than reflecting off it (0 = fully opaque).
	Transmission float32
}

func DefaultSceneMaterial() *SceneMaterial {
	return &SceneMaterial{
		Name:      "default",
		BaseColor: math.Vec3{X: 0.8, Y: 0.8, Z: 0.8},
		Roughness: 1,
		Ior:       1.5,
	}
}
