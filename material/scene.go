package material

import (
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/scene"
	"github.com/daiyousei-qz/Usami/texture"
)

// FromScene turns an authored SceneMaterial into a renderer material: a
// pure Lambertian when the surface carries no metalness or transmission,
// otherwise the full metallic-roughness Standard model.
func FromScene(sm *scene.SceneMaterial) primitive.Material {
	tex := sm.BaseColorTexture
	if tex == nil {
		tex = texture.NewConstant(sm.BaseColor)
	}

	if sm.Metallic <= 0 && sm.Transmission <= 0 {
		return NewDiffuse(tex)
	}
	return NewStandard(tex, sm.Metallic, sm.Roughness, sm.Ior, sm.Transmission)
}

// EmissiveIntensity resolves a SceneMaterial's emission to a single
// constant radiance value, sampling EmissiveTexture at its center uv when
// present. ok is false when the material doesn't emit, so callers can
// skip binding an area light entirely.
func EmissiveIntensity(sm *scene.SceneMaterial) (intensity math.Vec3, ok bool) {
	intensity = sm.Emissive
	if sm.EmissiveTexture != nil {
		intensity = sm.EmissiveTexture.Eval(math.Vec2{X: 0.5, Y: 0.5}, math.Vec2{}, math.Vec2{})
	}
	return intensity, intensity != (math.Vec3{})
}
