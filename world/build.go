package world

import (
	"github.com/daiyousei-qz/Usami/camera"
	"github.com/daiyousei-qz/Usami/core"
	"github.com/daiyousei-qz/Usami/light"
	"github.com/daiyousei-qz/Usami/material"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
	"github.com/daiyousei-qz/Usami/scene"
	"github.com/daiyousei-qz/Usami/shape"
)

// defaultWorldRadius stands in for the scene's bounding-sphere radius
// when computing a directional/infinite light's Power(). Only the
// power-weighted light distribution (exposed for future single-light
// sampling, unused by the default direct-light loop) depends on it, so a
// fixed estimate rather than an exact scene-bounds computation is fine.
const defaultWorldRadius = 1000

// Build walks an authored SceneModel's node hierarchy and lowers it into
// a committed, path-traceable Scene, plus the camera built from the
// model's first authored camera node (nil if the model has none). Every
// visible mesh node becomes one primitive.Primitive per triangle; a mesh
// using a material with non-zero emission additionally gets a
// DiffuseArea light bound to each of its triangles and registered with
// the scene, so it can both be hit directly and sampled as a light.
func Build(model *scene.SceneModel, width, height int) (*Scene, *camera.Camera) {
	w := New()
	defaultMaterial := material.FromScene(scene.DefaultSceneMaterial())

	var cam *camera.Camera
	model.Root.Traverse(func(node *scene.Node) {
		switch {
		case node.Mesh != nil && node.Visible:
			lowerMesh(w, model, node, defaultMaterial)
		case node.Light != nil:
			w.AddLight(lowerLight(node))
		case node.Camera != nil && cam == nil:
			cam = lowerCamera(node, width, height)
		}
	})

	w.Commit()
	return w, cam
}

func lowerMesh(w *Scene, model *scene.SceneModel, node *scene.Node, defaultMaterial primitive.Material) {
	mesh := node.Mesh
	worldMatrix := node.GetWorldMatrix()

	mat := defaultMaterial
	var emissive math.Vec3
	var emits bool
	if sm, ok := model.Materials[mesh.MaterialName]; ok && sm != nil {
		mat = material.FromScene(sm)
		emissive, emits = material.EmissiveIntensity(sm)
	}

	for i := 0; i < mesh.TriangleCount(); i++ {
		v0, v1, v2 := mesh.Triangle(i)

		tri := shape.NewTriangle(
			worldMatrix.MulVec3(v0.Position),
			worldMatrix.MulVec3(v1.Position),
			worldMatrix.MulVec3(v2.Position),
		)
		tri.N0 = transformDirection(worldMatrix, v0.Normal).Normalize()
		tri.N1 = transformDirection(worldMatrix, v1.Normal).Normalize()
		tri.N2 = transformDirection(worldMatrix, v2.Normal).Normalize()
		tri.UV0, tri.UV1, tri.UV2 = v0.UV, v1.UV, v2.UV

		p := primitive.New(tri, false)
		p.BindMaterial(mat)
		if emits {
			areaLight := light.NewDiffuseArea(p, emissive)
			p.BindAreaLight(areaLight)
			w.AddLight(areaLight)
		}
		w.AddPrimitive(p)
	}
}

func lowerLight(node *scene.Node) light.Light {
	ld := node.Light
	worldMatrix := node.GetWorldMatrix()

	pos := worldMatrix.MulVec3(math.Vec3{})
	dir := transformDirection(worldMatrix, ld.Direction).Normalize()
	intensity := colorToVec3(ld.Color).Mul(ld.Intensity)

	switch ld.Kind {
	case scene.LightKindPoint:
		return light.NewPoint(pos, intensity)
	case scene.LightKindSpot:
		return light.NewSpot(pos, dir, ld.SpotAngle, intensity)
	default: // LightKindDirectional
		return light.NewDistant(dir, intensity, defaultWorldRadius)
	}
}

func lowerCamera(node *scene.Node, width, height int) *camera.Camera {
	worldMatrix := node.GetWorldMatrix()

	pos := worldMatrix.MulVec3(math.Vec3{})
	forward := transformDirection(worldMatrix, math.Vec3Front).Normalize()
	up := transformDirection(worldMatrix, math.Vec3Up).Normalize()

	setting := camera.NewSetting(pos, forward, up, node.Camera.FOVY, node.Camera.AspectRatio)
	return camera.New(setting, width, height)
}

// transformDirection applies the linear part of m to v, leaving
// translation out: the right operation for normals and light/camera
// basis vectors, as opposed to Mat4.MulVec3's point transform.
func transformDirection(m math.Mat4, v math.Vec3) math.Vec3 {
	return m.MulVec(v.ToVec4(0)).ToVec3()
}

func colorToVec3(c core.Color) math.Vec3 {
	return math.Vec3{X: c.R, Y: c.G, Z: c.B}
}
