package world

import (
	"testing"

	"github.com/daiyousei-qz/Usami/core"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/scene"
)

func triangleVertices() []core.Vertex {
	return []core.Vertex{
		{Position: math.Vec3{X: 0, Y: 0, Z: 0}},
		{Position: math.Vec3{X: 1, Y: 0, Z: 0}},
		{Position: math.Vec3{X: 0, Y: 1, Z: 0}},
	}
}

func TestBuildLowersMeshIntoPrimitives(t *testing.T) {
	model := scene.NewSceneModel()
	node := scene.NewNode("tri")
	node.Mesh = scene.CreateMeshFromData("tri", triangleVertices(), nil)
	model.AddNode(node)

	w, cam := Build(model, 64, 64)

	if len(w.primitives) != 1 {
		t.Fatalf("expected 1 lowered primitive, got %d", len(w.primitives))
	}
	if cam != nil {
		t.Errorf("expected nil camera when the model authors none")
	}
	if w.primitives[0].GetMaterial() == nil {
		t.Errorf("expected the default material to be bound when no material matches")
	}
}

func TestBuildBindsEmissiveMeshAsAreaLight(t *testing.T) {
	model := scene.NewSceneModel()
	model.Materials["glow"] = &scene.SceneMaterial{
		Name:     "glow",
		Emissive: math.Vec3{X: 5, Y: 5, Z: 5},
	}

	node := scene.NewNode("light-mesh")
	mesh := scene.CreateMeshFromData("light-mesh", triangleVertices(), nil)
	mesh.MaterialName = "glow"
	node.Mesh = mesh
	model.AddNode(node)

	w, _ := Build(model, 64, 64)

	if len(w.lights) != 1 {
		t.Fatalf("expected the emissive triangle to register one area light, got %d", len(w.lights))
	}
	if w.primitives[0].GetAreaLight() == nil {
		t.Errorf("expected the emissive primitive to carry a bound area light")
	}
}

func TestBuildLowersPointLightNode(t *testing.T) {
	model := scene.NewSceneModel()
	node := scene.NewNode("light")
	node.SetPosition(math.Vec3{X: 0, Y: 3, Z: 0})
	node.Light = &scene.LightData{
		Kind:      scene.LightKindPoint,
		Color:     core.ColorWhite,
		Intensity: 10,
	}
	model.AddNode(node)

	w, _ := Build(model, 64, 64)

	if len(w.lights) != 1 {
		t.Fatalf("expected 1 lowered light, got %d", len(w.lights))
	}
	power := w.lights[0].Power()
	if power.X <= 0 {
		t.Errorf("expected positive power from a white 10-intensity point light, got %v", power)
	}
}

func TestBuildLowersCameraNode(t *testing.T) {
	model := scene.NewSceneModel()
	node := scene.NewNode("cam")
	node.SetPosition(math.Vec3{X: 0, Y: 0, Z: -5})
	node.Camera = scene.NewCamera(math.Pi/2, 1.5, 0.1, 100)
	model.AddNode(node)

	_, cam := Build(model, 320, 200)

	if cam == nil {
		t.Fatalf("expected a camera to be lowered from the authored camera node")
	}
	if cam.Width() != 320 || cam.Height() != 200 {
		t.Errorf("expected camera resolution to match the requested size, got %dx%d", cam.Width(), cam.Height())
	}
}
