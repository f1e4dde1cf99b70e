package scene

import (
	"github.com/daiyousei-qz/Usami/core"
	"github.com/daiyousei-qz/Usami/math"
)

// SceneModel is the loaded, in-memory form of a scene file (glTF or OBJ):
// a node hierarchy, the set of materials referenced by its meshes, and
// any lights/cameras authored in the file. It is a pure data container —
// turning it into something that can be ray traced is the job of the
// world package, which walks the hierarchy and lowers each mesh node into
// primitives against a chosen material/BSDF factory.
type SceneModel struct {
	Root      *Node
	Materials map[string]*SceneMaterial
	Lights    []*LightData
	Cameras   []*Camera
}

// LightKind enumerates the authorable light types a scene file may carry.
type LightKind int

const (
	LightKindDirectional LightKind = iota
	LightKindPoint
	LightKindSpot
)

// LightData is a light as authored in a scene file, prior to being turned
// into one of the renderer's light.Light implementations. Direction is in
// the owning node's local space; world.Build resolves it, and takes the
// light's position, from the node's world transform when lowering the scene.
type LightData struct {
	Kind      LightKind
	Direction math.Vec3
	Color     core.Color
	Intensity float32
	Range     float32
	SpotAngle float32
}

func NewSceneModel() *SceneModel {
	return &SceneModel{
		Root:      NewNode("Root"),
		Materials: make(map[string]*SceneMaterial),
	}
}

func (s *SceneModel) AddNode(node *Node) {
	s.Root.AddChild(node)
}

func (s *SceneModel) RemoveNode(node *Node) {
	s.Root.RemoveChild(node)
}

// MeshNodes returns all visible nodes carrying a mesh.
func (s *SceneModel) MeshNodes() []*Node {
	var nodes []*Node
	s.Root.Traverse(func(node *Node) {
		if node.Visible && node.Mesh != nil {
			nodes = append(nodes, node)
		}
	})
	return nodes
}
