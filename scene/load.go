package scene

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load dispatches to LoadGLTF or LoadOBJ based on path's extension.
func Load(path string) (*SceneModel, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".gltf", ".glb":
		return LoadGLTF(path)
	case ".obj":
		return LoadOBJ(path)
	default:
		return nil, fmt.Errorf("scene: unrecognized scene file extension %q", ext)
	}
}
