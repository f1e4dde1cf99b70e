package scene

import (
	remath "github.com/daiyousei-qz/Usami/math"
)

// Camera is a camera as authored in a scene file: a field of view and
// clip planes attached to a node. The node's world transform supplies
// position and orientation; lowering a Camera into the renderer's
// camera.Setting happens in the world package, which reads the
// owning node's world-space position/forward/up directly.
type Camera struct {
	FOVY        float32
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32
}

func NewCamera(fovY, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		FOVY:        fovY,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
	}
}

// LookAtRotation derives a world-space orientation quaternion for a
// camera node placed at eye and aimed at target, per the standard
// right-handed look-at convention.
func LookAtRotation(eye, target, up remath.Vec3) remath.Quaternion {
	forward := target.Sub(eye).Normalize()
	right := up.Cross(forward).Normalize()
	newUp := forward.Cross(right)

	m := remath.Mat4{
		{right.X, newUp.X, -forward.X, 0},
		{right.Y, newUp.Y, -forward.Y, 0},
		{right.Z, newUp.Z, -forward.Z, 0},
		{0, 0, 0, 1},
	}
	return remath.QuaternionFromMat4(m)
}
