// Package camera turns an authored viewpoint (position, look direction,
// field of view) into primary rays through a pixel grid. It generalizes
// the teacher's rasterizer camera into the one operation a path tracer
// actually needs: SpawnRay.
package camera

import (
	"github.com/daiyousei-qz/Usami/math"
)

// Setting is a camera as placed in world space, independent of any
// particular image resolution.
type Setting struct {
	Position math.Vec3
	// Forward is the camera's look direction, already normalized by NewSetting.
	Forward math.Vec3
	// Up is the camera's upward reference; not necessarily orthogonal to
	// Forward, as with the authored "lookup" vector it is derived from.
	Up math.Vec3

	// FovY is the vertical field of view, in radians.
	FovY float32
	// Aspect is the image-plane width / height ratio;
	// tan(fov_x/2) = Aspect * tan(FovY/2).
	Aspect float32
}

func NewSetting(position, lookat, lookup math.Vec3, fovY, aspect float32) Setting {
	return Setting{
		Position: position,
		Forward:  lookat.Normalize(),
		Up:       lookup,
		FovY:     fovY,
		Aspect:   aspect,
	}
}

// Camera generates primary rays for a fixed pixel resolution. It
// precomputes the raster-to-world transform once so SpawnRay is a single
// matrix application plus a subtraction and normalize.
type Camera struct {
	setting       Setting
	width         int
	height        int
	rasterToWorld math.Mat4
}

// Near/far only shape the depth mapping of the intermediate projection
// matrix; a path tracer never reads depth, so any positive near < far
// works. Kept fixed rather than exposed, since no caller has a reason to
// vary them.
const (
	zNear = 1e-2
	zFar  = 1e4
)

func New(setting Setting, width, height int) *Camera {
	worldToCamera := math.Mat4LookAt(setting.Position, setting.Position.Add(setting.Forward), setting.Up)
	cameraToNDC := math.Mat4Perspective(setting.FovY, setting.Aspect, zNear, zFar)

	screenTransform := math.Mat4Scale(math.Vec3{X: 1, Y: -1, Z: 1}).
		Mul(math.Mat4Translation(math.Vec3{X: 1, Y: 1, Z: 0})).
		Mul(math.Mat4Scale(math.Vec3{X: float32(width) / 2, Y: float32(height) / 2, Z: 1}))

	worldToRaster := worldToCamera.Mul(cameraToNDC).Mul(screenTransform)

	return &Camera{
		setting:       setting,
		width:         width,
		height:        height,
		rasterToWorld: worldToRaster.Inverse(),
	}
}

func (c *Camera) Width() int  { return c.width }
func (c *Camera) Height() int { return c.height }

// SpawnRay generates the primary ray through pixel (px, py), jittered
// within the pixel by sample (each component in [0, 1)) for
// antialiasing. The outer sampling loop owns the jitter sequence; this
// only turns one sample into one ray.
func (c *Camera) SpawnRay(px, py int, sample math.Vec2) math.Ray {
	x := float32(px) + sample.X - 0.5
	y := float32(py) + sample.Y - 0.5

	pointOnNearPlane := c.rasterToWorld.MulVec3(math.Vec3{X: x, Y: y, Z: 0})
	dir := pointOnNearPlane.Sub(c.setting.Position).Normalize()

	return math.NewRay(c.setting.Position, dir)
}
