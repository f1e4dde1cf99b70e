package camera

import (
	"testing"

	"github.com/daiyousei-qz/Usami/math"
)

func TestSpawnRayCenterPixelPointsForward(t *testing.T) {
	setting := NewSetting(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 1},
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Pi/2, 1,
	)
	cam := New(setting, 100, 100)

	ray := cam.SpawnRay(50, 50, math.Vec2{X: 0.5, Y: 0.5})
	if ray.Origin != setting.Position {
		t.Errorf("expected ray to originate at the camera position, got %v", ray.Origin)
	}

	dot := ray.Direction.Dot(setting.Forward)
	if dot < 0.99 {
		t.Errorf("expected the center pixel's ray to point close to forward, dot=%v dir=%v", dot, ray.Direction)
	}
}

func TestSpawnRayIsNormalized(t *testing.T) {
	setting := NewSetting(
		math.Vec3{X: 1, Y: 2, Z: -3},
		math.Vec3{X: 0, Y: 0, Z: 1},
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Pi/3, 1.5,
	)
	cam := New(setting, 64, 48)

	for _, px := range []int{0, 10, 63} {
		for _, py := range []int{0, 20, 47} {
			ray := cam.SpawnRay(px, py, math.Vec2{X: 0.3, Y: 0.7})
			length := ray.Direction.Length()
			if length < 0.999 || length > 1.001 {
				t.Errorf("pixel (%d,%d): expected unit-length direction, got length %v", px, py, length)
			}
		}
	}
}

func TestSpawnRayDivergesAcrossPixels(t *testing.T) {
	setting := NewSetting(
		math.Vec3{X: 0, Y: 0, Z: 0},
		math.Vec3{X: 0, Y: 0, Z: 1},
		math.Vec3{X: 0, Y: 1, Z: 0},
		math.Pi/2, 1,
	)
	cam := New(setting, 100, 100)

	left := cam.SpawnRay(0, 50, math.Vec2{X: 0.5, Y: 0.5})
	right := cam.SpawnRay(99, 50, math.Vec2{X: 0.5, Y: 0.5})

	if left.Direction == right.Direction {
		t.Errorf("expected opposite edges of the image to diverge")
	}
	// camera right is forward x up = -x here, so increasing pixel x
	// decreases ray direction x.
	if left.Direction.X <= right.Direction.X {
		t.Errorf("expected increasing pixel x to decrease ray direction x, left=%v right=%v", left.Direction.X, right.Direction.X)
	}
}
