package workspace

import (
	"testing"

	"github.com/daiyousei-qz/Usami/bsdf"
	"github.com/daiyousei-qz/Usami/math"
)

func TestNewLambertianReusesSlotsAcrossReset(t *testing.T) {
	ws := New()

	a := ws.NewLambertian(math.Vec3{X: 1, Y: 0, Z: 0})
	if a.Albedo.X != 1 {
		t.Fatalf("expected albedo set on first allocation")
	}

	ws.Reset()
	b := ws.NewLambertian(math.Vec3{X: 0, Y: 1, Z: 0})

	if a != b {
		t.Errorf("expected Reset to reuse the first slot, got distinct pointers")
	}
	if a.Albedo.Y != 1 {
		t.Errorf("expected the slot's contents to reflect the new allocation")
	}
}

func TestPoolsAreIndependentByType(t *testing.T) {
	ws := New()

	l := ws.NewLambertian(math.Vec3{X: 1, Y: 1, Z: 1})
	s := ws.NewSpecularReflection(math.Vec3{X: 1, Y: 1, Z: 1})

	var bl bsdf.Bsdf = l
	var bs bsdf.Bsdf = s
	if bl.Type() == bs.Type() {
		t.Errorf("expected distinct bsdf types from distinct pools")
	}
}

func TestMultipleAllocationsWithinOneRayStayDistinct(t *testing.T) {
	ws := New()
	a := ws.NewLambertian(math.Vec3{X: 1, Y: 0, Z: 0})
	b := ws.NewLambertian(math.Vec3{X: 0, Y: 1, Z: 0})

	if a == b {
		t.Fatalf("expected distinct slots for two allocations before Reset")
	}
	if a.Albedo.X != 1 || b.Albedo.Y != 1 {
		t.Errorf("allocation contents got mixed up: a=%v b=%v", a.Albedo, b.Albedo)
	}
}
