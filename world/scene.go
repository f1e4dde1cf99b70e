package world

import (
	"github.com/daiyousei-qz/Usami/bvh"
	"github.com/daiyousei-qz/Usami/light"
	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// TravelDistanceMin/Max bound every ray cast against the scene: min
// avoids immediate self-intersection at a shading point, max stands in
// for "infinity" for directional/infinite light visibility tests.
const (
	TravelDistanceMin = 1e-3
	TravelDistanceMax = 1e8
)

// Scene owns every primitive and light in the render, the acceleration
// structure over them, and a power-weighted distribution over lights.
// Named world rather than scene to avoid colliding with the loader's
// scene package (SceneModel, Node, Camera, Mesh).
type Scene struct {
	primitives  []*primitive.Primitive
	lights      []light.Light
	globalLight light.AreaOrInfiniteLight

	tree              *bvh.Tree
	lightDistribution math.DiscreteDistribution
}

func New() *Scene {
	return &Scene{}
}

func (s *Scene) AddPrimitive(p *primitive.Primitive) {
	s.primitives = append(s.primitives, p)
}

func (s *Scene) AddLight(l light.Light) {
	s.lights = append(s.lights, l)
}

// SetGlobalLight installs the light queried when a ray escapes the
// scene without hitting anything.
func (s *Scene) SetGlobalLight(l light.AreaOrInfiniteLight) {
	s.globalLight = l
}

func (s *Scene) GlobalLight() light.AreaOrInfiniteLight {
	return s.globalLight
}

func (s *Scene) Lights() []light.Light {
	return s.lights
}

// Commit finalizes the acceleration structure and rebuilds the light
// power distribution. It is not thread-safe and must complete before
// any Intersect call; the scene is immutable afterward.
func (s *Scene) Commit() {
	s.tree = bvh.Build(s.primitives)
	s.updateLightDistribution()
}

func (s *Scene) updateLightDistribution() {
	weights := make([]float32, len(s.lights))
	for i, l := range s.lights {
		weights[i] = l.Power().Length()
	}
	s.lightDistribution = math.NewDiscreteDistribution(weights)
}

// SampleLight draws a light weighted by power, for callers that want
// single-light importance sampling rather than the exhaustive loop the
// path-tracing integrator uses by default.
func (s *Scene) SampleLight(u float32) (light.Light, float32) {
	index, pmf := s.lightDistribution.Sample(u)
	return s.lights[index], pmf
}

func (s *Scene) Intersect(ray math.Ray, tMin, tMax float32, hit *primitive.Hit) bool {
	return s.tree.Intersect(ray, tMin, tMax, hit)
}

func (s *Scene) IntersectOcclude(ray math.Ray, tMin, tMax float32) bool {
	return s.tree.IntersectOcclude(ray, tMin, tMax)
}
