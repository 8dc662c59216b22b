package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering. It is built once
// before rendering and never mutated afterwards, so rendering workers share
// it by reference without locking.
type Scene struct {
	Shapes      []geometry.Shape        // Objects in the scene, in insertion order
	Lights      []core.Light            // Lights in the scene
	Environment environment.Environment // Background for escaping rays
}

// NewScene creates an empty scene with the given environment
func NewScene(env environment.Environment) *Scene {
	if env == nil {
		env = environment.NewSolid(core.Vec3{})
	}
	return &Scene{
		Shapes:      make([]geometry.Shape, 0),
		Lights:      make([]core.Light, 0),
		Environment: env,
	}
}

// AddShape appends a shape to the scene. Insertion order is significant:
// when two shapes intersect a ray at numerically equal distance, the one
// added first wins, keeping renders reproducible.
func (s *Scene) AddShape(shape geometry.Shape) {
	s.Shapes = append(s.Shapes, shape)
}

// AddLight appends a light to the scene
func (s *Scene) AddLight(light core.Light) {
	s.Lights = append(s.Lights, light)
}

// Intersect finds the nearest shape hit by the ray within [tMin, tMax].
// Shapes are scanned in insertion order with a strict distance comparison,
// so the first-inserted shape wins ties.
func (s *Scene) Intersect(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range s.Shapes {
		// Strictly-closer check so an equal-distance hit from a later shape
		// cannot displace an earlier one.
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit && hit.T < closestSoFar {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}
