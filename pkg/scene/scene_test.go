package scene

import (
	"math"
	"testing"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

var testMaterial = &core.Material{DiffuseColor: core.NewVec3(1, 0, 0), Diffuse: 1}

// fixedShape reports a hit at a fixed distance, for tie-break tests
type fixedShape struct {
	t        float64
	material *core.Material
}

func (f *fixedShape) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if f.t < tMin || f.t > tMax {
		return nil, false
	}
	hit := &core.HitRecord{T: f.t, Point: ray.At(f.t), Material: f.material}
	hit.SetFaceNormal(ray, ray.Direction.Negate())
	return hit, true
}

func TestScene_Intersect_NearestWins(t *testing.T) {
	s := NewScene(nil)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial))
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, testMaterial))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Intersect(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-4.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=4, got t=%f", hit.T)
	}
}

func TestScene_Intersect_TieBreaksByInsertionOrder(t *testing.T) {
	first := &core.Material{DiffuseColor: core.NewVec3(1, 0, 0)}
	second := &core.Material{DiffuseColor: core.NewVec3(0, 1, 0)}

	s := NewScene(nil)
	s.AddShape(&fixedShape{t: 5.0, material: first})
	s.AddShape(&fixedShape{t: 5.0, material: second})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := s.Intersect(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != first {
		t.Error("Equal-distance tie should go to the first-inserted shape")
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	s := NewScene(nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := s.Intersect(ray, 0.001, 1000.0); isHit {
		t.Error("Empty scene should never report a hit")
	}
}

func TestScene_Intersect_RespectsMaxDistance(t *testing.T) {
	s := NewScene(nil)
	s.AddShape(geometry.NewSphere(core.NewVec3(0, 0, -50), 1, testMaterial))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	if _, isHit := s.Intersect(ray, 0.001, 10.0); isHit {
		t.Error("Hit beyond tMax should be ignored")
	}
}

func TestNewScene_DefaultsToBlackEnvironment(t *testing.T) {
	s := NewScene(nil)
	if got := s.Environment.Sample(core.NewVec3(0, 0, -1)); got != (core.Vec3{}) {
		t.Errorf("Default environment should be black, got %v", got)
	}
}

func TestNewDefaultScene(t *testing.T) {
	s := NewDefaultScene(nil)

	if got := s.GetPrimitiveCount(); got != 6 {
		t.Errorf("Expected 6 primitives, got %d", got)
	}
	if len(s.Lights) != 3 {
		t.Errorf("Expected 3 lights, got %d", len(s.Lights))
	}

	// The ivory sphere sits in front of the camera
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-3, 0, -16))
	if _, isHit := s.Intersect(ray, 0.001, 1000.0); !isHit {
		t.Error("Ray toward the ivory sphere should hit")
	}

	if _, ok := s.Environment.(*environment.Solid); !ok {
		t.Errorf("Default environment should be solid, got %T", s.Environment)
	}
}
