package core

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func vecsEqual(a, b Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

func TestVec3_BasicAlgebra(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	if got := a.Add(b); !vecsEqual(got, NewVec3(5, -3, 9), tolerance) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); !vecsEqual(got, NewVec3(-3, 7, -3), tolerance) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); !vecsEqual(got, NewVec3(2, 4, 6), tolerance) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Dot(b); math.Abs(got-12) > tolerance {
		t.Errorf("Dot: expected 12, got %f", got)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := NewVec3(1, 0, 0)
	y := NewVec3(0, 1, 0)

	if got := x.Cross(y); !vecsEqual(got, NewVec3(0, 0, 1), tolerance) {
		t.Errorf("x cross y: expected (0,0,1), got %v", got)
	}
	if got := y.Cross(x); !vecsEqual(got, NewVec3(0, 0, -1), tolerance) {
		t.Errorf("y cross x: expected (0,0,-1), got %v", got)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 0, 4).Normalize()
	if !vecsEqual(v, NewVec3(0.6, 0, 0.8), tolerance) {
		t.Errorf("Normalize: got %v", v)
	}
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Normalized length: expected 1, got %f", v.Length())
	}
}

func TestVec3_NormalizeZeroVector(t *testing.T) {
	v := NewVec3(0, 0, 0).Normalize()
	if !vecsEqual(v, NewVec3(0, 0, 0), tolerance) {
		t.Errorf("Zero vector should normalize to zero, got %v", v)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "45 degree incidence on ground plane",
			incident: NewVec3(1, -1, 0).Normalize(),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0).Normalize(),
		},
		{
			name:     "head-on reflection",
			incident: NewVec3(0, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(0, 1, 0),
		},
		{
			name:     "grazing along surface",
			incident: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.incident.Reflect(tt.normal)
			if !vecsEqual(got, tt.expected, tolerance) {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestVec3_Refract_StraightThrough(t *testing.T) {
	// Normal incidence passes straight through regardless of index
	incident := NewVec3(0, -1, 0)
	refracted, ok := incident.Refract(NewVec3(0, 1, 0), 1.5)
	if !ok {
		t.Fatal("Expected refraction, got total internal reflection")
	}
	if !vecsEqual(refracted, NewVec3(0, -1, 0), tolerance) {
		t.Errorf("Normal incidence should not bend, got %v", refracted)
	}
}

func TestVec3_Refract_SnellsLaw(t *testing.T) {
	// 45 degrees into glass (n=1.5): sin(theta_t) = sin(45)/1.5
	incident := NewVec3(1, -1, 0).Normalize()
	normal := NewVec3(0, 1, 0)

	refracted, ok := incident.Refract(normal, 1.5)
	if !ok {
		t.Fatal("Expected refraction, got total internal reflection")
	}
	if math.Abs(refracted.Length()-1.0) > 1e-6 {
		t.Errorf("Refracted direction should be unit length, got %f", refracted.Length())
	}

	sinIncident := math.Sqrt(1 - math.Pow(incident.Dot(normal), 2))
	sinRefracted := math.Sqrt(1 - math.Pow(refracted.Dot(normal), 2))
	if math.Abs(sinIncident-1.5*sinRefracted) > 1e-9 {
		t.Errorf("Snell's law violated: sin_i=%f, 1.5*sin_t=%f", sinIncident, 1.5*sinRefracted)
	}
}

func TestVec3_Refract_TotalInternalReflection(t *testing.T) {
	// Leaving glass (n=1.5) at a grazing angle exceeds the critical angle
	// (~41.8 degrees), so no refracted ray exists.
	incident := NewVec3(1, 0.2, 0).Normalize()
	normal := NewVec3(0, 1, 0) // incident exits along +Y side

	if _, ok := incident.Refract(normal, 1.5); ok {
		t.Error("Expected total internal reflection, got refraction")
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -2))
	if got := ray.At(5); !vecsEqual(got, NewVec3(1, 2, -2), tolerance) {
		t.Errorf("Expected (1,2,-2), got %v", got)
	}
}

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(0, 0, 0), NewVec3(0, 3, -4))
	if math.Abs(ray.Direction.Length()-1.0) > tolerance {
		t.Errorf("Ray direction should be unit length, got %f", ray.Direction.Length())
	}
}
