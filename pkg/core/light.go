package core

import "math"

// Light is a scene light source: either a point light at Position or, when
// Directional is set, a light infinitely far away shining along Direction.
type Light struct {
	Position    Vec3    // Point light position (ignored for directional lights)
	Direction   Vec3    // Directional light direction, toward the scene
	Intensity   float64 // Scalar brightness
	Directional bool
}

// NewPointLight creates a point light at the given position
func NewPointLight(position Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}

// NewDirectionalLight creates a directional light shining along direction
func NewDirectionalLight(direction Vec3, intensity float64) Light {
	return Light{Direction: direction.Normalize(), Intensity: intensity, Directional: true}
}

// ToLight returns the unit direction from point toward the light and the
// distance to it. Directional lights are infinitely far away.
func (l Light) ToLight(point Vec3) (direction Vec3, distance float64) {
	if l.Directional {
		return l.Direction.Negate(), math.Inf(1)
	}
	offset := l.Position.Subtract(point)
	return offset.Normalize(), offset.Length()
}
