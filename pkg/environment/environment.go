// Package environment provides background color for rays that escape the
// scene without hitting any primitive. Environments are indexed by ray
// direction only, are immutable, and are safe for concurrent sampling.
package environment

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Environment supplies a color for a unit direction
type Environment interface {
	Sample(direction core.Vec3) core.Vec3
}

// Solid is a constant-color environment
type Solid struct {
	Color core.Vec3
}

// NewSolid creates a solid-color environment
func NewSolid(color core.Vec3) *Solid {
	return &Solid{Color: color}
}

// Sample returns the constant color for any direction
func (s *Solid) Sample(direction core.Vec3) core.Vec3 {
	return s.Color
}

// Gradient is a vertical sky gradient environment
type Gradient struct {
	TopColor    core.Vec3
	BottomColor core.Vec3
}

// NewGradient creates a gradient environment
func NewGradient(topColor, bottomColor core.Vec3) *Gradient {
	return &Gradient{TopColor: topColor, BottomColor: bottomColor}
}

// Sample blends between bottom and top color by direction height
func (g *Gradient) Sample(direction core.Vec3) core.Vec3 {
	t := 0.5 * (direction.Normalize().Y + 1.0) // Map Y from [-1,1] to [0,1]
	return g.BottomColor.Multiply(1.0 - t).Add(g.TopColor.Multiply(t))
}
