package geometry

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool)
}
