package geometry

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point    core.Vec3 // A point on the plane
	Normal   core.Vec3 // Normal vector (should be normalized)
	Material *core.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material *core.Material) *Plane {
	return &Plane{
		Point:    point,
		Normal:   normal.Normalize(),
		Material: material,
	}
}

// Hit tests if a ray intersects with the plane
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	denominator := ray.Direction.Dot(p.Normal)

	// Ray is parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	// t = (point_on_plane - ray_origin) · normal / (ray_direction · normal)
	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return nil, false
	}

	hitRecord := &core.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Material: p.Material,
	}
	hitRecord.SetFaceNormal(ray, p.Normal)

	return hitRecord, true
}
