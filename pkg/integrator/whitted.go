// Package integrator computes ray colors. The Whitted integrator shades a
// hit point with Phong local illumination plus hard shadows, then recurses
// into mirror reflection and Snell refraction until the depth ceiling is
// reached or a ray escapes into the environment.
package integrator

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

const (
	// surfaceBias displaces secondary ray origins off the surface to avoid
	// immediate self-intersection from floating-point error
	surfaceBias = 1e-3

	// tMinHit rejects intersections essentially at a ray's origin
	tMinHit = 1e-4

	// maxTraceDistance bounds how far any ray is traced
	maxTraceDistance = 1e9
)

// WhittedIntegrator recursively traces reflection and refraction rays with a
// hard depth ceiling. It holds no mutable state, so one instance is shared
// by all rendering workers.
type WhittedIntegrator struct {
	maxDepth int
}

// NewWhittedIntegrator creates an integrator with the given recursion depth
func NewWhittedIntegrator(maxDepth int) *WhittedIntegrator {
	if maxDepth < 1 {
		maxDepth = 1
	}
	return &WhittedIntegrator{maxDepth: maxDepth}
}

// MaxDepth returns the recursion depth ceiling
func (wi *WhittedIntegrator) MaxDepth() int {
	return wi.maxDepth
}

// RayColor computes the color seen along a primary ray
func (wi *WhittedIntegrator) RayColor(ray core.Ray, s *scene.Scene) core.Vec3 {
	return wi.rayColor(ray, s, wi.maxDepth)
}

// rayColor is the recursive trace. depth counts down; at zero the ray is
// resolved against the environment only.
func (wi *WhittedIntegrator) rayColor(ray core.Ray, s *scene.Scene, depth int) core.Vec3 {
	if depth <= 0 {
		return s.Environment.Sample(ray.Direction)
	}

	hit, isHit := s.Intersect(ray, tMinHit, maxTraceDistance)
	if !isHit {
		return s.Environment.Sample(ray.Direction)
	}

	material := hit.Material
	local := wi.localIllumination(ray, s, hit)

	reflectivity := material.Reflectivity
	transparency := material.Transparency

	color := local.Multiply(math.Max(0, 1-reflectivity-transparency))

	if reflectivity > 0 {
		reflectDir := ray.Direction.Reflect(hit.Normal).Normalize()
		reflectRay := core.Ray{
			Origin:    offsetOrigin(hit.Point, hit.Normal, reflectDir),
			Direction: reflectDir,
		}
		color = color.Add(wi.rayColor(reflectRay, s, depth-1).Multiply(reflectivity))
	}

	if transparency > 0 {
		// Refract expects the geometric outward normal; flip back when the
		// ray hit the inside of the surface.
		outwardNormal := hit.Normal
		if !hit.FrontFace {
			outwardNormal = hit.Normal.Negate()
		}
		if refractDir, ok := ray.Direction.Refract(outwardNormal, material.RefractiveIndex); ok {
			refractDir = refractDir.Normalize()
			refractRay := core.Ray{
				Origin:    offsetOrigin(hit.Point, hit.Normal, refractDir),
				Direction: refractDir,
			}
			color = color.Add(wi.rayColor(refractRay, s, depth-1).Multiply(transparency))
		}
		// Total internal reflection drops the refracted term entirely
	}

	return color
}

// localIllumination sums the Phong diffuse and specular terms over every
// light that is not occluded, plus a constant ambient fill.
func (wi *WhittedIntegrator) localIllumination(ray core.Ray, s *scene.Scene, hit *core.HitRecord) core.Vec3 {
	material := hit.Material
	diffuseIntensity := 0.0
	specularIntensity := 0.0

	for _, light := range s.Lights {
		lightDir, lightDistance := light.ToLight(hit.Point)
		if wi.occluded(s, hit, lightDir, lightDistance) {
			continue
		}

		diffuseIntensity += light.Intensity * math.Max(0, lightDir.Dot(hit.Normal))

		specularity := math.Max(0, lightDir.Reflect(hit.Normal).Dot(ray.Direction))
		if specularity > 0 && material.SpecularExponent > 0 {
			specularIntensity += math.Pow(specularity, material.SpecularExponent) * light.Intensity
		}
	}

	diffuse := material.DiffuseColor.Multiply(diffuseIntensity * material.Diffuse)
	specular := core.NewVec3(1, 1, 1).Multiply(specularIntensity * material.Specular)
	ambient := material.DiffuseColor.Multiply(material.Ambient)

	return diffuse.Add(specular).Add(ambient)
}

// occluded reports whether anything blocks the path from the hit point to a
// light. Shadows are binary: transparent occluders block light fully.
func (wi *WhittedIntegrator) occluded(s *scene.Scene, hit *core.HitRecord, lightDir core.Vec3, lightDistance float64) bool {
	shadowRay := core.Ray{
		Origin:    offsetOrigin(hit.Point, hit.Normal, lightDir),
		Direction: lightDir,
	}
	shadowHit, isHit := s.Intersect(shadowRay, tMinHit, math.Min(lightDistance, maxTraceDistance))
	return isHit && shadowHit.T < lightDistance
}

// offsetOrigin nudges a secondary ray origin off the surface, along the
// normal when the ray leaves on the normal's side and against it otherwise
func offsetOrigin(point, normal, direction core.Vec3) core.Vec3 {
	if direction.Dot(normal) < 0 {
		return point.Subtract(normal.Multiply(surfaceBias))
	}
	return point.Add(normal.Multiply(surfaceBias))
}
