package scene

import (
	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/geometry"
)

// NewDefaultScene creates the demo scene: five spheres over a floor plane,
// lit by three point lights. When env is nil a teal solid background is used.
func NewDefaultScene(env environment.Environment) *Scene {
	if env == nil {
		env = environment.NewSolid(core.NewVec3(0.2, 0.7, 0.8))
	}
	s := NewScene(env)

	ivory := &core.Material{
		DiffuseColor:     core.NewVec3(0.4, 0.4, 0.3),
		Diffuse:          0.6,
		Specular:         0.3,
		SpecularExponent: 50,
		Reflectivity:     0.1,
		RefractiveIndex:  1.0,
	}

	redRubber := &core.Material{
		DiffuseColor:     core.NewVec3(0.3, 0.1, 0.1),
		Diffuse:          0.9,
		Specular:         0.1,
		SpecularExponent: 10,
		RefractiveIndex:  1.0,
	}

	mirror := &core.Material{
		DiffuseColor:     core.NewVec3(1, 1, 1),
		Specular:         10,
		SpecularExponent: 1425,
		Reflectivity:     0.8,
		RefractiveIndex:  1.0,
	}

	glass := &core.Material{
		DiffuseColor:     core.NewVec3(0.6, 0.7, 0.8),
		Specular:         0.5,
		SpecularExponent: 125,
		Reflectivity:     0.1,
		Transparency:     0.9,
		RefractiveIndex:  1.3,
	}

	floor := &core.Material{
		DiffuseColor:     core.NewVec3(0.2, 0.2, 0.2),
		Diffuse:          0.6,
		Specular:         0.3,
		SpecularExponent: 100,
		Reflectivity:     0.2,
		RefractiveIndex:  1.0,
	}

	s.AddShape(geometry.NewSphere(core.NewVec3(-3, 0, -16), 6, ivory))
	s.AddShape(geometry.NewSphere(core.NewVec3(-1, -1.5, -8), 2, glass))
	s.AddShape(geometry.NewSphere(core.NewVec3(5, -3, -8), 2, glass))
	s.AddShape(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, redRubber))
	s.AddShape(geometry.NewSphere(core.NewVec3(7, 5, -18), 4, mirror))
	s.AddShape(geometry.NewPlane(core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0), floor))

	s.AddLight(core.NewPointLight(core.NewVec3(-20, 20, 20), 1.5))
	s.AddLight(core.NewPointLight(core.NewVec3(30, 50, -25), 1.8))
	s.AddLight(core.NewPointLight(core.NewVec3(30, 20, 30), 1.7))

	return s
}
