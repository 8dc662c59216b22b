package core

// Material describes the optical properties of a surface. Materials are
// immutable once the scene is built and are shared read-only across every
// ray evaluation that hits the owning primitive.
type Material struct {
	DiffuseColor     Vec3    // Base surface color
	Ambient          float64 // Ambient coefficient (constant fill term)
	Diffuse          float64 // Lambertian coefficient
	Specular         float64 // Phong highlight coefficient
	SpecularExponent float64 // Phong highlight sharpness
	Reflectivity     float64 // Mirror reflection weight in [0, 1]
	Transparency     float64 // Refraction weight in [0, 1]
	RefractiveIndex  float64 // Index of refraction, typically > 1
}

// HitRecord contains information about a ray-object intersection.
// It lives only for the duration of one shading call.
type HitRecord struct {
	Point     Vec3      // Point of intersection
	Normal    Vec3      // Surface normal at intersection, facing the ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  *Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Multiply(-1)
	}
}
