package renderer

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// CameraConfig holds camera parameters
type CameraConfig struct {
	Center core.Vec3 // Camera position
	LookAt core.Vec3 // Point the camera looks at
	Up     core.Vec3 // Up direction
	VFov   float64   // Vertical field of view in degrees
	Width  int       // Image width in pixels
	Height int       // Image height in pixels
}

// DefaultCameraConfig returns the camera of the demo scene: at the origin,
// looking down -Z with a 90 degree field of view.
func DefaultCameraConfig(width, height int) CameraConfig {
	return CameraConfig{
		Center: core.NewVec3(0, 0, 0),
		LookAt: core.NewVec3(0, 0, -1),
		Up:     core.NewVec3(0, 1, 0),
		VFov:   90,
		Width:  width,
		Height: height,
	}
}

// Camera generates pinhole-projection rays for pixel coordinates
type Camera struct {
	center      core.Vec3
	u, v        core.Vec3 // Right and up basis vectors in world space
	forward     core.Vec3
	tanHalfFov  float64
	aspectRatio float64
	width       int
	height      int
}

// NewCamera creates a camera from the given configuration
func NewCamera(config CameraConfig) *Camera {
	forward := config.LookAt.Subtract(config.Center).Normalize()
	if forward.LengthSquared() == 0 {
		forward = core.NewVec3(0, 0, -1)
	}

	up := config.Up
	if up.LengthSquared() == 0 {
		up = core.NewVec3(0, 1, 0)
	}

	u := forward.Cross(up).Normalize()
	if u.LengthSquared() == 0 {
		// Up is parallel to the view direction; pick an arbitrary right axis
		u = core.NewVec3(1, 0, 0)
	}
	v := u.Cross(forward)

	width, height := config.Width, config.Height
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	return &Camera{
		center:      config.Center,
		u:           u,
		v:           v,
		forward:     forward,
		tanHalfFov:  math.Tan(config.VFov * math.Pi / 360.0),
		aspectRatio: float64(width) / float64(height),
		width:       width,
		height:      height,
	}
}

// GetRay generates the ray through continuous pixel coordinates (px, py).
// Pixel centers sit at integer + 0.5; py = 0 is the top image row.
func (c *Camera) GetRay(px, py float64) core.Ray {
	ndcX := (2*px/float64(c.width) - 1) * c.tanHalfFov * c.aspectRatio
	ndcY := (1 - 2*py/float64(c.height)) * c.tanHalfFov

	direction := c.forward.
		Add(c.u.Multiply(ndcX)).
		Add(c.v.Multiply(ndcY))

	return core.NewRay(c.center, direction)
}
