package environment

import (
	"math"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// Image is an equirectangular environment map backed by a pixel grid.
// Longitude comes from atan2 around the Y axis, latitude from asin of the
// direction height; lookup is nearest-neighbor.
type Image struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImage creates an image environment from a row-major pixel grid
func NewImage(width, height int, pixels []core.Vec3) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// Sample maps a direction to a pixel via the equirectangular projection
func (im *Image) Sample(direction core.Vec3) core.Vec3 {
	if im.Width == 0 || im.Height == 0 {
		return core.Vec3{}
	}

	d := direction.Normalize()
	if d.LengthSquared() == 0 {
		d = core.NewVec3(0, 0, -1)
	}

	// u wraps around the Y axis with u=0.5 facing -Z; v=0 at the top
	u := 0.5 + math.Atan2(d.X, -d.Z)/(2*math.Pi)
	v := 0.5 - math.Asin(max(-1.0, min(1.0, d.Y)))/math.Pi

	x := int(u * float64(im.Width))
	y := int(v * float64(im.Height))

	if x >= im.Width {
		x = im.Width - 1
	}
	if y >= im.Height {
		y = im.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return im.Pixels[y*im.Width+x]
}
