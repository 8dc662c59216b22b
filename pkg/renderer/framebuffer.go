package renderer

import (
	"image"
	"image/color"

	"github.com/df07/go-whitted-raytracer/pkg/core"
)

// FrameBuffer is a width x height grid of linear pixel colors, row-major.
// Each pixel is written exactly once, by the worker that owns its tile.
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewFrameBuffer creates a zeroed framebuffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Set stores a pixel color
func (fb *FrameBuffer) Set(x, y int, c core.Vec3) {
	fb.Pixels[y*fb.Width+x] = c
}

// At returns a pixel color
func (fb *FrameBuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[y*fb.Width+x]
}

// ToImage tone-maps the framebuffer to an 8-bit image. A pixel whose
// largest component exceeds 1 is scaled down to fit rather than clipped
// per-channel, preserving its hue.
func (fb *FrameBuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))

	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, toneMap(fb.At(x, y)))
		}
	}

	return img
}

// toneMap scales a linear color by its max component when over 1, then
// clamps to 8-bit channels
func toneMap(c core.Vec3) color.RGBA {
	maxComponent := max(c.X, max(c.Y, c.Z))
	if maxComponent > 1 {
		c = c.Multiply(1 / maxComponent)
	}
	c = c.Clamp(0, 1)

	return color.RGBA{
		R: uint8(255 * c.X),
		G: uint8(255 * c.Y),
		B: uint8(255 * c.Z),
		A: 255,
	}
}
