// Package loaders decodes external assets into the in-memory forms the
// renderer consumes. Rendering itself never touches the filesystem.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/environment"
)

// ImageData contains loaded image data as a normalized Vec3 color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// LoadImage loads a PNG or JPEG image and converts it to a Vec3 color array
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode auto-detects PNG/JPEG from the file header
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}, nil
}

// LoadEnvironment loads an image file as an equirectangular environment map
func LoadEnvironment(filename string) (*environment.Image, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load environment map: %w", err)
	}
	return environment.NewImage(data.Width, data.Height, data.Pixels), nil
}
