// Package renderer maps pixels to camera rays and assembles the final
// framebuffer. Work is split into tiles handed to a pool of workers; tiles
// never overlap, so workers write the shared framebuffer without locking,
// and per-tile seeded RNGs keep the output identical for any worker count.
package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-whitted-raytracer/pkg/core"
	"github.com/df07/go-whitted-raytracer/pkg/integrator"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// Config contains rendering configuration
type Config struct {
	Width           int // Image width in pixels
	Height          int // Image height in pixels
	SamplesPerPixel int // Rays per pixel; 1 samples pixel centers, >1 jitters
	MaxDepth        int // Maximum recursion depth for reflection/refraction
	NumWorkers      int // Parallel workers; <=0 uses all CPUs
	TileSize        int // Tile edge length in pixels
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 1,
		MaxDepth:        6,
		TileSize:        32,
	}
}

// Renderer renders a scene through a camera into a framebuffer
type Renderer struct {
	scene      *scene.Scene
	camera     *Camera
	integrator *integrator.WhittedIntegrator
	config     Config
	logger     core.Logger
}

// NewRenderer creates a renderer. A nil logger disables progress logging.
func NewRenderer(s *scene.Scene, camera *Camera, config Config, logger core.Logger) *Renderer {
	if config.Width < 1 {
		config.Width = 1
	}
	if config.Height < 1 {
		config.Height = 1
	}
	if config.SamplesPerPixel < 1 {
		config.SamplesPerPixel = 1
	}
	if config.MaxDepth < 1 {
		config.MaxDepth = 1
	}
	if config.TileSize < 1 {
		config.TileSize = 32
	}
	if config.NumWorkers <= 0 {
		config.NumWorkers = runtime.NumCPU()
	}

	return &Renderer{
		scene:      s,
		camera:     camera,
		integrator: integrator.NewWhittedIntegrator(config.MaxDepth),
		config:     config,
		logger:     logger,
	}
}

// Render traces one ray batch per pixel and returns the finished
// framebuffer. It blocks until every tile has been rendered.
func (r *Renderer) Render() *FrameBuffer {
	fb := NewFrameBuffer(r.config.Width, r.config.Height)
	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)

	r.logf("Rendering %dx%d, %d samples/pixel, %d tiles on %d workers",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, len(tiles), r.config.NumWorkers)

	taskQueue := make(chan *Tile, len(tiles))
	for _, tile := range tiles {
		taskQueue <- tile
	}
	close(taskQueue)

	var wg sync.WaitGroup
	for w := 0; w < r.config.NumWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for tile := range taskQueue {
				r.renderTile(tile, fb)
			}
		}()
	}
	wg.Wait()

	r.logf("Render complete")
	return fb
}

// renderTile fills the tile's pixel bounds in the shared framebuffer.
// Bounds are disjoint across tiles, so no synchronization is needed.
func (r *Renderer) renderTile(tile *Tile, fb *FrameBuffer) {
	samples := r.config.SamplesPerPixel

	for y := tile.Bounds.Min.Y; y < tile.Bounds.Max.Y; y++ {
		for x := tile.Bounds.Min.X; x < tile.Bounds.Max.X; x++ {
			var colorAccum core.Vec3

			if samples == 1 {
				ray := r.camera.GetRay(float64(x)+0.5, float64(y)+0.5)
				colorAccum = r.integrator.RayColor(ray, r.scene)
			} else {
				for sample := 0; sample < samples; sample++ {
					px := float64(x) + tile.Random.Float64()
					py := float64(y) + tile.Random.Float64()
					colorAccum = colorAccum.Add(r.integrator.RayColor(r.camera.GetRay(px, py), r.scene))
				}
				colorAccum = colorAccum.Multiply(1.0 / float64(samples))
			}

			fb.Set(x, y, colorAccum)
		}
	}
}

func (r *Renderer) logf(format string, args ...interface{}) {
	if r.logger != nil {
		r.logger.Printf(format, args...)
	}
}
