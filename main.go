package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/environment"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

func main() {
	width := flag.Int("width", 512, "Image width in pixels")
	height := flag.Int("height", 512, "Image height in pixels")
	samples := flag.Int("samples", 1, "Samples per pixel (1 disables jittering)")
	depth := flag.Int("depth", 6, "Maximum recursion depth")
	workers := flag.Int("workers", 0, "Parallel workers (0 = all CPUs)")
	envmap := flag.String("envmap", "", "Equirectangular environment map (PNG or JPEG)")
	output := flag.String("output", "render.png", "Output PNG file")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	env, err := loadEnvironment(*envmap)
	if err != nil {
		fmt.Printf("Error loading environment map: %v\n", err)
		os.Exit(1)
	}

	demoScene := scene.NewDefaultScene(env)
	camera := renderer.NewCamera(renderer.DefaultCameraConfig(*width, *height))

	config := renderer.DefaultConfig()
	config.Width = *width
	config.Height = *height
	config.SamplesPerPixel = *samples
	config.MaxDepth = *depth
	config.NumWorkers = *workers

	r := renderer.NewRenderer(demoScene, camera, config, log.Default())

	startTime := time.Now()
	fb := r.Render()
	fmt.Printf("Render completed in %v\n", time.Since(startTime))

	if err := writePNG(*output, fb); err != nil {
		fmt.Printf("Error saving PNG: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Render saved as %s\n", *output)
}

// loadEnvironment returns the image environment for path, or nil to let the
// scene fall back to its solid background color
func loadEnvironment(path string) (environment.Environment, error) {
	if path == "" {
		return nil, nil
	}
	return loaders.LoadEnvironment(path)
}

func writePNG(filename string, fb *renderer.FrameBuffer) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToImage()); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}
