package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"time"

	"github.com/tedkb/go-raytracer/pkg/image"
	"github.com/tedkb/go-raytracer/pkg/renderer"
	"github.com/tedkb/go-raytracer/pkg/scene"
)

func main() {
	scenePath := flag.String("scene", "", "Scene description file (default: built-in demo scene)")
	output := flag.String("out", "", "Output file (default: render_<timestamp>.<format>)")
	width := flag.Int("width", 400, "Image width in pixels")
	height := flag.Int("height", 0, "Image height in pixels (default: derived from the camera aspect ratio)")
	samples := flag.Int("samples", 32, "Samples per pixel")
	depth := flag.Int("depth", 8, "Maximum ray bounces per sample")
	workers := flag.Int("workers", 1, "Row workers; 0 means one per CPU")
	seed := flag.Int64("seed", 1, "Base random seed")
	format := flag.String("format", "png", "Output format: 'png' or 'ppm'")
	flipped := flag.Bool("flip", false, "Write rows top-to-bottom instead of bottom-to-top")
	quiet := flag.Bool("quiet", false, "Suppress progress output")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		return
	}

	if *format != "png" && *format != "ppm" {
		fmt.Fprintf(os.Stderr, "Unknown format %q, expected 'png' or 'ppm'\n", *format)
		os.Exit(1)
	}

	// Load the scene
	var s *scene.Scene
	var err error
	if *scenePath != "" {
		s, err = scene.LoadFile(*scenePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
			os.Exit(1)
		}
	} else {
		s = scene.NewDefaultScene()
	}

	if *height <= 0 {
		*height = int(float64(*width) / s.Camera.AspectRatio())
	}

	options := renderer.Options{
		SamplesPerPixel: *samples,
		MaxRayBounces:   *depth,
		PositiveIsUp:    !*flipped,
		Workers:         *workers,
		Seed:            *seed,
	}
	if !*quiet {
		options.Logger = log.New(os.Stderr, "", 0)
	}

	if !*quiet {
		fmt.Printf("Rendering %dx%d, %d spp, depth %d, %d primitives...\n",
			*width, *height, *samples, *depth, s.PrimitiveCount())
	}

	raytracer := renderer.NewRaytracer(s.World, s.Camera, options)

	startTime := time.Now()
	fb := raytracer.Render(*width, *height)
	renderTime := time.Since(startTime)

	if !*quiet {
		fmt.Fprintln(os.Stderr)
		fmt.Printf("Render completed in %v\n", renderTime)
	}

	filename := *output
	if filename == "" {
		filename = fmt.Sprintf("render_%s.%s", time.Now().Format("20060102_150405"), *format)
	}

	if err := writeImage(fb, filename, *format); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving image: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		fmt.Printf("Render saved as %s\n", filename)
	}
}

// writeImage encodes the framebuffer in the requested format
func writeImage(fb *image.Framebuffer, filename, format string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch format {
	case "ppm":
		return image.WritePPM(file, fb)
	default:
		return png.Encode(file, fb.ToRGBA())
	}
}
