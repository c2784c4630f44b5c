package main

import (
	"flag"
	"fmt"
	"image/png"
	"io"
	"math/rand"
	"os"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/geometry"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/integrator"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/material"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/ppm"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/renderer"
)

func main() {
	sceneType := flag.String("scene", "simple", "Scene type: 'simple' or 'cover'")
	width := flag.Int("width", 800, "Image width in pixels")
	samples := flag.Int("samples", 50, "Samples per pixel")
	depth := flag.Int("depth", 20, "Maximum ray bounce depth")
	workers := flag.Int("workers", 0, "Parallel workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Base random seed")
	output := flag.String("o", "", "Write the P3 image to a file instead of stdout")
	pngOut := flag.String("png", "", "Also save the image as PNG to this file")
	flag.Parse()

	logger := core.NewDefaultLogger()

	var world geometry.World
	var cameraConfig renderer.CameraConfig
	switch *sceneType {
	case "cover":
		world, cameraConfig = coverScene(*width, rand.New(rand.NewSource(*seed)))
	case "simple":
		world, cameraConfig = simpleScene(*width)
	default:
		logger.Printf("Unknown scene type %q, using 'simple'.\n", *sceneType)
		world, cameraConfig = simpleScene(*width)
	}

	camera := renderer.NewCamera(cameraConfig)

	config := renderer.DefaultRenderConfig()
	config.SamplesPerPixel = *samples
	config.NumWorkers = *workers
	config.Seed = *seed

	tracer := integrator.NewPathTracer(world, *depth)
	sampleScale := 1.0 / float64(*samples)
	shade := func(rays []core.Ray, random *rand.Rand) core.Color {
		pixel := core.Black
		for _, ray := range rays {
			pixel = pixel.Add(tracer.RayColor(ray, random))
		}
		return pixel.Scale(sampleScale)
	}

	r := renderer.NewRenderer(camera, config, logger)
	pixels, stats := r.Render(shade)
	logger.Printf("Render completed: %s\n", stats)

	var out io.Writer = os.Stdout
	if *output != "" {
		file, err := os.Create(*output)
		if err != nil {
			logger.Printf("Error creating output file: %v\n", err)
			os.Exit(1)
		}
		defer file.Close()
		out = file
	}

	if err := ppm.Write(out, camera.Width(), camera.Height(), pixels); err != nil {
		logger.Printf("Error writing image: %v\n", err)
		os.Exit(1)
	}

	if *pngOut != "" {
		if err := savePNG(*pngOut, camera, pixels); err != nil {
			logger.Printf("Error saving PNG: %v\n", err)
			os.Exit(1)
		}
		logger.Printf("PNG saved as %s\n", *pngOut)
	}
}

// savePNG writes the rendered pixels as a PNG file
func savePNG(path string, camera *renderer.Camera, pixels []core.Color) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png file: %w", err)
	}
	defer file.Close()

	img := ppm.ToImage(camera.Width(), camera.Height(), pixels)
	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// simpleScene is a small four-sphere test scene: a matte ground, a
// matte center sphere, a hollow glass sphere on the left and a metal
// sphere on the right, viewed head-on with a pinhole camera.
func simpleScene(width int) (geometry.World, renderer.CameraConfig) {
	ground := material.NewLambertian(core.NewColor(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewColor(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.5)
	gold := material.NewMetal(core.NewColor(0.8, 0.6, 0.2), 0)

	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		// Negative radius turns the inner sphere inside out, making the
		// pair a thin glass shell.
		geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.4, glass),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	}

	cameraConfig := renderer.CameraConfig{
		AspectRatio:   16.0 / 9.0,
		ImageWidth:    width,
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		DefocusAngle:  0,
		FocusDistance: 1,
	}
	return world, cameraConfig
}

// coverScene is the classic book-cover scene: three large spheres over
// a matte ground, surrounded by a grid of small randomized spheres,
// seen through a thin-lens camera with visible depth of field.
func coverScene(width int, random *rand.Rand) (geometry.World, renderer.CameraConfig) {
	world := geometry.World{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000,
			material.NewLambertian(core.NewColor(0.5, 0.5, 0.5))),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choose := random.Float64(); {
			case choose < 0.8:
				albedo := core.NewColor(
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
					random.Float64()*random.Float64(),
				)
				mat = material.NewLambertian(albedo)
			case choose < 0.95:
				albedo := core.NewColor(
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
					0.5+0.5*random.Float64(),
				)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			world = append(world, geometry.NewSphere(center, 0.2, mat))
		}
	}

	world = append(world,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1,
			material.NewLambertian(core.NewColor(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1,
			material.NewMetal(core.NewColor(0.7, 0.6, 0.5), 0)),
	)

	cameraConfig := renderer.CameraConfig{
		AspectRatio:   16.0 / 9.0,
		ImageWidth:    width,
		VFov:          20,
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		DefocusAngle:  0.6,
		FocusDistance: 10,
	}
	return world, cameraConfig
}
