// Package ppm serializes rendered pixels to the plain-text PPM (P3)
// image format and converts them for PNG output.
package ppm

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
)

// Write emits a P3 image: a three-line header followed by one line per
// pixel in row-major order, each holding gamma-encoded R G B bytes.
func Write(w io.Writer, width, height int, pixels []core.Color) error {
	if len(pixels) != width*height {
		return fmt.Errorf("ppm: have %d pixels, want %d (%dx%d)", len(pixels), width*height, width, height)
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("ppm: write header: %w", err)
	}

	for _, pixel := range pixels {
		r, g, b := pixel.RGBBytes()
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", r, g, b); err != nil {
			return fmt.Errorf("ppm: write pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("ppm: flush: %w", err)
	}
	return nil
}

// ToImage converts row-major pixels to an image.RGBA with the same
// gamma encoding as Write, for callers that save PNG instead of text.
func ToImage(width, height int, pixels []core.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b := pixels[y*width+x].RGBBytes()
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}
