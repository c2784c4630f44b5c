package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
)

// ShadeFunc reduces a batch of rays sharing one pixel's footprint to a
// single averaged color. It is invoked once per pixel and must only
// capture immutable state, since every worker calls it concurrently
// with its own random source.
type ShadeFunc func(rays []core.Ray, random *rand.Rand) core.Color

// RenderConfig contains rendering configuration
type RenderConfig struct {
	SamplesPerPixel  int           // Rays generated per pixel
	NumWorkers       int           // Parallel workers (0 = CPU count)
	Seed             int64         // Base seed; each worker derives its own stream
	ProgressInterval time.Duration // Cadence of progress reports (0 disables)
}

// DefaultRenderConfig returns sensible default values
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		SamplesPerPixel:  50,
		NumWorkers:       0,
		Seed:             42,
		ProgressInterval: 2 * time.Second,
	}
}

// RowBand is a contiguous half-open range of image rows owned by one
// worker
type RowBand struct {
	Start, End int
}

// Rows returns the number of rows in the band
func (b RowBand) Rows() int { return b.End - b.Start }

// SplitRows partitions [0, height) into numBands contiguous bands whose
// sizes differ by at most one row; the leading bands absorb the
// remainder.
func SplitRows(height, numBands int) []RowBand {
	if numBands > height {
		numBands = height
	}
	if numBands < 1 {
		numBands = 1
	}

	bands := make([]RowBand, 0, numBands)
	base := height / numBands
	remainder := height % numBands

	start := 0
	for i := 0; i < numBands; i++ {
		size := base
		if i < remainder {
			size++
		}
		bands = append(bands, RowBand{Start: start, End: start + size})
		start += size
	}
	return bands
}

// Renderer drives the parallel, row-partitioned render loop. Shading is
// delegated to a caller-supplied callback so the scheduling logic stays
// independent of the scene.
type Renderer struct {
	camera *Camera
	config RenderConfig
	logger core.Logger
}

// NewRenderer creates a renderer for the given camera
func NewRenderer(camera *Camera, config RenderConfig, logger core.Logger) *Renderer {
	if logger == nil {
		logger = core.NewDefaultLogger()
	}
	return &Renderer{camera: camera, config: config, logger: logger}
}

// Render produces the image as row-major pixels. Rows are split into
// one band per worker; each worker owns a private ray buffer and output
// slice, so the only shared mutable state is the atomic row counter the
// progress monitor polls.
func (r *Renderer) Render(shade ShadeFunc) ([]core.Color, RenderStats) {
	width, height := r.camera.Width(), r.camera.Height()

	numWorkers := r.config.NumWorkers
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bands := SplitRows(height, numWorkers)

	var rowsDone atomic.Int64
	outputs := make([][]core.Color, len(bands))

	start := time.Now()

	var workers sync.WaitGroup
	for i, band := range bands {
		workers.Add(1)
		go func(bandIndex int, band RowBand) {
			defer workers.Done()

			random := rand.New(rand.NewSource(r.config.Seed + int64(bandIndex)))
			rays := make([]core.Ray, r.config.SamplesPerPixel)
			pixels := make([]core.Color, 0, band.Rows()*width)

			for row := band.Start; row < band.End; row++ {
				for col := 0; col < width; col++ {
					r.camera.FillRays(rays, col, row, random)
					pixels = append(pixels, shade(rays, random))
				}
				rowsDone.Add(1)
			}

			outputs[bandIndex] = pixels
		}(i, band)
	}

	workersDone := make(chan struct{})
	var monitor sync.WaitGroup
	if r.config.ProgressInterval > 0 {
		monitor.Add(1)
		go func() {
			defer monitor.Done()
			r.monitorProgress(&rowsDone, height, workersDone)
		}()
	}

	workers.Wait()
	close(workersDone)
	monitor.Wait()

	// Bands are contiguous and ordered, so concatenating their outputs
	// is row-major pixel order.
	pixels := make([]core.Color, 0, width*height)
	for _, out := range outputs {
		pixels = append(pixels, out...)
	}

	stats := RenderStats{
		Width:           width,
		Height:          height,
		Workers:         len(bands),
		SamplesPerPixel: r.config.SamplesPerPixel,
		TotalSamples:    width * height * r.config.SamplesPerPixel,
		Elapsed:         time.Since(start),
	}
	return pixels, stats
}

// monitorProgress periodically reports the shared row counter until all
// rows are done. It only ever reads the counter, so workers never wait
// on it; workersDone lets it exit promptly instead of sleeping out a
// final interval.
func (r *Renderer) monitorProgress(rowsDone *atomic.Int64, totalRows int, workersDone <-chan struct{}) {
	ticker := time.NewTicker(r.config.ProgressInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			done := int(rowsDone.Load())
			r.logger.Printf("\r%s", progressBar(done, totalRows))
			if done >= totalRows {
				r.logger.Printf("\rDone.                                   \n")
				return
			}
		case <-workersDone:
			r.logger.Printf("\rDone.                                   \n")
			return
		}
	}
}
