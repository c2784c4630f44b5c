package renderer

import (
	"fmt"
	"time"
)

// RenderStats contains statistics about a completed render
type RenderStats struct {
	Width           int           // Image width in pixels
	Height          int           // Image height in pixels
	Workers         int           // Row bands rendered in parallel
	SamplesPerPixel int           // Rays generated per pixel
	TotalSamples    int           // Total rays traced
	Elapsed         time.Duration // Wall-clock render time
}

// String formats the stats as a single diagnostic line
func (s RenderStats) String() string {
	return fmt.Sprintf("%dx%d pixels, %d samples/pixel, %d workers, %v",
		s.Width, s.Height, s.SamplesPerPixel, s.Workers, s.Elapsed.Round(time.Millisecond))
}

// progressBar renders a textual progress bar for the monitor
func progressBar(done, total int) string {
	const width = 30

	if total <= 0 {
		total = 1
	}
	filled := done * width / total
	if filled > width {
		filled = width
	}

	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return fmt.Sprintf("Rendering: [%s] %3d%% (%d/%d rows)", bar, done*100/total, done, total)
}
