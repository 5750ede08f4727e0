package renderer

import "time"

// RenderStats contains statistics about a completed render
type RenderStats struct {
	TotalPixels  int           // Number of pixels rendered
	TotalSamples int           // Total camera samples taken
	Workers      int           // Size of the worker pool
	Elapsed      time.Duration // Wall-clock render time
}

// SamplesPerPixel returns the average samples per pixel
func (s RenderStats) SamplesPerPixel() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}
