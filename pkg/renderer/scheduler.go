package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/davg/go-parallel-raytracer/pkg/core"
)

// PixelResult carries one finished pixel from a worker to the aggregator
type PixelResult struct {
	X, Y  int
	Color core.Vec3
}

// rowTask is one unit of work: a single image row with its own random
// source. Generators are never shared between rows, so no synchronization
// is needed on hot-path randomness.
type rowTask struct {
	y      int
	random *rand.Rand
}

// Scheduler partitions the image into row tasks, renders them on a fixed
// worker pool, and aggregates results through a channel. The framebuffer
// is written only by the aggregator, so workers never contend on it.
type Scheduler struct {
	raytracer *Raytracer
	workers   int
	seed      int64
	logger    zerolog.Logger
}

// NewScheduler creates a scheduler. workers <= 0 selects one worker per CPU.
// Row generators are seeded seed+row, so output is reproducible for a given
// seed at any worker count.
func NewScheduler(rt *Raytracer, workers int, seed int64, logger zerolog.Logger) *Scheduler {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Scheduler{
		raytracer: rt,
		workers:   workers,
		seed:      seed,
		logger:    logger,
	}
}

// Render runs the full pipeline and returns the completed framebuffer.
// It blocks until every pixel has been rendered and aggregated.
func (s *Scheduler) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	width, height := s.raytracer.width, s.raytracer.height

	fb := NewFramebuffer(width, height)
	totalPixels := width * height

	// One progress event per 10% of pixels
	progressStep := totalPixels / 10
	if progressStep == 0 {
		progressStep = 1
	}

	received := 0
	for result := range s.startWorkers() {
		// Sole framebuffer writer; Set panics if a worker ever
		// produces an out-of-range coordinate
		fb.Set(result.X, result.Y, result.Color)
		received++

		if received%progressStep == 0 {
			s.logger.Info().
				Int("pixels", received).
				Int("total", totalPixels).
				Int("percent", 100*received/totalPixels).
				Msg("render progress")
		}
	}

	stats := RenderStats{
		TotalPixels:  received,
		TotalSamples: received * s.raytracer.config.SamplesPerPixel,
		Workers:      s.workers,
		Elapsed:      time.Since(start),
	}
	return fb, stats
}

// startWorkers launches the worker pool over all row tasks and returns the
// many-producer/single-consumer results channel. The channel is closed once
// every worker has drained the task queue.
func (s *Scheduler) startWorkers() <-chan PixelResult {
	width, height := s.raytracer.width, s.raytracer.height

	rows := make(chan rowTask, height)
	results := make(chan PixelResult, width*s.workers)

	var wg sync.WaitGroup
	for i := 0; i < s.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range rows {
				s.renderRow(task, results)
			}
		}()
	}

	for y := 0; y < height; y++ {
		rows <- rowTask{
			y:      y,
			random: rand.New(rand.NewSource(s.seed + int64(y))),
		}
	}
	close(rows)

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}

// renderRow renders every pixel of one row and emits the results
func (s *Scheduler) renderRow(task rowTask, results chan<- PixelResult) {
	for x := 0; x < s.raytracer.width; x++ {
		results <- PixelResult{
			X:     x,
			Y:     task.y,
			Color: s.raytracer.SamplePixel(x, task.y, task.random),
		}
	}
}
