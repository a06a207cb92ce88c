package renderer

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// ParallelConfig contains configuration for parallel rendering
type ParallelConfig struct {
	NumWorkers int // Number of parallel workers (0 = use CPU count)
	BandHeight int // Rows per task (0 = split rows evenly across workers)
}

// RowBand is a contiguous range of picture rows [Start, End)
type RowBand struct {
	Start, End int
}

// numWorkers resolves the configured worker count
func (c ParallelConfig) numWorkers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// SplitRows partitions height rows into consecutive bands of at most
// bandHeight rows. The bands cover every row exactly once.
func SplitRows(height, bandHeight int) []RowBand {
	if height <= 0 {
		return nil
	}
	bandHeight = max(bandHeight, 1)

	bands := make([]RowBand, 0, (height+bandHeight-1)/bandHeight)
	for start := 0; start < height; start += bandHeight {
		bands = append(bands, RowBand{Start: start, End: min(start+bandHeight, height)})
	}
	return bands
}

// RenderParallel renders the picture by handing disjoint row bands to a
// bounded set of goroutines. The picture is complete only when the returned
// error is nil; on cancellation some bands may be left unrendered.
func RenderParallel(ctx context.Context, rt *Raytracer, picture *Picture, config ParallelConfig, logger core.Logger) (RenderStats, error) {
	start := time.Now()
	workers := config.numWorkers()

	bandHeight := config.BandHeight
	if bandHeight <= 0 {
		bandHeight = (picture.Height + workers - 1) / workers
	}
	bands := SplitRows(picture.Height, bandHeight)

	logger.Printf("Rendering %dx%d in %d bands (using %d workers, depth %d)\n",
		picture.Width, picture.Height, len(bands), workers, rt.MaxDepth())

	var (
		mu    sync.Mutex
		stats RenderStats
	)

	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	for i, band := range bands {
		if err := sem.Acquire(ctx, 1); err != nil {
			_ = eg.Wait()
			return stats, fmt.Errorf("while acquiring worker for band %d: %w", i, err)
		}

		band := band // per-iteration copy; go.mod targets pre-1.22 loop semantics
		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}

			bandStats := rt.RenderRows(picture, band.Start, band.End)

			mu.Lock()
			stats.Merge(bandStats)
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return stats, fmt.Errorf("while waiting for row bands: %w", err)
	}

	stats.Elapsed = time.Since(start)
	logger.Printf("Rendered %d pixels in %v (%.1f%% primary hits)\n",
		stats.TotalPixels, stats.Elapsed, 100*stats.HitRatio())
	return stats, nil
}

// ErrInvalidAnimation is returned for animation configs that cannot be rendered
var ErrInvalidAnimation = errors.New("invalid animation")

// SceneBuilder produces the scene for one frame of an animation
type SceneBuilder func(frame int) Scene

// AnimationConfig describes an animation render
type AnimationConfig struct {
	Frames     int // Number of frames
	Width      int // Frame width in pixels
	Height     int // Frame height in pixels
	MaxDepth   int // Bounce budget per camera ray
	NumWorkers int // Frames rendered at once (0 = use CPU count)
}

// RenderAnimation renders every frame into its own picture, one frame per
// worker. Frames are returned in order.
func RenderAnimation(ctx context.Context, build SceneBuilder, config AnimationConfig, logger core.Logger) ([]*Picture, RenderStats, error) {
	if config.Frames < 0 {
		return nil, RenderStats{}, fmt.Errorf("%w: %d frames", ErrInvalidAnimation, config.Frames)
	}

	start := time.Now()
	workers := ParallelConfig{NumWorkers: config.NumWorkers}.numWorkers()
	frames := make([]*Picture, config.Frames)

	logger.Printf("Rendering %d frames of %dx%d (using %d workers, depth %d)\n",
		config.Frames, config.Width, config.Height, workers, config.MaxDepth)

	var (
		mu    sync.Mutex
		stats RenderStats
	)

	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(workers))

	for frame := 0; frame < config.Frames; frame++ {
		if err := sem.Acquire(ctx, 1); err != nil {
			_ = eg.Wait()
			return nil, stats, fmt.Errorf("while acquiring worker for frame %d: %w", frame, err)
		}

		frame := frame // per-iteration copy; go.mod targets pre-1.22 loop semantics
		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}

			picture := NewPicture(config.Width, config.Height)
			frameStats := NewRaytracer(build(frame), config.MaxDepth).Render(picture)
			frames[frame] = picture

			mu.Lock()
			stats.Merge(frameStats)
			mu.Unlock()

			logger.Printf("Frame %d/%d done in %v\n", frame+1, config.Frames, frameStats.Elapsed)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, stats, fmt.Errorf("while waiting for frames: %w", err)
	}

	stats.Elapsed = time.Since(start)
	return frames, stats, nil
}
