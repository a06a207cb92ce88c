package renderer

import (
	"fmt"
	"time"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/geometry"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// Terminal colors of the shading recursion
var (
	// DepthExhaustedColor is returned once the bounce budget is used up,
	// whatever the ray would have hit.
	DepthExhaustedColor = core.Gray(0.5)

	// SkyColor is returned for rays that leave the scene.
	SkyColor = core.Gray(0.25)
)

// DefaultMaxDepth is the bounce budget used when none is configured
const DefaultMaxDepth = 8

// Scene interface to avoid circular imports
type Scene interface {
	Intersect(direction, origin core.Vec3) (*geometry.HitRecord, bool)
}

// Raytracer shades a scene into pictures. It holds no mutable state, so one
// Raytracer may render disjoint parts of a picture from many goroutines.
type Raytracer struct {
	scene    Scene
	maxDepth int
}

// NewRaytracer creates a new raytracer tracing at most maxDepth bounces
func NewRaytracer(scene Scene, maxDepth int) *Raytracer {
	return &Raytracer{
		scene:    scene,
		maxDepth: maxDepth,
	}
}

// MaxDepth returns the bounce budget of each camera ray
func (rt *Raytracer) MaxDepth() int {
	return rt.maxDepth
}

// Shade returns the color carried back along a ray whose intersection
// result is hit (nil for a miss), with depth bounces left to trace.
func (rt *Raytracer) Shade(hit *geometry.HitRecord, depth int) core.Color {
	if depth <= 0 {
		return DepthExhaustedColor
	}
	if hit == nil {
		return SkyColor
	}

	switch surface := hit.Surface.(type) {
	case material.Light:
		return surface.Emit(hit.Distance)
	case material.Bounce:
		reflected := surface.Reflect(hit.Direction, hit.Normal)
		next, _ := rt.scene.Intersect(reflected, hit.Point)
		return surface.Tint(rt.Shade(next, depth-1), hit.Distance)
	default:
		panic(fmt.Sprintf("renderer: unknown surface %T", hit.Surface))
	}
}

// TraceRay returns the color seen along a ray using the full bounce budget
func (rt *Raytracer) TraceRay(direction, origin core.Vec3) core.Color {
	hit, _ := rt.scene.Intersect(direction, origin)
	return rt.Shade(hit, rt.maxDepth)
}

// Render overwrites every pixel of the picture
func (rt *Raytracer) Render(picture *Picture) RenderStats {
	return rt.RenderRows(picture, 0, picture.Height)
}

// RenderRows overwrites the pixels of rows [rowStart, rowEnd). Rows outside
// the picture are skipped.
func (rt *Raytracer) RenderRows(picture *Picture, rowStart, rowEnd int) RenderStats {
	start := time.Now()
	camera := NewCamera(picture.Origin, picture.Width, picture.Height)

	rowStart = max(rowStart, 0)
	rowEnd = min(rowEnd, picture.Height)

	var stats RenderStats
	for row := rowStart; row < rowEnd; row++ {
		for col := 0; col < picture.Width; col++ {
			ray := camera.GetRay(row, col)
			hit, isHit := rt.scene.Intersect(ray.Direction, ray.Origin)
			picture.Set(row, col, rt.Shade(hit, rt.maxDepth))
			rt.updateStats(&stats, isHit)
		}
	}

	stats.Elapsed = time.Since(start)
	return stats
}

// updateStats records a single pixel
func (rt *Raytracer) updateStats(stats *RenderStats, isHit bool) {
	stats.TotalPixels++
	if isHit {
		stats.PrimaryHits++
	} else {
		stats.PrimaryMisses++
	}
}
