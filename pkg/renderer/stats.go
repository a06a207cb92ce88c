package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	PrimaryHits   int           // Pixels whose camera ray hit a shape
	PrimaryMisses int           // Pixels whose camera ray left the scene
	Elapsed       time.Duration // Wall time spent rendering
}

// Merge adds the counts of other into s. Elapsed keeps the larger value, as
// merged stats come from work that ran side by side.
func (s *RenderStats) Merge(other RenderStats) {
	s.TotalPixels += other.TotalPixels
	s.PrimaryHits += other.PrimaryHits
	s.PrimaryMisses += other.PrimaryMisses
	s.Elapsed = max(s.Elapsed, other.Elapsed)
}

// HitRatio returns the fraction of camera rays that hit a shape
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.PrimaryHits) / float64(s.TotalPixels)
}
