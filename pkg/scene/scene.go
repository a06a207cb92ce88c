package scene

import (
	"math"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/geometry"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// DefaultMinDistance is the minimum distance a hit must lie from the ray
// origin. It keeps reflected rays from hitting the surface they start on,
// and also clips any geometry closer than one unit to a ray origin.
const DefaultMinDistance = 1.0

// Scene is an ordered collection of shapes. It is read-only while rendering
// and safe for concurrent use by any number of tracers.
type Scene struct {
	Name        string
	Shapes      []geometry.Shape // Objects in the scene, in scan order
	MinDistance float64          // Minimum hit distance; zero means DefaultMinDistance
}

// NewScene creates an empty scene
func NewScene(name string) *Scene {
	return &Scene{
		Name:   name,
		Shapes: make([]geometry.Shape, 0),
	}
}

// AddSphere appends a sphere to the scene
func (s *Scene) AddSphere(center core.Vec3, radius float64, surface material.Surface) *Scene {
	s.Shapes = append(s.Shapes, geometry.NewSphere(center, radius, surface))
	return s
}

// AddPlane appends a plane to the scene
func (s *Scene) AddPlane(point, normal core.Vec3, surface material.Surface) *Scene {
	s.Shapes = append(s.Shapes, geometry.NewPlane(point, normal, surface))
	return s
}

// minDistance returns the effective minimum hit distance
func (s *Scene) minDistance() float64 {
	if s.MinDistance > 0 {
		return s.MinDistance
	}
	return DefaultMinDistance
}

// Intersect finds the nearest shape hit by a ray leaving origin along
// direction. The direction does not need to be normalized; a zero direction
// never hits anything. When two shapes are hit at exactly the same distance
// the one added first wins.
func (s *Scene) Intersect(direction, origin core.Vec3) (*geometry.HitRecord, bool) {
	if direction.IsZero() {
		return nil, false
	}
	ray := core.NewRay(origin, direction.Normalize())
	tMin := s.minDistance()

	var closestHit *geometry.HitRecord
	closestSoFar := math.Inf(1)

	for _, shape := range s.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.Distance
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// GetPrimitiveCount returns the number of shapes in the scene
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Shapes)
}

// CountSurfaces returns how many shapes carry a Light and a Bounce surface
func (s *Scene) CountSurfaces() (lights, bounces int) {
	for _, shape := range s.Shapes {
		var surface material.Surface
		switch obj := shape.(type) {
		case *geometry.Sphere:
			surface = obj.Surface
		case *geometry.Plane:
			surface = obj.Surface
		}
		switch surface.(type) {
		case material.Light:
			lights++
		case material.Bounce:
			bounces++
		}
	}
	return lights, bounces
}
