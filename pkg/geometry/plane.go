package geometry

import (
	"math"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// parallelEpsilon is the smallest |normal·direction| treated as crossing the plane
const parallelEpsilon = 1e-8

// Plane represents an infinite plane defined by a point and normal
type Plane struct {
	Point   core.Vec3        // A point on the plane
	Normal  core.Vec3        // Unit normal
	Surface material.Surface // Surface of the plane
}

// NewPlane creates a new plane. The normal is normalized here and must not be zero.
func NewPlane(point, normal core.Vec3, surface material.Surface) *Plane {
	return &Plane{
		Point:   point,
		Normal:  normal.Normalize(),
		Surface: surface,
	}
}

// Hit tests if a ray intersects with the plane.
// The reported normal is always the stored one, whichever side the ray comes from.
func (p *Plane) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	denominator := p.Normal.Dot(ray.Direction)

	// Parallel rays never cross the plane
	if math.Abs(denominator) < parallelEpsilon {
		return nil, false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t <= tMin || t >= tMax {
		return nil, false
	}

	return &HitRecord{
		Surface:   p.Surface,
		Point:     ray.At(t),
		Normal:    p.Normal,
		Distance:  t,
		Direction: ray.Direction,
	}, true
}
