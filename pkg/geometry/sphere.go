package geometry

import (
	"math"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center  core.Vec3
	Radius  float64
	Surface material.Surface
}

// NewSphere creates a new sphere. Radius must be positive.
func NewSphere(center core.Vec3, radius float64, surface material.Surface) *Sphere {
	return &Sphere{
		Center:  center,
		Radius:  radius,
		Surface: surface,
	}
}

// Hit tests if a ray intersects with the sphere. Only the near intersection
// is considered, so rays starting inside the sphere do not hit it.
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool) {
	// Projection of the origin-to-center vector onto the ray
	l := s.Center.Subtract(ray.Origin)
	tca := l.Dot(ray.Direction)
	if tca <= tMin {
		return nil, false
	}

	// Squared distance between the center and the ray
	d2 := l.LengthSquared() - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return nil, false
	}

	thc := math.Sqrt(r2 - d2)
	t := tca - thc
	if t <= tMin || t >= tMax {
		return nil, false
	}

	point := ray.At(t)
	return &HitRecord{
		Surface:   s.Surface,
		Point:     point,
		Normal:    point.Subtract(s.Center).Normalize(),
		Distance:  t,
		Direction: ray.Direction,
	}, true
}
