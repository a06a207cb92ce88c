package geometry

import (
	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Surface   material.Surface // Surface of the primitive that was hit
	Point     core.Vec3        // Point of intersection
	Normal    core.Vec3        // Unit normal at Point, as stored by the primitive
	Distance  float64          // Distance from the ray origin along the unit direction
	Direction core.Vec3        // Unit direction of the incoming ray
}

// Shape interface for objects that can be hit by rays.
// Hit expects ray.Direction to be a unit vector and reports only hits with
// tMin < Distance < tMax.
type Shape interface {
	Hit(ray core.Ray, tMin, tMax float64) (*HitRecord, bool)
}
