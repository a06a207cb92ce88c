package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-bounce-raytracer/pkg/core"
)

func TestPlane_Hit_BasicIntersection(t *testing.T) {
	// Horizontal plane at y=-5
	plane := NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), testSurface)

	// Ray shooting down from the origin
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))

	hit, isHit := plane.Hit(ray, 1.0, noLimit)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	if math.Abs(hit.Distance-5.0) > 1e-9 {
		t.Errorf("Expected distance=5, got %f", hit.Distance)
	}

	expectedPoint := core.NewVec3(0, -5, 0)
	if hit.Point.Subtract(expectedPoint).Length() > 1e-9 {
		t.Errorf("Expected hit point %v, got %v", expectedPoint, hit.Point)
	}
}

func TestPlane_Hit_ParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	if hit, isHit := plane.Hit(ray, 1.0, noLimit); isHit {
		t.Errorf("Expected miss for parallel ray, but got hit at distance=%f", hit.Distance)
	}
}

func TestPlane_Hit_NearlyParallelRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, -1e-10, 0).Normalize())

	hit, isHit := plane.Hit(ray, 1.0, noLimit)
	if isHit {
		t.Errorf("Expected miss for nearly parallel ray, but got hit at distance=%f", hit.Distance)
	}
}

func TestPlane_Hit_BehindRay(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -5, 0), core.NewVec3(0, 1, 0), testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if hit, isHit := plane.Hit(ray, 1.0, noLimit); isHit {
		t.Errorf("Expected miss for intersection behind ray, but got hit at distance=%f", hit.Distance)
	}
}

func TestPlane_Hit_NormalIsNotFlipped(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 2, 0), testSurface)

	tests := []struct {
		name         string
		rayOrigin    core.Vec3
		rayDirection core.Vec3
	}{
		{"from above", core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0)},
		{"from below", core.NewVec3(0, -3, 0), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := plane.Hit(core.NewRay(tt.rayOrigin, tt.rayDirection), 1.0, noLimit)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.Normal != core.NewVec3(0, 1, 0) {
				t.Errorf("Expected stored unit normal (0,1,0), got %v", hit.Normal)
			}
		})
	}
}

func TestPlane_Hit_TooClose(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1), testSurface)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	if hit, isHit := plane.Hit(ray, 1.0, noLimit); isHit {
		t.Errorf("Expected plane within the minimum distance to be ignored, got distance=%f", hit.Distance)
	}
}
