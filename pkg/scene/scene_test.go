package scene

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/geometry"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

var (
	white = material.NewBounce(core.White, 1.0)
	red   = material.NewBounce(core.Red, 1.0)
	lamp  = material.NewLight(core.Blue)
)

func TestScene_Intersect_NearestHitWins(t *testing.T) {
	tests := []struct {
		name  string
		build func() *Scene
	}{
		{
			name: "near sphere first",
			build: func() *Scene {
				return NewScene("test").
					AddSphere(core.NewVec3(0, 0, 12), 2, red).
					AddSphere(core.NewVec3(0, 0, 22), 2, white)
			},
		},
		{
			name: "far sphere first",
			build: func() *Scene {
				return NewScene("test").
					AddSphere(core.NewVec3(0, 0, 22), 2, white).
					AddSphere(core.NewVec3(0, 0, 12), 2, red)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := tt.build().Intersect(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, 0))
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.Distance-10) > 1e-9 {
				t.Errorf("Expected nearest hit at distance 10, got %f", hit.Distance)
			}
			if hit.Surface != material.Surface(red) {
				t.Errorf("Expected the near red sphere, got %v", hit.Surface)
			}
		})
	}
}

func TestScene_Intersect_NormalizesDirection(t *testing.T) {
	s := NewScene("test").AddSphere(core.NewVec3(0, 0, 12), 2, white)

	hit, isHit := s.Intersect(core.NewVec3(0, 0, 250), core.NewVec3(0, 0, 0))
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.Distance-10) > 1e-9 {
		t.Errorf("Expected distance 10 regardless of direction length, got %f", hit.Distance)
	}
	if hit.Direction != core.NewVec3(0, 0, 1) {
		t.Errorf("Expected normalized incoming direction, got %v", hit.Direction)
	}
	if math.Abs(hit.Normal.Length()-1) > 1e-9 {
		t.Errorf("Expected unit normal, got length %f", hit.Normal.Length())
	}
}

func TestScene_Intersect_Miss(t *testing.T) {
	s := NewScene("test").
		AddSphere(core.NewVec3(0, 0, 12), 2, white).
		AddPlane(core.NewVec3(0, -10, 0), core.NewVec3(0, 1, 0), white)

	tests := []struct {
		name      string
		direction core.Vec3
	}{
		{"pointing away", core.NewVec3(0, 0, -1)},
		{"pointing up past everything", core.NewVec3(0, 1, 0.1)},
		{"zero direction", core.NewVec3(0, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hit, isHit := s.Intersect(tt.direction, core.NewVec3(0, 0, 0)); isHit {
				t.Errorf("Expected miss, got hit at distance %f", hit.Distance)
			}
		})
	}
}

func TestScene_Intersect_EmptyScene(t *testing.T) {
	if _, isHit := NewScene("empty").Intersect(core.NewVec3(0, 0, 1), core.Vec3{}); isHit {
		t.Error("Expected empty scene to never be hit")
	}
}

func TestScene_Intersect_TieKeepsFirstShape(t *testing.T) {
	s := NewScene("test").
		AddPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), red).
		AddPlane(core.NewVec3(0, 0, 10), core.NewVec3(0, 0, -1), white)

	hit, isHit := s.Intersect(core.NewVec3(0, 0, 1), core.Vec3{})
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Surface != material.Surface(red) {
		t.Errorf("Expected the first of two coincident planes, got %v", hit.Surface)
	}
}

func TestScene_Intersect_MinDistance(t *testing.T) {
	s := NewScene("test").AddPlane(core.NewVec3(0, 0, 0.5), core.NewVec3(0, 0, -1), white)

	if _, isHit := s.Intersect(core.NewVec3(0, 0, 1), core.Vec3{}); isHit {
		t.Error("Expected the default minimum distance to clip a plane 0.5 units away")
	}

	s.MinDistance = 1e-4
	hit, isHit := s.Intersect(core.NewVec3(0, 0, 1), core.Vec3{})
	if !isHit {
		t.Fatal("Expected hit with a smaller minimum distance")
	}
	if math.Abs(hit.Distance-0.5) > 1e-9 {
		t.Errorf("Expected distance 0.5, got %f", hit.Distance)
	}
}

func TestScene_CountSurfaces(t *testing.T) {
	lights, bounces := NewDefaultScene().CountSurfaces()
	if lights != 1 || bounces != 2 {
		t.Errorf("Expected 1 light and 2 bounce surfaces, got %d and %d", lights, bounces)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		sceneName     string
		expectError   bool
		expectedCount int
	}{
		{"default scene", "default", false, 3},
		{"mirror floor scene", "mirror-floor", false, 5},
		{"orbit scene", "orbit", false, 3},
		{"unknown scene", "nonexistent", true, 0},
		{"empty scene name", "", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.sceneName, 0, 10)
			if tt.expectError {
				if !errors.Is(err, ErrUnknownScene) {
					t.Errorf("Expected ErrUnknownScene for %q, got %v", tt.sceneName, err)
				}
				if s != nil {
					t.Errorf("Expected nil scene for %q, got %v", tt.sceneName, s)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tt.sceneName, err)
			}
			if s.Name != tt.sceneName {
				t.Errorf("Expected scene name %q, got %q", tt.sceneName, s.Name)
			}
			if got := s.GetPrimitiveCount(); got != tt.expectedCount {
				t.Errorf("Expected %d primitives, got %d", tt.expectedCount, got)
			}
		})
	}
}

func TestListScenes(t *testing.T) {
	var names []string
	for _, info := range ListScenes() {
		names = append(names, info.Name)
	}
	want := []string{"default", "mirror-floor", "orbit"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("ListScenes mismatch (-want +got):\n%s", diff)
	}
}

func TestOrbitScene_MovesWithFrame(t *testing.T) {
	first := NewOrbitScene(0, 8)
	quarter := NewOrbitScene(2, 8)
	wrapped := NewOrbitScene(8, 8)

	center := func(s *Scene) core.Vec3 {
		return s.Shapes[1].(*geometry.Sphere).Center
	}

	if center(first) == center(quarter) {
		t.Error("Expected the mirror sphere to move between frames")
	}
	if center(first).Subtract(center(wrapped)).Length() > 1e-9 {
		t.Errorf("Expected frame 8 of 8 to match frame 0, got %v and %v", center(first), center(wrapped))
	}
	if d := center(quarter).Subtract(orbitCenter); math.Abs(math.Hypot(d.X, d.Z)-orbitRadius) > 1e-9 {
		t.Errorf("Expected the mirror sphere to stay on its orbit, got offset %v", d)
	}
}

func TestBuilder(t *testing.T) {
	build, err := Builder("orbit", 4)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if build(1) == build(1) {
		t.Error("Expected a fresh scene per call")
	}

	if _, err := Builder("missing", 4); !errors.Is(err, ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}
}
