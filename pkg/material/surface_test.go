package material

import (
	"math"
	"testing"

	"github.com/df07/go-bounce-raytracer/pkg/core"
)

func TestLight_Emit(t *testing.T) {
	light := NewLight(core.Blue)

	if got := light.Emit(1); got != core.Blue {
		t.Errorf("Expected unattenuated blue at distance 1, got %v", got)
	}

	far := light.Emit(50)
	want := 1 / math.Pow(50, core.AttenuationExponent)
	if math.Abs(far.B-want) > 1e-12 || far.R != 0 || far.G != 0 {
		t.Errorf("Expected (0,0,%f), got %v", want, far)
	}
}

func TestBounce_Reflect(t *testing.T) {
	bounce := NewBounce(core.White, 1.0)

	// Head-on hit on a plane facing the camera mirrors straight back.
	got := bounce.Reflect(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	if got.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected (0,0,-1), got %v", got)
	}

	got = bounce.Reflect(core.NewVec3(1, -1, 0).Normalize(), core.NewVec3(0, 1, 0))
	if math.Abs(got.Length()-1) > 1e-12 {
		t.Errorf("Expected unit reflected direction, got length %f", got.Length())
	}
	if got.Y <= 0 {
		t.Errorf("Expected reflected ray to leave the floor, got %v", got)
	}
}

func TestBounce_Tint(t *testing.T) {
	bounce := NewBounce(core.NewColor(1, 0.5, 0), 0)

	got := bounce.Tint(core.Gray(0.5), 1)
	want := core.NewColor(0.5, 0.25, 0)
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestSurface_Variants(t *testing.T) {
	surfaces := []Surface{NewLight(core.Red), NewBounce(core.White, 0.3)}

	var lights, bounces int
	for _, s := range surfaces {
		switch s.(type) {
		case Light:
			lights++
		case Bounce:
			bounces++
		default:
			t.Fatalf("Unexpected surface type %T", s)
		}
	}
	if lights != 1 || bounces != 1 {
		t.Errorf("Expected one of each variant, got %d lights and %d bounces", lights, bounces)
	}
}
