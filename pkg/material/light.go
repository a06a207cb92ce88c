package material

import "github.com/df07/go-bounce-raytracer/pkg/core"

// Light is an emissive surface. Rays that reach it stop there and carry its
// color back, attenuated by the distance travelled.
type Light struct {
	Color core.Color // Emitted color
}

// NewLight creates a new light surface
func NewLight(color core.Color) Light {
	return Light{Color: color}
}

// Emit returns the color seen by a ray that travelled distance to reach the light
func (l Light) Emit(distance float64) core.Color {
	return l.Color.Light(core.White, distance)
}
