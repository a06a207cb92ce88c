package material

import "github.com/df07/go-bounce-raytracer/pkg/core"

// Bounce is a mirror-like surface. The reflected ray is traced further and
// its color is tinted by Color.
type Bounce struct {
	Color       core.Color // Tint applied to reflected light
	Diffraction float64    // Carried for scene descriptions; not used by shading
}

// NewBounce creates a new reflective surface
func NewBounce(color core.Color, diffraction float64) Bounce {
	return Bounce{Color: color, Diffraction: diffraction}
}

// Reflect returns the unit direction of a ray with unit direction incoming
// after it bounces off a surface with unit normal
func (b Bounce) Reflect(incoming, normal core.Vec3) core.Vec3 {
	return incoming.Mirror(normal).Normalize()
}

// Tint attenuates the reflected color by this surface's color and the
// distance travelled to reach the surface
func (b Bounce) Tint(reflected core.Color, distance float64) core.Color {
	return b.Color.Light(reflected, distance)
}
