package scene

import (
	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// NewDefaultScene creates two white mirror spheres in front of the camera
// with a large blue light sphere centered on the camera position. Primary
// rays start inside the light and do not see it; reflected rays do.
func NewDefaultScene() *Scene {
	white := material.NewBounce(core.White, 1.0)
	blue := material.NewLight(core.Blue)

	return NewScene("default").
		AddSphere(core.NewVec3(0, 25, 80), 20, white).
		AddSphere(core.NewVec3(20, -20, 60), 20, white).
		AddSphere(core.NewVec3(0, 0, 0), 40, blue)
}
