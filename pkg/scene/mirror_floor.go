package scene

import (
	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

// NewMirrorFloorScene creates mirror spheres standing on a reflective floor
// under a glowing ceiling, with a small green lamp at the back
func NewMirrorFloorScene() *Scene {
	floor := material.NewBounce(core.Gray(0.8), 0.5)
	ceiling := material.NewLight(core.NewColor(1.0, 0.95, 0.85))
	red := material.NewBounce(core.NewColor(0.9, 0.3, 0.25), 1.0)
	silver := material.NewBounce(core.Gray(0.95), 1.0)
	lamp := material.NewLight(core.Green)

	return NewScene("mirror-floor").
		AddPlane(core.NewVec3(0, -30, 0), core.NewVec3(0, 1, 0), floor).
		AddPlane(core.NewVec3(0, 60, 0), core.NewVec3(0, -1, 0), ceiling).
		AddSphere(core.NewVec3(-25, -10, 90), 20, red).
		AddSphere(core.NewVec3(25, -10, 110), 20, silver).
		AddSphere(core.NewVec3(0, 20, 140), 10, lamp)
}
