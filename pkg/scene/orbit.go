package scene

import (
	"math"

	"github.com/df07/go-bounce-raytracer/pkg/core"
	"github.com/df07/go-bounce-raytracer/pkg/material"
)

const (
	orbitRadius = 45.0
	orbitHeight = 10.0
)

// orbitCenter is the position of the light the mirror sphere circles around
var orbitCenter = core.NewVec3(0, 0, 120)

// NewOrbitScene creates frame of an animation in which a mirror sphere
// circles a blue light sphere above a reflective floor. One full orbit takes
// frames frames; frames <= 0 yields the first frame.
func NewOrbitScene(frame, frames int) *Scene {
	angle := 0.0
	if frames > 0 {
		angle = 2 * math.Pi * float64(frame%frames) / float64(frames)
	}
	offset := core.NewVec3(orbitRadius, orbitHeight, 0).RotateY(angle)

	light := material.NewLight(core.NewColor(0.3, 0.5, 1.0))
	mirror := material.NewBounce(core.Gray(0.9), 1.0)
	floor := material.NewBounce(core.NewColor(0.8, 0.75, 0.7), 0.2)

	return NewScene("orbit").
		AddSphere(orbitCenter, 20, light).
		AddSphere(orbitCenter.Add(offset), 12, mirror).
		AddPlane(core.NewVec3(0, -25, 0), core.NewVec3(0, 1, 0), floor)
}
