package renderer

import "github.com/df07/go-bounce-raytracer/pkg/core"

// FieldOfView is the half-width of the view window at z = 1: the leftmost
// column looks along (-FieldOfView, y, 1) and the rightmost along (+FieldOfView, y, 1).
const FieldOfView = 0.6

// Camera maps pixel coordinates to primary rays. It looks along +z from
// origin, with row 0 at the top of the view.
type Camera struct {
	origin core.Vec3
	xrange float64 // Half the width in pixels, measured between pixel centers
	yrange float64 // Half the height in pixels
	step   float64 // World units per pixel on the z = 1 window
}

// NewCamera creates a camera for a width x height picture
func NewCamera(origin core.Vec3, width, height int) *Camera {
	xrange := float64(width-1) / 2
	yrange := float64(height-1) / 2

	step := 0.0
	if xrange > 0 {
		step = FieldOfView / xrange
	}

	return &Camera{
		origin: origin,
		xrange: xrange,
		yrange: yrange,
		step:   step,
	}
}

// Direction returns the (unnormalized) direction of the ray through a pixel
func (c *Camera) Direction(row, col int) core.Vec3 {
	x := c.step * (float64(col) - c.xrange)
	y := c.step * (c.yrange - float64(row))
	return core.NewVec3(x, y, 1)
}

// GetRay returns the primary ray for a pixel
func (c *Camera) GetRay(row, col int) core.Ray {
	return core.NewRay(c.origin, c.Direction(row, col))
}
