package core

import (
	"image/color"
	"math"
)

// AttenuationExponent controls the distance falloff applied by Color.Light.
// It is intentionally soft: brightness falls off as distance^0.05.
const AttenuationExponent = 0.05

// Color is a linear RGB color. Channels are conventionally in [0, 1] but are
// not clamped until converted for display.
type Color struct {
	R, G, B float64
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
	Red   = Color{1, 0, 0}
	Green = Color{0, 1, 0}
	Blue  = Color{0, 0, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all three channels set to v
func Gray(v float64) Color {
	return Color{v, v, v}
}

// MultiplyColor returns the component-wise product of two colors
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

// Scale returns the color multiplied by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Light transports contribution through c over the given travel distance:
// c * contribution / distance^AttenuationExponent, per channel.
// Non-positive distances apply no falloff.
func (c Color) Light(contribution Color, distance float64) Color {
	falloff := 1.0
	if distance > 0 {
		falloff = math.Pow(distance, AttenuationExponent)
	}
	return c.MultiplyColor(contribution).Scale(1 / falloff)
}

// Val converts the color to 8-bit display channels.
// Each channel is multiplied by 255 and truncated toward zero, then
// saturated to [0, 255]; NaN becomes 0.
func (c Color) Val() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

// RGBA returns the opaque display color
func (c Color) RGBA() color.RGBA {
	r, g, b := c.Val()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func channelByte(v float64) uint8 {
	scaled := v * 255
	switch {
	case math.IsNaN(scaled) || scaled <= 0:
		return 0
	case scaled >= 255:
		return 255
	default:
		return uint8(scaled)
	}
}
