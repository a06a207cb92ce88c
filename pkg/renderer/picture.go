package renderer

import (
	"image"

	"github.com/df07/go-bounce-raytracer/pkg/core"
)

// Picture is a row-major grid of colors. Row 0 is the top of the image.
// Workers may write disjoint cells concurrently without synchronization.
type Picture struct {
	Width  int
	Height int
	Origin core.Vec3    // Camera position rays are cast from
	Pixels []core.Color // Height rows of Width colors
}

// NewPicture allocates a black picture with the camera at the world origin
func NewPicture(width, height int) *Picture {
	return &Picture{
		Width:  width,
		Height: height,
		Pixels: make([]core.Color, width*height),
	}
}

// At returns the color at the given row and column
func (p *Picture) At(row, col int) core.Color {
	return p.Pixels[row*p.Width+col]
}

// Set stores the color at the given row and column
func (p *Picture) Set(row, col int, c core.Color) {
	p.Pixels[row*p.Width+col] = c
}

// Image converts the picture to 8-bit RGBA; column maps to x and row to y
func (p *Picture) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.Width, p.Height))
	for row := 0; row < p.Height; row++ {
		for col := 0; col < p.Width; col++ {
			img.SetRGBA(col, row, p.At(row, col).RGBA())
		}
	}
	return img
}

// AverageLuminance returns the mean Rec. 709 luminance of the picture
func (p *Picture) AverageLuminance() float64 {
	if len(p.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range p.Pixels {
		total += 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	}
	return total / float64(len(p.Pixels))
}
