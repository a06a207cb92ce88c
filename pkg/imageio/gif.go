package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"os"
	"path/filepath"
)

// SaveGIF writes the frames as a looping animated GIF.
// delay is in 100ths of a second (e.g., 5 => 20 fps).
func SaveGIF(frames []image.Image, path string, delay int) error {
	if len(frames) == 0 {
		return errors.New("no frames to save")
	}

	out := &gif.GIF{
		Image:     make([]*image.Paletted, 0, len(frames)),
		Delay:     make([]int, 0, len(frames)),
		LoopCount: 0,
	}
	for _, frame := range frames {
		// Quantize to paletted for GIF
		paletted := image.NewPaletted(frame.Bounds(), palette.Plan9)
		draw.FloydSteinberg.Draw(paletted, paletted.Bounds(), frame, frame.Bounds().Min)

		out.Image = append(out.Image, paletted)
		out.Delay = append(out.Delay, delay)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("while creating output directory %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("while creating %s: %w", path, err)
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return fmt.Errorf("while encoding GIF %s: %w", path, err)
	}
	return f.Close()
}
