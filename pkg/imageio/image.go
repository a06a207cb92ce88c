package imageio

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"
)

// Save writes img to path, choosing the format from the file extension
// (.png, .jpg, .jpeg, .gif, .bmp, .tif, .tiff). Missing parent directories
// are created.
func Save(img image.Image, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("while creating output directory %s: %w", dir, err)
		}
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("while saving image %s: %w", path, err)
	}
	return nil
}

// Encode writes img to w in the format named by ext (with or without the dot)
func Encode(w io.Writer, img image.Image, ext string) error {
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("while choosing image format for %q: %w", ext, err)
	}
	if err := imaging.Encode(w, img, format); err != nil {
		return fmt.Errorf("while encoding %s image: %w", format, err)
	}
	return nil
}

// EncodeBytes encodes img in memory, for uploads
func EncodeBytes(img image.Image, ext string) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, img, ext); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Open loads an image file of any supported format
func Open(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("while opening image %s: %w", path, err)
	}
	return img, nil
}

// Thumbnail scales img down to maxWidth pixels wide, keeping its aspect
// ratio. Images already narrow enough are returned unchanged.
func Thumbnail(img image.Image, maxWidth int) image.Image {
	if maxWidth <= 0 || img.Bounds().Dx() <= maxWidth {
		return img
	}
	return resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
}

// ThumbnailPath returns the path a thumbnail of path is saved to:
// out/render.png becomes out/render_thumb.png
func ThumbnailPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_thumb" + ext
}
