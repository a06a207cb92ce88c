// Package config loads render settings from defaults, an optional .env file
// and RAYTRACER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-bounce-raytracer/pkg/renderer"
)

// ErrInvalid is wrapped by every validation failure
var ErrInvalid = errors.New("invalid configuration")

// Environment variable names
const (
	EnvWidth          = "RAYTRACER_WIDTH"
	EnvHeight         = "RAYTRACER_HEIGHT"
	EnvMaxDepth       = "RAYTRACER_MAX_DEPTH"
	EnvWorkers        = "RAYTRACER_WORKERS"
	EnvScene          = "RAYTRACER_SCENE"
	EnvOutput         = "RAYTRACER_OUTPUT"
	EnvFrames         = "RAYTRACER_FRAMES"
	EnvFrameDelay     = "RAYTRACER_FRAME_DELAY"
	EnvThumbnailWidth = "RAYTRACER_THUMBNAIL_WIDTH"
	EnvS3Bucket       = "RAYTRACER_S3_BUCKET"
	EnvS3Region       = "RAYTRACER_S3_REGION"
	EnvS3Endpoint     = "RAYTRACER_S3_ENDPOINT"
	EnvS3AccessKey    = "RAYTRACER_S3_ACCESS_KEY"
	EnvS3SecretKey    = "RAYTRACER_S3_SECRET_KEY"
	EnvS3Prefix       = "RAYTRACER_S3_PREFIX"
)

// Config holds everything needed to render and publish images
type Config struct {
	Width          int    // Picture width in pixels
	Height         int    // Picture height in pixels
	MaxDepth       int    // Bounce budget per camera ray
	Workers        int    // Parallel workers (0 = use CPU count)
	Scene          string // Built-in scene name
	Output         string // Output image path
	Frames         int    // Frames in an animation
	FrameDelay     int    // GIF frame delay in 100ths of a second
	ThumbnailWidth int    // Width of an extra thumbnail (0 = none)

	S3 S3Config
}

// S3Config holds the optional upload destination
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	Prefix    string // Key prefix, e.g. "renders/"
}

// Enabled reports whether uploads are configured
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		MaxDepth:   renderer.DefaultMaxDepth,
		Workers:    0,
		Scene:      "default",
		Output:     "output/render.png",
		Frames:     36,
		FrameDelay: 5,
		S3: S3Config{
			Region: "us-east-1",
		},
	}
}

// Load returns the defaults overridden by envFile (ignored when missing or
// empty) and then by the process environment. Values already in the
// environment win over the file.
func Load(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("while loading %s: %w", envFile, err)
		}
	}

	cfg := Default()
	ints := []struct {
		key string
		dst *int
	}{
		{EnvWidth, &cfg.Width},
		{EnvHeight, &cfg.Height},
		{EnvMaxDepth, &cfg.MaxDepth},
		{EnvWorkers, &cfg.Workers},
		{EnvFrames, &cfg.Frames},
		{EnvFrameDelay, &cfg.FrameDelay},
		{EnvThumbnailWidth, &cfg.ThumbnailWidth},
	}
	for _, v := range ints {
		if err := lookupInt(v.key, v.dst); err != nil {
			return Config{}, err
		}
	}

	strs := []struct {
		key string
		dst *string
	}{
		{EnvScene, &cfg.Scene},
		{EnvOutput, &cfg.Output},
		{EnvS3Bucket, &cfg.S3.Bucket},
		{EnvS3Region, &cfg.S3.Region},
		{EnvS3Endpoint, &cfg.S3.Endpoint},
		{EnvS3AccessKey, &cfg.S3.AccessKey},
		{EnvS3SecretKey, &cfg.S3.SecretKey},
		{EnvS3Prefix, &cfg.S3.Prefix},
	}
	for _, v := range strs {
		if value, ok := os.LookupEnv(v.key); ok {
			*v.dst = value
		}
	}

	return cfg, nil
}

func lookupInt(key string, dst *int) error {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalid, key, value)
	}
	*dst = n
	return nil
}

// Validate checks that the configuration can be rendered
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: size %dx%d must be positive", ErrInvalid, c.Width, c.Height)
	case c.MaxDepth < 0:
		return fmt.Errorf("%w: max depth %d must not be negative", ErrInvalid, c.MaxDepth)
	case c.Workers < 0:
		return fmt.Errorf("%w: workers %d must not be negative", ErrInvalid, c.Workers)
	case c.Frames <= 0:
		return fmt.Errorf("%w: frames %d must be positive", ErrInvalid, c.Frames)
	case c.FrameDelay < 0:
		return fmt.Errorf("%w: frame delay %d must not be negative", ErrInvalid, c.FrameDelay)
	case c.ThumbnailWidth < 0:
		return fmt.Errorf("%w: thumbnail width %d must not be negative", ErrInvalid, c.ThumbnailWidth)
	case c.Output == "":
		return fmt.Errorf("%w: output path is empty", ErrInvalid)
	}
	return nil
}
