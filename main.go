// bounce renders scenes of mirror spheres and glowing lights with a
// recursive ray tracer.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/df07/go-bounce-raytracer/pkg/config"
	"github.com/df07/go-bounce-raytracer/pkg/imageio"
	"github.com/df07/go-bounce-raytracer/pkg/publish"
	"github.com/df07/go-bounce-raytracer/pkg/renderer"
	"github.com/df07/go-bounce-raytracer/pkg/scene"
)

var cmdRoot = &cobra.Command{
	Use:   "bounce",
	Short: "Recursive mirror ray tracer",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// glog reads its flags from the standard flag set.
		return flag.CommandLine.Parse(nil)
	},
}

var envFile string

func init() {
	cmdRoot.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	cmdRoot.PersistentFlags().StringVar(&envFile, "env-file", ".env", "File of RAYTRACER_* settings loaded before the environment.")
}

var (
	flagScene     string
	flagWidth     int
	flagHeight    int
	flagDepth     int
	flagWorkers   int
	flagOut       string
	flagThumbnail int
	flagFrames    int
	flagDelay     int
	flagUpload    bool
)

var cmdRender = &cobra.Command{
	Use:   "render",
	Short: "Render one still image",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		paths, err := renderStill(ctx, cfg)
		if err != nil {
			return err
		}
		if flagUpload {
			return uploadFiles(ctx, cfg.S3, paths)
		}
		return nil
	},
}

var cmdAnimate = &cobra.Command{
	Use:   "animate",
	Short: "Render every frame of a scene into an animated GIF",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		path, err := renderGIF(ctx, cfg)
		if err != nil {
			return err
		}
		if flagUpload {
			return uploadFiles(ctx, cfg.S3, []string{path})
		}
		return nil
	},
}

var cmdScenes = &cobra.Command{
	Use:   "scenes",
	Short: "List the built-in scenes",
	Run: func(cmd *cobra.Command, args []string) {
		listScenes(cmd.OutOrStdout())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{cmdRender, cmdAnimate} {
		cmd.Flags().StringVar(&flagScene, "scene", "", "Built-in scene to render (see 'bounce scenes').")
		cmd.Flags().IntVar(&flagWidth, "width", 0, "Picture width in pixels.")
		cmd.Flags().IntVar(&flagHeight, "height", 0, "Picture height in pixels.")
		cmd.Flags().IntVar(&flagDepth, "depth", 0, "Bounce budget per camera ray.")
		cmd.Flags().IntVar(&flagWorkers, "workers", 0, "Parallel workers (0 = CPU count).")
		cmd.Flags().StringVar(&flagOut, "out", "", "Output image path.")
		cmd.Flags().BoolVar(&flagUpload, "upload", false, "Upload results to the configured S3 bucket.")
	}
	cmdRender.Flags().IntVar(&flagThumbnail, "thumbnail", 0, "Also save a thumbnail this many pixels wide.")
	cmdAnimate.Flags().IntVar(&flagFrames, "frames", 0, "Number of animation frames.")
	cmdAnimate.Flags().IntVar(&flagDelay, "delay", 0, "Delay between frames in 100ths of a second.")
}

// loadConfig reads the environment configuration and applies any flags
// given on the command line.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("scene") {
		cfg.Scene = flagScene
	}
	if flags.Changed("width") {
		cfg.Width = flagWidth
	}
	if flags.Changed("height") {
		cfg.Height = flagHeight
	}
	if flags.Changed("depth") {
		cfg.MaxDepth = flagDepth
	}
	if flags.Changed("workers") {
		cfg.Workers = flagWorkers
	}
	if flags.Changed("out") {
		cfg.Output = flagOut
	}
	if flags.Changed("thumbnail") {
		cfg.ThumbnailWidth = flagThumbnail
	}
	if flags.Changed("frames") {
		cfg.Frames = flagFrames
	}
	if flags.Changed("delay") {
		cfg.FrameDelay = flagDelay
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// renderStill renders cfg.Scene and saves it to cfg.Output, plus a
// thumbnail when one is configured. It returns the saved paths.
func renderStill(ctx context.Context, cfg config.Config) ([]string, error) {
	s, err := scene.New(cfg.Scene, 0, 1)
	if err != nil {
		return nil, fmt.Errorf("while creating scene: %w", err)
	}
	glog.Infof("Rendering scene %q with %d primitives", s.Name, s.GetPrimitiveCount())

	picture := renderer.NewPicture(cfg.Width, cfg.Height)
	rt := renderer.NewRaytracer(s, cfg.MaxDepth)
	stats, err := renderer.RenderParallel(ctx, rt, picture, renderer.ParallelConfig{NumWorkers: cfg.Workers}, renderer.NewGlogLogger(1))
	if err != nil {
		return nil, fmt.Errorf("while rendering scene %q: %w", cfg.Scene, err)
	}

	img := picture.Image()
	if err := imageio.Save(img, cfg.Output); err != nil {
		return nil, err
	}
	glog.Infof("Render of %d pixels finished in %v, saved as %s", stats.TotalPixels, stats.Elapsed, cfg.Output)
	paths := []string{cfg.Output}

	if cfg.ThumbnailWidth > 0 {
		thumbPath := imageio.ThumbnailPath(cfg.Output)
		if err := imageio.Save(imageio.Thumbnail(img, cfg.ThumbnailWidth), thumbPath); err != nil {
			return nil, err
		}
		glog.Infof("Thumbnail saved as %s", thumbPath)
		paths = append(paths, thumbPath)
	}
	return paths, nil
}

// renderGIF renders every frame of cfg.Scene and saves them as a GIF next
// to cfg.Output. It returns the GIF path.
func renderGIF(ctx context.Context, cfg config.Config) (string, error) {
	build, err := scene.Builder(cfg.Scene, cfg.Frames)
	if err != nil {
		return "", fmt.Errorf("while creating scene: %w", err)
	}

	pictures, stats, err := renderer.RenderAnimation(ctx,
		func(frame int) renderer.Scene { return build(frame) },
		renderer.AnimationConfig{
			Frames:     cfg.Frames,
			Width:      cfg.Width,
			Height:     cfg.Height,
			MaxDepth:   cfg.MaxDepth,
			NumWorkers: cfg.Workers,
		},
		renderer.NewGlogLogger(1))
	if err != nil {
		return "", fmt.Errorf("while animating scene %q: %w", cfg.Scene, err)
	}

	path := gifPath(cfg.Output)
	if err := imageio.SaveGIF(pictureImages(pictures), path, cfg.FrameDelay); err != nil {
		return "", err
	}
	glog.Infof("Animation of %d frames finished in %v, saved as %s", len(pictures), stats.Elapsed, path)
	return path, nil
}

func pictureImages(pictures []*renderer.Picture) []image.Image {
	images := make([]image.Image, len(pictures))
	for i, p := range pictures {
		images[i] = p.Image()
	}
	return images
}

// gifPath swaps the extension of path for .gif
func gifPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ".gif"
}

// fileUploader stores named blobs somewhere remote
type fileUploader interface {
	Upload(ctx context.Context, name string, data []byte) (string, error)
}

func uploadFiles(ctx context.Context, cfg config.S3Config, paths []string) error {
	if !cfg.Enabled() {
		return fmt.Errorf("%w: --upload needs %s", config.ErrInvalid, config.EnvS3Bucket)
	}
	uploader, err := publish.NewUploader(cfg, renderer.NewGlogLogger(0))
	if err != nil {
		return err
	}
	return uploadAll(ctx, uploader, paths)
}

func uploadAll(ctx context.Context, uploader fileUploader, paths []string) error {
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("while reading %s: %w", path, err)
		}
		if _, err := uploader.Upload(ctx, path, data); err != nil {
			return err
		}
	}
	return nil
}

func listScenes(w io.Writer) {
	for _, info := range scene.ListScenes() {
		kind := "still"
		if info.Animated {
			kind = "animated"
		}
		fmt.Fprintf(w, "%-14s %-9s %s\n", info.Name, kind, info.Description)
	}
}

func main() {
	defer glog.Flush()

	cmdRoot.AddCommand(cmdRender, cmdAnimate, cmdScenes)

	if err := cmdRoot.Execute(); err != nil {
		glog.Flush()
		os.Exit(1)
	}
}
