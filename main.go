package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/loaders"
	"github.com/df07/go-sphere-raytracer/pkg/publish"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

func main() {
	cfg, err := loadConfig(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if cfg.Help {
		printUsage(os.Stdout)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := renderer.NewDefaultLogger()
	if err := run(ctx, cfg, logger); err != nil {
		logger.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Sphere Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	newFlagSet(&Config{}, w).PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Fprintf(w, "  %-8s %s (%dx%d)\n", info.Name, info.Description, info.Width, info.Height)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: RAYTRACER_OUTPUT, RAYTRACER_WORKERS, S3_ENDPOINT, S3_REGION,")
	fmt.Fprintln(w, "S3_BUCKET, S3_ACCESS_KEY, S3_SECRET_KEY, S3_PREFIX, S3_PUBLIC_READ")
}

// run renders the configured scene and writes (and optionally uploads) the result
func run(ctx context.Context, cfg *Config, logger core.Logger) error {
	selectedScene, err := scene.Create(cfg.Scene)
	if err != nil {
		return err
	}

	width, height := cfg.Width, cfg.Height
	if width == 0 {
		width = selectedScene.Width
	}
	if height == 0 {
		height = selectedScene.Height
	}

	// Fail on a bad extension before spending time rendering
	if _, err := loaders.FormatFromPath(cfg.Output); err != nil {
		return err
	}

	var publisher *publish.S3Publisher
	if cfg.Upload {
		if publisher, err = publish.NewS3Publisher(cfg.S3, logger); err != nil {
			return err
		}
	}

	logger.Printf("Rendering scene %q at %dx%d...\n", selectedScene.Name, width, height)

	config := renderer.DefaultConfig()
	config.NumWorkers = cfg.Workers
	raytracer := renderer.NewRaytracer(selectedScene.Spheres, width, height, config, logger)

	var fb *renderer.FrameBuffer
	if cfg.Parallel {
		fb, _, err = raytracer.RenderParallel(ctx)
	} else {
		fb, _, err = raytracer.Render(ctx)
	}
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	logger.Printf("Average luminance: %.4f\n", renderer.AverageLuminance(fb))

	if err := loaders.SaveFrame(cfg.Output, fb); err != nil {
		return err
	}
	logger.Printf("Render saved as %s\n", cfg.Output)
	outputs := []string{cfg.Output}

	if cfg.Thumbnail > 0 {
		thumbPath := loaders.ThumbnailPath(cfg.Output)
		thumb := loaders.Thumbnail(loaders.ToImage(fb), cfg.Thumbnail)
		if err := loaders.SaveImage(thumbPath, thumb); err != nil {
			return err
		}
		logger.Printf("Thumbnail saved as %s\n", thumbPath)
		outputs = append(outputs, thumbPath)
	}

	if publisher != nil {
		for _, path := range outputs {
			if _, err := publisher.PublishFile(ctx, path); err != nil {
				return err
			}
		}
	}

	return nil
}
