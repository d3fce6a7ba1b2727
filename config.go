package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-sphere-raytracer/pkg/publish"
)

// Config holds everything the CLI needs for one render
type Config struct {
	Scene     string
	Width     int // 0 uses the scene's reference width
	Height    int // 0 uses the scene's reference height
	Output    string
	Workers   int
	Parallel  bool
	Thumbnail uint // Longest thumbnail side; 0 disables thumbnails
	Upload    bool
	EnvFile   string
	Help      bool
	S3        publish.S3Config
}

// getEnv returns the environment value for key or fallback when unset
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func newFlagSet(cfg *Config, output io.Writer) *flag.FlagSet {
	flags := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	flags.SetOutput(output)

	flags.StringVar(&cfg.Scene, "scene", "default", "Scene name: 'default', 'single' or 'empty'")
	flags.IntVar(&cfg.Width, "width", 0, "Image width in pixels (0 = scene default)")
	flags.IntVar(&cfg.Height, "height", 0, "Image height in pixels (0 = scene default)")
	flags.StringVar(&cfg.Output, "output", "output.ppm", "Output file; extension selects ppm, png or jpg")
	flags.IntVar(&cfg.Workers, "workers", 0, "Parallel workers (0 = CPU count)")
	flags.BoolVar(&cfg.Parallel, "parallel", false, "Render tiles in parallel")
	flags.UintVar(&cfg.Thumbnail, "thumbnail", 0, "Also write a PNG thumbnail with this longest side")
	flags.BoolVar(&cfg.Upload, "upload", false, "Upload the output to S3 (requires S3_BUCKET)")
	flags.StringVar(&cfg.EnvFile, "env", ".env", "Environment file to load")
	flags.BoolVar(&cfg.Help, "help", false, "Show help information")
	return flags
}

// loadConfig parses command line flags, then fills anything not given on the command
// line from the environment, after loading the env file if it exists
func loadConfig(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}
	flags := newFlagSet(cfg, output)
	if err := flags.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Help {
		return cfg, nil
	}

	if err := godotenv.Load(cfg.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", cfg.EnvFile, err)
	}

	set := make(map[string]bool)
	flags.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set["output"] {
		cfg.Output = getEnv("RAYTRACER_OUTPUT", cfg.Output)
	}
	if !set["workers"] {
		if value, ok := os.LookupEnv("RAYTRACER_WORKERS"); ok {
			workers, err := strconv.Atoi(value)
			if err != nil {
				return nil, fmt.Errorf("invalid RAYTRACER_WORKERS: %s", value)
			}
			cfg.Workers = workers
		}
	}

	cfg.S3 = publish.S3Config{
		Endpoint:   os.Getenv("S3_ENDPOINT"),
		Region:     getEnv("S3_REGION", "us-east-1"),
		Bucket:     os.Getenv("S3_BUCKET"),
		AccessKey:  os.Getenv("S3_ACCESS_KEY"),
		SecretKey:  os.Getenv("S3_SECRET_KEY"),
		Prefix:     os.Getenv("S3_PREFIX"),
		PublicRead: getEnv("S3_PUBLIC_READ", "false") == "true",
	}

	return cfg, nil
}
