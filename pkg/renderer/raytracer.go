package renderer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"runtime"
	"time"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// ErrInvalidSize is returned when the requested image has no pixels
var ErrInvalidSize = errors.New("image width and height must be positive")

// Config contains rendering configuration
type Config struct {
	Camera     CameraConfig
	Shading    integrator.ShadingConfig
	TileSize   int // Edge length of parallel render tiles
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns the reference camera and shading setup
func DefaultConfig() Config {
	return Config{
		Camera:     DefaultCameraConfig(),
		Shading:    integrator.DefaultShadingConfig(),
		TileSize:   64,
		NumWorkers: 0,
	}
}

// Raytracer renders a fixed list of spheres from a pinhole camera
type Raytracer struct {
	spheres    []geometry.Sphere
	width      int
	height     int
	config     Config
	camera     *Camera
	integrator integrator.Integrator
	logger     core.Logger
}

// NewRaytracer creates a new raytracer. A nil logger discards output.
func NewRaytracer(spheres []geometry.Sphere, width, height int, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = NewNopLogger()
	}
	return &Raytracer{
		spheres:    spheres,
		width:      width,
		height:     height,
		config:     config,
		camera:     NewCamera(config.Camera, width, height),
		integrator: integrator.NewLocalIntegrator(config.Shading),
		logger:     logger,
	}
}

// SetIntegrator replaces the integrator used to shade pixels
func (rt *Raytracer) SetIntegrator(i integrator.Integrator) {
	rt.integrator = i
}

// Render shades every pixel on the calling goroutine, row by row.
// Cancellation is checked between rows.
func (rt *Raytracer) Render(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	fb := NewFrameBuffer(rt.width, rt.height)

	for y := 0; y < rt.height; y++ {
		if err := ctx.Err(); err != nil {
			return nil, RenderStats{}, err
		}
		rt.RenderBounds(image.Rect(0, y, rt.width, y+1), fb)
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Tiles:       1,
		Workers:     1,
		Duration:    time.Since(startTime),
	}
	rt.logger.Printf("Render time: %dms\n", stats.Milliseconds())
	return fb, stats, nil
}

// RenderParallel shades the frame in tiles across a worker pool.
// Each tile writes only its own pixels, so the result matches Render exactly.
func (rt *Raytracer) RenderParallel(ctx context.Context) (*FrameBuffer, RenderStats, error) {
	if err := rt.validate(); err != nil {
		return nil, RenderStats{}, err
	}

	startTime := time.Now()
	fb := NewFrameBuffer(rt.width, rt.height)
	tiles := NewTileGrid(rt.width, rt.height, rt.tileSize())

	pool := NewWorkerPool(rt, len(tiles), rt.config.NumWorkers)
	pool.Start()
	defer pool.Stop()

	for i, tile := range tiles {
		pool.SubmitTask(TileTask{
			Ctx:    ctx,
			Tile:   tile,
			TaskID: i,
			Buffer: fb,
		})
	}

	for i := 0; i < len(tiles); i++ {
		result, ok := pool.GetResult()
		if !ok {
			return nil, RenderStats{}, fmt.Errorf("worker pool closed unexpectedly")
		}
		if result.Error != nil {
			return nil, RenderStats{}, result.Error
		}
	}

	stats := RenderStats{
		TotalPixels: rt.width * rt.height,
		Tiles:       len(tiles),
		Workers:     pool.GetNumWorkers(),
		Duration:    time.Since(startTime),
	}
	rt.logger.Printf("Render time: %dms (%d tiles, %d workers)\n",
		stats.Milliseconds(), stats.Tiles, stats.Workers)
	return fb, stats, nil
}

// RenderBounds shades the pixels within bounds into fb
func (rt *Raytracer) RenderBounds(bounds image.Rectangle, fb *FrameBuffer) {
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			ray := rt.camera.GetRay(x, y)
			fb.Set(x, y, rt.integrator.RayColor(ray, rt.spheres))
		}
	}
}

func (rt *Raytracer) validate() error {
	if rt.width <= 0 || rt.height <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidSize, rt.width, rt.height)
	}
	return nil
}

func (rt *Raytracer) tileSize() int {
	if rt.config.TileSize <= 0 {
		return DefaultConfig().TileSize
	}
	return rt.config.TileSize
}

func (rt *Raytracer) numWorkers() int {
	if rt.config.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return rt.config.NumWorkers
}

// Render renders spheres at the given size with the default camera and shading
func Render(spheres []geometry.Sphere, width, height int) (*FrameBuffer, error) {
	rt := NewRaytracer(spheres, width, height, DefaultConfig(), nil)
	fb, _, err := rt.Render(context.Background())
	return fb, err
}
