package renderer

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// CameraConfig contains pinhole camera settings
type CameraConfig struct {
	VFov float64 // Vertical field of view in degrees
}

// DefaultCameraConfig returns a 60 degree vertical field of view
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{VFov: 60}
}

// Camera is a pinhole at the origin looking down -z
type Camera struct {
	width, height int
	aspectRatio   float64
	depth         float64 // z component of every primary ray before normalization
}

// NewCamera creates a camera for an image of the given size
func NewCamera(config CameraConfig, width, height int) *Camera {
	fov := config.VFov * math.Pi / 180
	return &Camera{
		width:       width,
		height:      height,
		aspectRatio: float64(width) / float64(height),
		depth:       -1 / math.Tan(fov/2),
	}
}

// GetRay returns the primary ray through the center of pixel (x, y), y=0 at the top
func (c *Camera) GetRay(x, y int) core.Ray {
	direction := core.NewVec3(
		(2*(float64(x)+0.5)/float64(c.width)-1)*c.aspectRatio,
		1-2*(float64(y)+0.5)/float64(c.height),
		c.depth,
	)
	return core.NewRay(core.NewVec3(0, 0, 0), direction.Normalize())
}
