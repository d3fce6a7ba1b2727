package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	Tiles       int           // Number of tiles the frame was split into
	Workers     int           // Number of goroutines that shaded pixels
	Duration    time.Duration // Wall time spent shading
}

// Milliseconds returns the render duration in whole milliseconds
func (s RenderStats) Milliseconds() int64 {
	return s.Duration.Milliseconds()
}

// AverageLuminance returns the mean luminance of the frame with colors clamped to [0, 1]
func AverageLuminance(fb *FrameBuffer) float64 {
	if len(fb.Pixels) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range fb.Pixels {
		total += c.Clamp(0, 1).Luminance()
	}
	return total / float64(len(fb.Pixels))
}
