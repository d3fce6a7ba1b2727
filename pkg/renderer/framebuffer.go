package renderer

import "github.com/df07/go-sphere-raytracer/pkg/core"

// FrameBuffer holds unclamped pixel colors in row-major order, top row first
type FrameBuffer struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// NewFrameBuffer allocates a black frame buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pixels: make([]core.Vec3, width*height),
	}
}

// Index returns the slot for pixel (x, y)
func (fb *FrameBuffer) Index(x, y int) int {
	return y*fb.Width + x
}

// At returns the color at pixel (x, y)
func (fb *FrameBuffer) At(x, y int) core.Vec3 {
	return fb.Pixels[fb.Index(x, y)]
}

// Set stores the color at pixel (x, y)
func (fb *FrameBuffer) Set(x, y int, color core.Vec3) {
	fb.Pixels[fb.Index(x, y)] = color
}
