package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name    string
	Spheres []geometry.Sphere // Read-only once created; order decides ties
	Width   int               // Reference image width
	Height  int               // Reference image height
}

// GetSpheres returns the scene geometry
func (s *Scene) GetSpheres() []geometry.Sphere {
	return s.Spheres
}

// AspectRatio returns the reference width over height
func (s *Scene) AspectRatio() float64 {
	return float64(s.Width) / float64(s.Height)
}
