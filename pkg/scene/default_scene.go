package scene

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// NewDefaultScene creates the reference scene: a small sphere above and in front of a
// larger one, rendered at 1280x720
func NewDefaultScene() *Scene {
	return &Scene{
		Name: "default",
		Spheres: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0.0, 1.0, -4.0), 1.0),
			geometry.NewSphere(core.NewVec3(2.0, -1.0, -8.5), 2.0),
		},
		Width:  1280,
		Height: 720,
	}
}

// NewSingleSphereScene creates a unit sphere centered on the view axis
func NewSingleSphereScene() *Scene {
	return &Scene{
		Name: "single",
		Spheres: []geometry.Sphere{
			geometry.NewSphere(core.NewVec3(0, 0, -5), 1.0),
		},
		Width:  640,
		Height: 360,
	}
}

// NewEmptyScene creates a scene without geometry; every pixel is background
func NewEmptyScene() *Scene {
	return &Scene{
		Name:    "empty",
		Spheres: []geometry.Sphere{},
		Width:   640,
		Height:  360,
	}
}
