package integrator

import (
	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// Integrator defines the interface for computing the color seen along a camera ray
type Integrator interface {
	// RayColor returns the unclamped color for ray against the given spheres.
	// Implementations must not mutate the scene so pixels can be shaded in any order.
	RayColor(ray core.Ray, spheres []geometry.Sphere) core.Vec3
}

// ShadingConfig contains the lighting and pattern constants used by the local integrator
type ShadingConfig struct {
	LightDirection core.Vec3 // Direction light travels; light arrives from its negation
	Background     core.Vec3 // Color returned when a ray hits nothing
	Ambient        core.Vec3 // Constant ambient term

	DiffuseStrength  float64 // Scale applied to the Lambert cosine
	SpecularStrength float64 // Scale applied to the Phong highlight
	SpecularExponent float64 // Phong exponent

	CheckerTiles int     // Bands per texture axis
	CheckerDark  float64 // Multiplier for tiles where the pattern is on

	// ShadowBias offsets shadow ray origins along the surface normal.
	// Zero casts shadow rays straight from the hit point.
	ShadowBias float64
}

// DefaultShadingConfig returns the reference lighting setup
func DefaultShadingConfig() ShadingConfig {
	return ShadingConfig{
		LightDirection:   core.NewVec3(1, -1, -1),
		Background:       core.NewVec3(0, 0, 0),
		Ambient:          core.NewVec3(0.1, 0.1, 0.1),
		DiffuseStrength:  0.8,
		SpecularStrength: 0.5,
		SpecularExponent: 32,
		CheckerTiles:     10,
		CheckerDark:      0.5,
		ShadowBias:       1e-4,
	}
}
