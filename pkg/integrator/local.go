package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/geometry"
)

// LocalIntegrator shades the nearest hit with ambient, diffuse and specular terms from a
// single directional light, hard shadows and a checkerboard pattern. No secondary bounces.
type LocalIntegrator struct {
	config   ShadingConfig
	lightDir core.Vec3 // normalized light direction
	toLight  core.Vec3 // -lightDir
}

// NewLocalIntegrator creates a local integrator for the given configuration
func NewLocalIntegrator(config ShadingConfig) *LocalIntegrator {
	lightDir := config.LightDirection.Normalize()
	return &LocalIntegrator{
		config:   config,
		lightDir: lightDir,
		toLight:  lightDir.Negate(),
	}
}

// Config returns the shading configuration
func (li *LocalIntegrator) Config() ShadingConfig {
	return li.config
}

// RayColor computes the color for a single camera ray
func (li *LocalIntegrator) RayColor(ray core.Ray, spheres []geometry.Sphere) core.Vec3 {
	hit, isHit := geometry.Trace(ray, spheres)
	if !isHit {
		return li.config.Background
	}

	sphere := spheres[hit.SphereIndex]
	point := hit.Point(ray)
	normal := sphere.Normal(point)

	pattern := li.patternFactor(normal)
	ambient := li.config.Ambient

	if li.inShadow(point, normal, spheres) {
		return ambient.Multiply(pattern)
	}

	diffuse := math.Max(0, normal.Dot(li.toLight)) * li.config.DiffuseStrength

	reflection := core.Reflect(ray.Direction, normal)
	specular := math.Pow(math.Max(0, reflection.Dot(li.toLight)), li.config.SpecularExponent) *
		li.config.SpecularStrength

	// Specular is added after the pattern so highlights stay untinted
	return ambient.AddScalar(diffuse).Multiply(pattern).AddScalar(specular)
}

// patternFactor returns the checker multiplier for a surface normal
func (li *LocalIntegrator) patternFactor(normal core.Vec3) float64 {
	u, v := TextureCoords(normal)
	if CheckerOn(u, v, li.config.CheckerTiles) {
		return li.config.CheckerDark
	}
	return 1.0
}

// inShadow casts a ray toward the light and reports whether any sphere blocks it.
// The test has no distance limit since the light is directional.
func (li *LocalIntegrator) inShadow(point, normal core.Vec3, spheres []geometry.Sphere) bool {
	origin := point.Add(normal.Multiply(li.config.ShadowBias))
	shadowRay := core.NewRay(origin, li.toLight)
	return geometry.Occluded(shadowRay, spheres)
}
