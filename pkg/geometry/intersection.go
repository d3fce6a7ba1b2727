package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Intersection identifies the nearest sphere hit by a ray
type Intersection struct {
	SphereIndex int     // Index into the scene's sphere list
	Distance    float64 // Parametric distance along the ray to the near surface
}

// Point returns the hit position for the ray that produced this intersection
func (i Intersection) Point(ray core.Ray) core.Vec3 {
	return ray.At(i.Distance)
}

// Trace finds the nearest sphere hit by the ray.
// Spheres are scanned in order and only a strictly smaller distance replaces the
// current best, so on exact ties the earlier sphere wins. An empty scene or a
// complete miss reports false.
func Trace(ray core.Ray, spheres []Sphere) (Intersection, bool) {
	nearest := Intersection{Distance: math.Inf(1)}
	hitAnything := false

	for i, sphere := range spheres {
		distance, isHit := sphere.Intersect(ray)
		if !isHit {
			continue
		}
		if distance < nearest.Distance {
			nearest = Intersection{SphereIndex: i, Distance: distance}
			hitAnything = true
		}
	}

	if !hitAnything {
		return Intersection{}, false
	}
	return nearest, true
}

// Occluded reports whether the ray hits any sphere at all
func Occluded(ray core.Ray, spheres []Sphere) bool {
	_, isHit := Trace(ray, spheres)
	return isHit
}
