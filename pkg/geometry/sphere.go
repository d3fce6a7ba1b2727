package geometry

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// Sphere represents a sphere shape. Radius is expected to be positive but is not validated.
type Sphere struct {
	Radius float64
	Center core.Vec3
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{
		Radius: radius,
		Center: center,
	}
}

// Intersect returns the distance along the ray to the near surface of the sphere.
//
// The test uses the projection of the center onto the ray rather than the full
// quadratic. Spheres whose center projects behind the origin are rejected outright,
// which is only correct while the ray origin lies outside every sphere.
func (s Sphere) Intersect(ray core.Ray) (float64, bool) {
	// Vector from ray origin to sphere center
	oc := s.Center.Subtract(ray.Origin)

	proj := ray.Direction.Dot(oc)
	if proj < 0 {
		return 0, false
	}

	// Squared distance from the center to the ray line
	d2 := oc.Dot(oc) - proj*proj
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	return proj - math.Sqrt(r2-d2), true
}

// Normal returns the outward unit normal at a point on the surface
func (s Sphere) Normal(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
