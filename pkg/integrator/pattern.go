package integrator

import (
	"math"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

// TextureCoords maps a unit surface normal to spherical (u, v) coordinates in [0, 1].
// u follows longitude around the y axis, v follows latitude from the +y pole.
func TextureCoords(normal core.Vec3) (u, v float64) {
	u = 0.5 * (1 + math.Atan2(normal.Z, normal.X)/math.Pi)
	v = math.Acos(normal.Y) / math.Pi
	return u, v
}

// CheckerOn reports whether (u, v) falls on an "on" tile of a tiles x tiles checkerboard
func CheckerOn(u, v float64, tiles int) bool {
	n := float64(tiles)
	band := int(math.Floor(u*n)) + int(math.Floor(v*n))
	return band%2 == 0
}
