package renderer

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func assertDirectionNear(t *testing.T, expected, got core.Vec3) {
	t.Helper()
	if math.Abs(got.X-expected.X) > 1e-9 ||
		math.Abs(got.Y-expected.Y) > 1e-9 ||
		math.Abs(got.Z-expected.Z) > 1e-9 {
		t.Errorf("Expected direction %v, got %v", expected, got)
	}
}

func TestCamera_CenterPixelLooksForward(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 101, 51)

	ray := camera.GetRay(50, 25)
	assertDirectionNear(t, core.NewVec3(0, 0, -1), ray.Direction)
	if !ray.Origin.IsZero() {
		t.Errorf("Expected ray origin at the world origin, got %v", ray.Origin)
	}
}

func TestCamera_PixelDirectionFormula(t *testing.T) {
	width, height := 1280, 720
	camera := NewCamera(DefaultCameraConfig(), width, height)
	aspect := float64(width) / float64(height)
	depth := -1 / math.Tan(math.Pi/6)

	tests := []struct {
		name string
		x, y int
	}{
		{"top left", 0, 0},
		{"bottom right", width - 1, height - 1},
		{"arbitrary", 313, 577},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expected := core.NewVec3(
				(2*(float64(tt.x)+0.5)/float64(width)-1)*aspect,
				1-2*(float64(tt.y)+0.5)/float64(height),
				depth,
			).Normalize()
			assertDirectionNear(t, expected, camera.GetRay(tt.x, tt.y).Direction)
		})
	}
}

func TestCamera_TopRowPointsUp(t *testing.T) {
	camera := NewCamera(DefaultCameraConfig(), 64, 32)

	top := camera.GetRay(0, 0).Direction
	if top.X >= 0 || top.Y <= 0 {
		t.Errorf("Expected top-left ray to point left and up, got %v", top)
	}
	bottom := camera.GetRay(63, 31).Direction
	if bottom.X <= 0 || bottom.Y >= 0 {
		t.Errorf("Expected bottom-right ray to point right and down, got %v", bottom)
	}
}

func TestCamera_Symmetry(t *testing.T) {
	width, height := 40, 30
	camera := NewCamera(DefaultCameraConfig(), width, height)

	for _, p := range [][2]int{{0, 0}, {7, 3}, {19, 14}} {
		a := camera.GetRay(p[0], p[1]).Direction
		b := camera.GetRay(width-1-p[0], height-1-p[1]).Direction
		assertDirectionNear(t, core.NewVec3(-a.X, -a.Y, a.Z), b)
	}
}

func TestCamera_UnitDirections(t *testing.T) {
	camera := NewCamera(CameraConfig{VFov: 90}, 17, 9)

	for y := 0; y < 9; y++ {
		for x := 0; x < 17; x++ {
			if l := camera.GetRay(x, y).Direction.Length(); math.Abs(l-1) > 1e-12 {
				t.Fatalf("Expected unit direction at (%d,%d), got length %f", x, y, l)
			}
		}
	}
}

func TestCamera_FieldOfView(t *testing.T) {
	// With a 90 degree field of view the top edge of the image sits at 45 degrees
	camera := NewCamera(CameraConfig{VFov: 90}, 1, 1000000)
	top := camera.GetRay(0, 0).Direction

	angle := math.Atan2(top.Y, -top.Z)
	if math.Abs(angle-math.Pi/4) > 1e-5 {
		t.Errorf("Expected top edge at 45 degrees, got %f degrees", angle*180/math.Pi)
	}
}
