package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-sphere-raytracer/pkg/core"
)

func TestTrace_EmptyScene(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if hit, isHit := Trace(ray, nil); isHit {
		t.Errorf("Expected no intersection for empty scene, got %+v", hit)
	}
}

func TestTrace_MissAll(t *testing.T) {
	spheres := []Sphere{
		NewSphere(core.NewVec3(0, 1, -4), 1.0),
		NewSphere(core.NewVec3(2, -1, -8.5), 2.0),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(-1, 0, 0))

	if hit, isHit := Trace(ray, spheres); isHit {
		t.Errorf("Expected miss, got %+v", hit)
	}
}

func TestTrace_Nearest(t *testing.T) {
	tests := []struct {
		name          string
		spheres       []Sphere
		expectedIndex int
		expectedDist  float64
	}{
		{
			name: "near sphere first",
			spheres: []Sphere{
				NewSphere(core.NewVec3(0, 0, -5), 1.0),
				NewSphere(core.NewVec3(0, 0, -10), 1.0),
			},
			expectedIndex: 0,
			expectedDist:  4,
		},
		{
			name: "near sphere second",
			spheres: []Sphere{
				NewSphere(core.NewVec3(0, 0, -10), 1.0),
				NewSphere(core.NewVec3(0, 0, -5), 1.0),
			},
			expectedIndex: 1,
			expectedDist:  4,
		},
		{
			name: "larger sphere further away is nearer surface",
			spheres: []Sphere{
				NewSphere(core.NewVec3(0, 0, -6), 1.0),
				NewSphere(core.NewVec3(0, 0, -8), 4.0),
			},
			expectedIndex: 1,
			expectedDist:  4,
		},
		{
			name: "exact tie keeps first in order",
			spheres: []Sphere{
				NewSphere(core.NewVec3(0, 0, -5), 1.0),
				NewSphere(core.NewVec3(0, 0, -6), 2.0),
			},
			expectedIndex: 0,
			expectedDist:  4,
		},
	}

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := Trace(ray, tt.spheres)
			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if hit.SphereIndex != tt.expectedIndex {
				t.Errorf("Expected sphere %d, got %d", tt.expectedIndex, hit.SphereIndex)
			}
			if math.Abs(hit.Distance-tt.expectedDist) > 1e-9 {
				t.Errorf("Expected distance=%f, got distance=%f", tt.expectedDist, hit.Distance)
			}
		})
	}
}

func TestTrace_SkipsSpheresBehind(t *testing.T) {
	spheres := []Sphere{
		NewSphere(core.NewVec3(0, 0, 5), 1.0),
		NewSphere(core.NewVec3(0, 0, -5), 1.0),
	}
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := Trace(ray, spheres)
	if !isHit || hit.SphereIndex != 1 {
		t.Errorf("Expected hit on sphere 1, got %+v (hit=%t)", hit, isHit)
	}
}

func TestIntersection_Point(t *testing.T) {
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit := Intersection{SphereIndex: 0, Distance: 4}

	expected := core.NewVec3(0, 0, -4)
	if hit.Point(ray).Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected point %v, got %v", expected, hit.Point(ray))
	}
}

func TestOccluded(t *testing.T) {
	spheres := []Sphere{NewSphere(core.NewVec3(0, 5, 0), 1.0)}

	up := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	if !Occluded(up, spheres) {
		t.Error("Expected upward ray to be occluded")
	}
	down := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, -1, 0))
	if Occluded(down, spheres) {
		t.Error("Expected downward ray to be clear")
	}
}
