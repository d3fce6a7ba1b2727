package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-12

func toMgl(v Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func assertVecNear(t *testing.T, expected, got Vec3) {
	t.Helper()
	if got.Subtract(expected).Length() > tolerance {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestVec3_Dot(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec3
		expected float64
	}{
		{"orthogonal", NewVec3(1, 0, 0), NewVec3(0, 1, 0), 0},
		{"parallel", NewVec3(2, 0, 0), NewVec3(3, 0, 0), 6},
		{"opposite", NewVec3(1, 2, 3), NewVec3(-1, -2, -3), -14},
		{"mixed", NewVec3(1.5, -2, 0.25), NewVec3(4, 0.5, -8), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Dot(tt.b)
			if math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
			if ref := toMgl(tt.a).Dot(toMgl(tt.b)); math.Abs(got-ref) > tolerance {
				t.Errorf("Dot disagrees with mgl64: %f vs %f", got, ref)
			}
		})
	}
}

func TestVec3_Normalize(t *testing.T) {
	vectors := []Vec3{
		NewVec3(3, 4, 0),
		NewVec3(1, -1, -1),
		NewVec3(0, 0, -5),
		NewVec3(0.001, 2000, -3),
	}

	for _, v := range vectors {
		n := v.Normalize()
		if math.Abs(n.Length()-1) > tolerance {
			t.Errorf("Expected unit length for %v, got %f", v, n.Length())
		}
		ref := toMgl(v).Normalize()
		assertVecNear(t, NewVec3(ref[0], ref[1], ref[2]), n)
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	// Zero-length input is a caller precondition violation; it must not produce NaNs
	n := NewVec3(0, 0, 0).Normalize()
	if !n.IsZero() {
		t.Errorf("Expected zero vector, got %v", n)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		incident Vec3
		normal   Vec3
		expected Vec3
	}{
		{
			name:     "head on",
			incident: NewVec3(0, 0, -1),
			normal:   NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degrees",
			incident: NewVec3(1, -1, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
		{
			name:     "grazing",
			incident: NewVec3(1, 0, 0),
			normal:   NewVec3(0, 1, 0),
			expected: NewVec3(1, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVecNear(t, tt.expected, Reflect(tt.incident, tt.normal))
		})
	}
}

func TestReflect_PreservesLength(t *testing.T) {
	incident := NewVec3(0.3, -0.7, -0.2).Normalize()
	normal := NewVec3(-0.1, 0.9, 0.4).Normalize()

	r := Reflect(incident, normal)
	if math.Abs(r.Length()-1) > 1e-9 {
		t.Errorf("Expected reflected unit vector, got length %f", r.Length())
	}
	// Angle to the normal flips sign but keeps magnitude
	if math.Abs(r.Dot(normal)+incident.Dot(normal)) > 1e-9 {
		t.Errorf("Expected mirrored normal component, got %f and %f", r.Dot(normal), incident.Dot(normal))
	}
}

func TestVec3_Clamp(t *testing.T) {
	got := NewVec3(-0.5, 0.25, 3).Clamp(0, 1)
	assertVecNear(t, NewVec3(0, 0.25, 1), got)
}

func TestVec3_AddScalar(t *testing.T) {
	got := NewVec3(0.1, 0.2, 0.3).AddScalar(0.5)
	assertVecNear(t, NewVec3(0.6, 0.7, 0.8), got)
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))
	assertVecNear(t, NewVec3(1, 2, -1), ray.At(4))
}
