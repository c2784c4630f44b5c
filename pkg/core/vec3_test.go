package core

import (
	"math"
	"math/rand"
	"testing"
)

func TestVec3_BasicOperations(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, -5, 6)

	tests := []struct {
		name     string
		result   Vec3
		expected Vec3
	}{
		{"Add", a.Add(b), NewVec3(5, -3, 9)},
		{"Subtract", a.Subtract(b), NewVec3(-3, 7, -3)},
		{"Multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"MultiplyVec", a.MultiplyVec(b), NewVec3(4, -10, 18)},
		{"Negate", a.Negate(), NewVec3(-1, -2, -3)},
		{"Cross", NewVec3(1, 0, 0).Cross(NewVec3(0, 1, 0)), NewVec3(0, 0, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.result != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.result)
			}
		})
	}

	if got := a.Dot(b); got != 12 {
		t.Errorf("Expected dot product 12, got %f", got)
	}
}

func TestVec3_LengthAndNormalize(t *testing.T) {
	v := NewVec3(3, 4, 0)

	if got := v.Length(); math.Abs(got-5) > 1e-12 {
		t.Errorf("Expected length 5, got %f", got)
	}
	if got := v.LengthSquared(); math.Abs(got-25) > 1e-12 {
		t.Errorf("Expected squared length 25, got %f", got)
	}

	unit := v.Normalize()
	if math.Abs(unit.Length()-1) > 1e-12 {
		t.Errorf("Expected unit length, got %f", unit.Length())
	}

	// The zero vector normalizes to itself instead of NaN
	zero := NewVec3(0, 0, 0).Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Expected zero vector, got %v", zero)
	}
}

func TestVec3_Reflect(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		n        Vec3
		expected Vec3
	}{
		{
			name:     "head-on reflection",
			v:        NewVec3(0, 0, -1),
			n:        NewVec3(0, 0, 1),
			expected: NewVec3(0, 0, 1),
		},
		{
			name:     "45 degree reflection",
			v:        NewVec3(1, -1, 0),
			n:        NewVec3(0, 1, 0),
			expected: NewVec3(1, 1, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.v.Reflect(tt.n)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestVec3_Refract(t *testing.T) {
	n := NewVec3(0, 1, 0)

	// Equal indices pass the ray through undeviated
	v := NewVec3(1, -1, 0).Normalize()
	straight := v.Refract(n, 1.0)
	if straight.Subtract(v).Length() > 1e-9 {
		t.Errorf("Expected undeviated direction %v, got %v", v, straight)
	}

	// Entering a denser medium bends the ray toward the normal
	bent := v.Refract(n, 1.0/1.5)
	sinIn := math.Abs(v.X)
	sinOut := math.Abs(bent.Normalize().X)
	if sinOut >= sinIn {
		t.Errorf("Expected refracted ray to bend toward the normal: sin in %f, sin out %f", sinIn, sinOut)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, -1))

	if got := ray.At(0); got != ray.Origin {
		t.Errorf("Expected origin at t=0, got %v", got)
	}
	if got := ray.At(2.5); got != NewVec3(1, 2, 0.5) {
		t.Errorf("Expected (1, 2, 0.5), got %v", got)
	}
}

func TestRandomUnitVector(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		v := RandomUnitVector(random)
		if math.Abs(v.Length()-1) > 1e-9 {
			t.Fatalf("Expected unit length, got %f for %v", v.Length(), v)
		}
	}
}

func TestRandomInUnitDisk(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		p := RandomInUnitDisk(random)
		if p.Z != 0 {
			t.Fatalf("Expected point in the XY plane, got %v", p)
		}
		if p.LengthSquared() >= 1 {
			t.Fatalf("Expected point inside the unit disk, got %v", p)
		}
	}
}
