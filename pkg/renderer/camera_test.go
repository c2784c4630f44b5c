package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
)

func testCameraConfig() CameraConfig {
	return CameraConfig{
		AspectRatio:   1.0,
		ImageWidth:    101,
		VFov:          90,
		LookFrom:      core.NewVec3(0, 0, 0),
		LookAt:        core.NewVec3(0, 0, -1),
		DefocusAngle:  0,
		FocusDistance: 1,
	}
}

func TestCamera_ImageHeightFromAspectRatio(t *testing.T) {
	tests := []struct {
		name           string
		width          int
		aspectRatio    float64
		expectedHeight int
	}{
		{"16:9", 400, 16.0 / 9.0, 225},
		{"square", 100, 1.0, 100},
		{"floors the division", 800, 19.0 / 9.0, 378},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := testCameraConfig()
			config.ImageWidth = tt.width
			config.AspectRatio = tt.aspectRatio
			camera := NewCamera(config)

			if camera.Width() != tt.width {
				t.Errorf("Expected width %d, got %d", tt.width, camera.Width())
			}
			if camera.Height() != tt.expectedHeight {
				t.Errorf("Expected height %d, got %d", tt.expectedHeight, camera.Height())
			}
		})
	}
}

func TestCamera_PinholeRaysOriginateAtEye(t *testing.T) {
	config := testCameraConfig()
	config.LookFrom = core.NewVec3(3, -2, 5)
	config.LookAt = core.NewVec3(0, 0, 0)
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		ray := camera.GetRay(random.Intn(camera.Width()), random.Intn(camera.Height()), random)
		if ray.Origin != config.LookFrom {
			t.Fatalf("Expected pinhole origin %v, got %v", config.LookFrom, ray.Origin)
		}
	}
}

func TestCamera_CenterPixelLooksForward(t *testing.T) {
	// Width 101 with a square aspect puts pixel (50,50) exactly on the
	// view axis; jitter can move the sample by at most half a pixel.
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 100; i++ {
		direction := camera.GetRay(50, 50, random).Direction.Normalize()
		if direction.Subtract(core.NewVec3(0, 0, -1)).Length() > 0.02 {
			t.Fatalf("Expected near-axial direction, got %v", direction)
		}
	}
}

func TestCamera_JitterStaysInsidePixelFootprint(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	// For this camera the focus plane is z=-1 and the eye is at the
	// origin, so the ray direction IS the viewport sample point.
	delta := 2.0 / 101
	centerX, centerY := -1.0+delta/2+50*delta, 1.0-delta/2-50*delta

	for i := 0; i < 200; i++ {
		direction := camera.GetRay(50, 50, random).Direction
		if math.Abs(direction.X-centerX) > delta/2+1e-12 ||
			math.Abs(direction.Y-centerY) > delta/2+1e-12 {
			t.Fatalf("Sample %v is outside the pixel footprint around (%f, %f)", direction, centerX, centerY)
		}
	}
}

func TestCamera_SuccessiveSamplesDiffer(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	a := camera.GetRay(10, 20, random)
	b := camera.GetRay(10, 20, random)
	if a.Direction == b.Direction {
		t.Error("Expected independent jitter draws to produce different rays")
	}
}

func TestCamera_FillRaysOverwritesWholeBuffer(t *testing.T) {
	camera := NewCamera(testCameraConfig())
	random := rand.New(rand.NewSource(42))

	buf := make([]core.Ray, 8)
	camera.FillRays(buf, 3, 4, random)

	seen := make(map[core.Vec3]bool)
	for i, ray := range buf {
		if ray.Direction == (core.Vec3{}) {
			t.Fatalf("Buffer entry %d was not filled", i)
		}
		seen[ray.Direction] = true
	}
	if len(seen) < 2 {
		t.Error("Expected jittered samples to differ across the batch")
	}
}

func TestCamera_DefocusDiskSpreadsOrigins(t *testing.T) {
	config := testCameraConfig()
	config.DefocusAngle = 10
	config.FocusDistance = 2
	camera := NewCamera(config)
	random := rand.New(rand.NewSource(42))

	diskRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)

	origins := make(map[core.Vec3]bool)
	for i := 0; i < 100; i++ {
		ray := camera.GetRay(50, 50, random)
		offset := ray.Origin.Subtract(config.LookFrom).Length()
		if offset > diskRadius+1e-9 {
			t.Fatalf("Origin %v is %f from the eye, beyond the lens radius %f", ray.Origin, offset, diskRadius)
		}
		origins[ray.Origin] = true
	}

	if len(origins) < 2 {
		t.Error("Expected lens sampling to vary the ray origins")
	}
}
