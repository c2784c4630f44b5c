package renderer

import (
	"math"
	"math/rand"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
)

// worldUp is the global up direction used to build the camera basis
var worldUp = core.NewVec3(0, 1, 0)

// CameraConfig describes a camera before derivation. LookFrom must
// differ from LookAt and must not be vertically aligned with it, or the
// derived basis degenerates to NaN.
type CameraConfig struct {
	AspectRatio   float64   // Width over height
	ImageWidth    int       // Output width in pixels
	VFov          float64   // Vertical field of view in degrees
	LookFrom      core.Vec3 // Eye position
	LookAt        core.Vec3 // Point the camera faces
	DefocusAngle  float64   // Lens cone angle in degrees; <= 0 is a pinhole
	FocusDistance float64   // Distance to the plane of perfect focus
}

// Camera generates primary rays for rendering. It is immutable once
// built and safe to share across workers.
type Camera struct {
	width, height int
	center        core.Vec3
	pixel00       core.Vec3 // World position of pixel (0,0)
	pixelDeltaU   core.Vec3 // Offset between horizontally adjacent pixels
	pixelDeltaV   core.Vec3 // Offset between vertically adjacent pixels
	defocusDiskU  core.Vec3 // Lens aperture basis, zero for pinholes
	defocusDiskV  core.Vec3
	defocusAngle  float64
}

// NewCamera derives the viewport geometry and lens basis from a config
func NewCamera(config CameraConfig) *Camera {
	width := config.ImageWidth
	height := int(float64(width) / config.AspectRatio)

	// Viewport dimensions at the focus distance
	theta := config.VFov * math.Pi / 180
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * (float64(width) / float64(height))

	// Orthonormal camera basis: w points away from the view direction
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := worldUp.Cross(w).Normalize()
	v := w.Cross(u)

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	// Walk from the eye to the viewport's upper-left corner, then half
	// a pixel in to land on pixel (0,0)
	viewportUpperLeft := config.LookFrom.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	// Defocus disk spanning the lens aperture
	var defocusDiskU, defocusDiskV core.Vec3
	if config.DefocusAngle > 0 {
		defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180)
		defocusDiskU = u.Multiply(defocusRadius)
		defocusDiskV = v.Multiply(defocusRadius)
	}

	return &Camera{
		width:        width,
		height:       height,
		center:       config.LookFrom,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: defocusDiskU,
		defocusDiskV: defocusDiskV,
		defocusAngle: config.DefocusAngle,
	}
}

// Width returns the image width in pixels
func (c *Camera) Width() int { return c.width }

// Height returns the image height in pixels
func (c *Camera) Height() int { return c.height }

// GetRay generates one ray through pixel (col, row), jittered uniformly
// within the pixel footprint. With a positive defocus angle the ray
// originates from a random point on the lens disk instead of the eye.
func (c *Camera) GetRay(col, row int, random *rand.Rand) core.Ray {
	pixelCenter := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(col))).
		Add(c.pixelDeltaV.Multiply(float64(row)))

	jitter := c.pixelDeltaU.Multiply(random.Float64() - 0.5).
		Add(c.pixelDeltaV.Multiply(random.Float64() - 0.5))
	sample := pixelCenter.Add(jitter)

	origin := c.center
	if c.defocusAngle > 0 {
		p := core.RandomInUnitDisk(random)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRay(origin, sample.Subtract(origin))
}

// FillRays overwrites buf with len(buf) independent sample rays for
// pixel (col, row). Workers reuse one buffer per pixel batch to avoid
// reallocation.
func (c *Camera) FillRays(buf []core.Ray, col, row int, random *rand.Rand) {
	for i := range buf {
		buf[i] = c.GetRay(col, row, random)
	}
}
