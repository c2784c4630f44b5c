package core

import "math"

// Color is a linear RGB value backed by a Vec3. Channels live in [0,∞)
// while samples accumulate; they are only clamped when converted to
// display bytes.
type Color struct {
	RGB Vec3
}

// Common colors
var (
	Black = Color{RGB: Vec3{0, 0, 0}}
	White = Color{RGB: Vec3{1, 1, 1}}
)

// NewColor creates a color from linear RGB channels
func NewColor(r, g, b float64) Color {
	return Color{RGB: Vec3{X: r, Y: g, Z: b}}
}

// Add returns the sum of two colors
func (c Color) Add(other Color) Color {
	return Color{RGB: c.RGB.Add(other.RGB)}
}

// Scale returns the color scaled by a scalar
func (c Color) Scale(scalar float64) Color {
	return Color{RGB: c.RGB.Multiply(scalar)}
}

// Blend returns the component-wise product of two colors. This is the
// attenuation operation applied at every bounce.
func (c Color) Blend(other Color) Color {
	return Color{RGB: c.RGB.MultiplyVec(other.RGB)}
}

// Lerp linearly interpolates between two colors: (1-t)*c + t*other
func (c Color) Lerp(other Color, t float64) Color {
	return c.Scale(1 - t).Add(other.Scale(t))
}

// linearToGamma applies gamma-2 encoding (square root) to one channel
func linearToGamma(c float64) float64 {
	if c < 0 {
		return 0
	}
	return math.Sqrt(c)
}

// RGBBytes converts the color to display bytes with gamma-2 encoding.
// Channels are clamped to [0,1] before quantization so accumulated
// radiance above white saturates instead of wrapping around.
func (c Color) RGBBytes() (r, g, b uint8) {
	encode := func(ch float64) uint8 {
		v := linearToGamma(ch)
		if v > 1 {
			v = 1
		}
		return uint8(255.999 * v)
	}
	return encode(c.RGB.X), encode(c.RGB.Y), encode(c.RGB.Z)
}
