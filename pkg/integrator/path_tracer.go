// Package integrator evaluates the radiance carried back along camera
// rays by walking them through the world bounce by bounce.
package integrator

import (
	"math"
	"math/rand"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/geometry"
)

// tMin is the acceptance epsilon for secondary rays; it keeps bounce
// rays from re-hitting the surface they left (shadow acne).
const tMin = 0.001

// Sky gradient endpoints
var (
	skyWhite = core.NewColor(1.0, 1.0, 1.0)
	skyBlue  = core.NewColor(0.5, 0.7, 1.0)
)

// PathTracer computes the color seen along a ray by stochastic path
// tracing through an immutable world. It is safe to share across
// workers as long as each supplies its own random source.
type PathTracer struct {
	World    geometry.World
	MaxDepth int
}

// NewPathTracer creates a path tracer over the given world
func NewPathTracer(world geometry.World, maxDepth int) *PathTracer {
	return &PathTracer{World: world, MaxDepth: maxDepth}
}

// RayColor returns the radiance arriving along the ray. The historical
// recursive formulation is expressed as a bounded loop carrying the
// accumulated attenuation; if the bounce budget runs out before the
// path terminates, the energy is considered lost and black is returned.
func (pt *PathTracer) RayColor(ray core.Ray, random *rand.Rand) core.Color {
	attenuation := core.White

	for depth := 0; depth < pt.MaxDepth; depth++ {
		hit, isHit := pt.World.Hit(ray, tMin, math.Inf(1))
		if !isHit {
			return attenuation.Blend(skyColor(ray))
		}

		scatter, scattered := hit.Material.Scatter(ray, hit.Normal, hit.FrontFace, random)
		if !scattered {
			// Absorbed: the path terminates with a solid color.
			return attenuation.Blend(scatter.Attenuation)
		}

		attenuation = attenuation.Blend(scatter.Attenuation)
		ray = core.NewRay(hit.Point, scatter.Direction)
	}

	return core.Black
}

// skyColor is a vertical white-to-blue gradient keyed on the ray
// direction's height
func skyColor(ray core.Ray) core.Color {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return skyWhite.Lerp(skyBlue, t)
}
