package material

import (
	"math"
	"math/rand"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
)

// Kind selects one of the closed set of scattering behaviors
type Kind int

const (
	// Lambertian is a perfectly diffuse surface
	Lambertian Kind = iota
	// Metal is a specular reflector
	Metal
	// Dielectric is a clear refractive medium like glass
	Dielectric
)

// Material describes how a surface scatters light. It is plain value
// data, copied into every primitive that uses it; behavior is selected
// by Kind rather than dynamic dispatch.
type Material struct {
	Kind            Kind
	Albedo          core.Color
	Fuzz            float64 // > 0 perturbs the scattered direction
	RefractiveIndex float64 // Dielectric only
}

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo core.Color) Material {
	return Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal creates a reflective material. Fuzz of 0 is a perfect
// mirror; larger values blur the reflection.
func NewMetal(albedo core.Color, fuzz float64) Material {
	return Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric creates a clear refractive material. Dielectrics do not
// tint light, so the albedo is always white.
func NewDielectric(refractiveIndex float64) Material {
	return Material{Kind: Dielectric, Albedo: core.White, RefractiveIndex: refractiveIndex}
}

// ScatterResult describes the outgoing bounce produced by a scatter.
// When Scatter reports absorption instead, Attenuation holds the solid
// color the path terminates with.
type ScatterResult struct {
	Direction   core.Vec3
	Attenuation core.Color
}

// Scatter computes what happens to a ray striking this material. The
// normal is the surface normal as produced by the intersection (not
// reoriented), and frontFace tells whether the ray arrived from the
// normal's side. It returns the scattered bounce and true, or the
// terminal solid color (in Attenuation) and false when the ray is
// absorbed.
func (m Material) Scatter(rayIn core.Ray, normal core.Vec3, frontFace bool, random *rand.Rand) (ScatterResult, bool) {
	var result ScatterResult

	switch m.Kind {
	case Lambertian:
		result = ScatterResult{
			Direction:   normal.Add(core.RandomUnitVector(random)),
			Attenuation: m.Albedo,
		}

	case Metal:
		direction := rayIn.Direction.Reflect(normal)
		if direction.Length() < 1e-8 {
			// Degenerate reflection; fall back to the normal so the
			// bounce ray is never zero length.
			direction = normal
		}
		result = ScatterResult{Direction: direction, Attenuation: m.Albedo}

	case Dielectric:
		result = m.scatterDielectric(rayIn, normal, frontFace, random)
	}

	if m.Fuzz > 0 {
		direction := result.Direction.Normalize().Add(core.RandomUnitVector(random).Multiply(m.Fuzz))
		if direction.Dot(normal) < 0 {
			// The perturbed ray points back into the surface: treat it
			// as immediately reabsorbed, returning the base color.
			return ScatterResult{Attenuation: m.Albedo}, false
		}
		result.Direction = direction
	}

	return result, true
}

// scatterDielectric refracts or reflects a ray at a clear surface.
// Reflection happens when refraction is geometrically impossible (total
// internal reflection) and otherwise probabilistically, weighted by
// Schlick's approximation of the Fresnel reflectance.
func (m Material) scatterDielectric(rayIn core.Ray, normal core.Vec3, frontFace bool, random *rand.Rand) ScatterResult {
	var eta, etaPrime float64
	if frontFace {
		eta, etaPrime = 1.0, m.RefractiveIndex
	} else {
		eta, etaPrime = m.RefractiveIndex, 1.0
	}

	// Work against the normal on the ray's side so cosTheta is
	// non-negative for both entering and exiting rays.
	facingNormal := normal
	if !frontFace {
		facingNormal = normal.Negate()
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Max(-1.0, math.Min(unitDirection.Negate().Dot(facingNormal), 1.0))
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := eta/etaPrime*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || reflectance(cosTheta, eta/etaPrime) > random.Float64() {
		direction = unitDirection.Reflect(facingNormal)
	} else {
		direction = unitDirection.Refract(facingNormal, eta/etaPrime)
	}

	return ScatterResult{Direction: direction, Attenuation: core.White}
}

// reflectance calculates the Fresnel reflectance using Schlick's approximation
func reflectance(cosine, etaRatio float64) float64 {
	r0 := (1 - etaRatio) / (1 + etaRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
