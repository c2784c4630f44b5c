package geometry

import (
	"math"

	"github.com/Brendon-Mendicino/raytracer-go/pkg/core"
	"github.com/Brendon-Mendicino/raytracer-go/pkg/material"
)

// Sphere represents a sphere primitive. A negative radius models an
// inverted (hollow) sphere: the intersection math is unchanged but the
// outward normal flips, which is how a glass shell's inner surface is
// built.
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) Sphere {
	return Sphere{Center: center, Radius: radius, Material: mat}
}

// Hit tests if a ray intersects the sphere within the open interval
// (tMin, tMax)
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	// Vector from sphere center to ray origin
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic equation coefficients: at² + 2bt + c = 0
	a := ray.Direction.Dot(ray.Direction)
	halfB := ray.Direction.Dot(oc)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Find the nearest root inside the acceptance range
	root := (-halfB - sqrtD) / a
	if root <= tMin || root >= tMax {
		root = (-halfB + sqrtD) / a
		if root <= tMin || root >= tMax {
			return material.HitRecord{}, false
		}
	}

	point := ray.At(root)
	// Dividing by the signed radius orients the normal: outward for
	// positive radii, inward for hollow spheres.
	normal := point.Subtract(s.Center).Multiply(1.0 / s.Radius)

	return material.NewHitRecord(ray, point, normal, root, s.Material), true
}

// World is an ordered list of spheres scanned linearly; there is no
// acceleration structure.
type World []Sphere

// Hit finds the closest intersection along the ray within (tMin, tMax).
// The upper bound shrinks as hits are found, so the retained record is
// guaranteed to be the nearest.
func (w World) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	var closest material.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, sphere := range w {
		if hit, isHit := sphere.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, hitAnything
}
