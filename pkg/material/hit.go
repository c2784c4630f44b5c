package material

import "github.com/Brendon-Mendicino/raytracer-go/pkg/core"

// HitRecord contains information about a ray-primitive intersection.
// It is produced transiently by an intersection test and consumed
// immediately by the shading step; it is never stored.
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal as computed by the primitive
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether the ray arrived from the normal's side
	Material  Material  // Material of the hit primitive, copied by value
}

// NewHitRecord builds a hit record, deriving FrontFace from the ray
// direction and the primitive's normal. The normal is stored as given;
// a primitive with inverted orientation (negative sphere radius)
// expresses that through the normal it passes in.
func NewHitRecord(ray core.Ray, point, normal core.Vec3, t float64, mat Material) HitRecord {
	return HitRecord{
		Point:     point,
		Normal:    normal,
		T:         t,
		FrontFace: ray.Direction.Dot(normal) < 0,
		Material:  mat,
	}
}
