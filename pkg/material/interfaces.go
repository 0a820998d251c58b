package material

import (
	"math/rand"

	"github.com/tedkb/go-raytracer/pkg/core"
)

// Material interface for surfaces that can scatter rays
type Material interface {
	// Scatter maps an incoming ray and hit point to an attenuation color
	// and a continuation ray. Returns false when the ray is absorbed.
	Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Attenuation core.Vec3 // Color attenuation applied along the path
	Scattered   core.Ray  // The continuation ray (unit direction)
}

// HitRecord contains information about a ray-object intersection.
// It borrows the material of the hit primitive for the duration of the query.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection
	Normal   core.Vec3 // Outward unit surface normal at the intersection
	T        float64   // Parameter t along the ray
	Material Material  // Material of the hit object
}
