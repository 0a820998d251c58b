package material

import (
	"math/rand"

	"github.com/tedkb/go-raytracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Vec3 // Base color/reflectance
}

// NewLambertian creates a new lambertian material
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter implements the Material interface for lambertian scattering.
// The new direction is the surface normal perturbed by a random unit vector,
// renormalized. Lambertian surfaces never absorb; termination is left to the
// miss case and the bounce cap.
func (l *Lambertian) Scatter(rayIn core.Ray, hit HitRecord, random *rand.Rand) (ScatterResult, bool) {
	direction := hit.Normal.Add(core.RandomUnitVector(random)).Normalize()
	scattered := core.Ray{Origin: hit.Point, Direction: direction}

	return ScatterResult{
		Attenuation: l.Albedo,
		Scattered:   scattered,
	}, true
}
