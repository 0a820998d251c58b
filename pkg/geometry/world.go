package geometry

import (
	"math"

	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/material"
)

// tMinEpsilon keeps rays from immediately re-intersecting the surface they
// scattered off ("shadow acne")
const tMinEpsilon = 0.001

// World owns all primitives in the scene and resolves the globally nearest
// hit for a ray. It is read-only during rendering.
type World struct {
	Spheres []*Sphere
	Meshes  []*Mesh
}

// NewWorld creates a new world from spheres and meshes
func NewWorld(spheres []*Sphere, meshes []*Mesh) *World {
	return &World{Spheres: spheres, Meshes: meshes}
}

// Hit returns the single nearest hit across the entire scene, or false if
// the ray escapes all geometry. Each primitive query is bounded above by the
// closest distance found so far.
func (w *World) Hit(ray core.Ray) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := math.Inf(1)

	for _, sphere := range w.Spheres {
		if hit, isHit := sphere.Hit(ray, tMinEpsilon, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	for _, mesh := range w.Meshes {
		if hit, isHit := mesh.Hit(ray, tMinEpsilon, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
