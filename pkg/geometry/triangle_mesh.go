package geometry

import (
	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/material"
)

// Mesh is an ordered collection of triangles owned by the mesh
type Mesh struct {
	Triangles []*Triangle
}

// NewMesh creates a new mesh from a set of triangles
func NewMesh(triangles []*Triangle) *Mesh {
	return &Mesh{Triangles: triangles}
}

// TriangleCount returns the number of triangles in the mesh
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Hit scans all triangles linearly and returns the hit with minimum t
// inside (tMin, tMax). Cost is O(triangle count) per ray.
func (m *Mesh) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := tMax

	for _, triangle := range m.Triangles {
		if hit, isHit := triangle.Hit(ray, tMin, closestSoFar); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}
