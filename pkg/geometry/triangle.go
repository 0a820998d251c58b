package geometry

import (
	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/material"
)

// Triangle represents a single flat-shaded triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached unit face normal from vertex winding
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	t := &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
	}
	t.computeNormal()
	return t
}

// computeNormal calculates and caches the triangle's unit normal vector
func (t *Triangle) computeNormal() {
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	t.normal = edge1.Cross(edge2).Normalize()
}

// Normal returns the triangle's cached unit face normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Hit tests if a ray intersects the triangle by solving the plane equation
// and running a same-side test against each edge
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	// Non-normalized face normal; the length matters for the plane solve
	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)
	n := edge1.Cross(edge2)

	// Ray parallel to the plane (or lying in it) never hits
	denom := n.Dot(ray.Direction)
	if denom > -epsilon && denom < epsilon {
		return nil, false
	}

	// Solve the plane equation for the crossing distance
	tParam := n.Dot(t.V0.Subtract(ray.Origin)) / denom
	if tParam <= tMin || tParam >= tMax {
		return nil, false
	}

	p := ray.At(tParam)

	// Same-side test for all three edges, inclusive of the edges themselves
	vp0 := p.Subtract(t.V0)
	if n.Dot(edge1.Cross(vp0)) < 0 {
		return nil, false
	}

	e1 := t.V2.Subtract(t.V1)
	vp1 := p.Subtract(t.V1)
	if n.Dot(e1.Cross(vp1)) < 0 {
		return nil, false
	}

	e2 := t.V0.Subtract(t.V2)
	vp2 := p.Subtract(t.V2)
	if n.Dot(e2.Cross(vp2)) < 0 {
		return nil, false
	}

	return &material.HitRecord{
		T:        tParam,
		Point:    p,
		Normal:   t.normal, // Flat shading: the cached face normal
		Material: t.Material,
	}, true
}
