package geometry

import (
	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/material"
)

// Hittable is anything a ray can intersect within a parametric interval
type Hittable interface {
	// Hit returns the nearest intersection strictly inside (tMin, tMax),
	// or false if the ray misses
	Hit(ray core.Ray, tMin, tMax float64) (*material.HitRecord, bool)
}
