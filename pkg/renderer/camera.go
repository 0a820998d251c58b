package renderer

import (
	"github.com/tedkb/go-raytracer/pkg/core"
)

// Camera is a pinhole camera that maps normalized screen coordinates to rays
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	aspectRatio     float64
}

// NewCamera creates a camera at the given origin with the given aspect ratio
func NewCamera(origin core.Vec3, aspectRatio float64) *Camera {
	viewportHeight := 2.0
	viewportWidth := aspectRatio * viewportHeight
	focalLength := 1.0

	horizontal := core.NewVec3(viewportWidth, 0, 0)
	vertical := core.NewVec3(0, viewportHeight, 0)
	lowerLeftCorner := origin.Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(core.NewVec3(0, 0, focalLength))

	return &Camera{
		origin:          origin,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lowerLeftCorner,
		aspectRatio:     aspectRatio,
	}
}

// Origin returns the camera position
func (c *Camera) Origin() core.Vec3 {
	return c.origin
}

// AspectRatio returns the viewport aspect ratio
func (c *Camera) AspectRatio() float64 {
	return c.aspectRatio
}

// CastRay generates a ray for screen coordinates (u, v) where 0 <= u,v <= 1.
// Deterministic, no side effects; the returned direction is unit length.
func (c *Camera) CastRay(u, v float64) core.Ray {
	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(c.origin)

	return core.NewRay(c.origin, direction)
}
