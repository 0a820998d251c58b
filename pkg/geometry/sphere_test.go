package geometry

import (
	"math"
	"testing"

	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/material"
)

func testMaterial() material.Material {
	return material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
}

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_OutwardNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedNormal core.Vec3
	}{
		{
			name:           "hit from outside",
			rayOrigin:      core.NewVec3(0, 0, 2),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "hit from inside",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, 1),
			expectedT:      1.0,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, 1000.0)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}

			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}

			// The normal always points outward, away from the center
			tolerance := 1e-9
			if hit.Normal.Subtract(tt.expectedNormal).Length() > tolerance {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_PointOnSurface(t *testing.T) {
	center := core.NewVec3(1, 2, -3)
	radius := 0.75
	sphere := NewSphere(center, radius, testMaterial())

	rays := []core.Ray{
		core.NewRay(core.NewVec3(5, 2, -3), core.NewVec3(-1, 0, 0)),
		core.NewRay(core.NewVec3(1, 8, -3), core.NewVec3(0, -1, 0)),
		core.NewRay(core.NewVec3(4, 5, 0), center.Subtract(core.NewVec3(4, 5, 0))),
	}

	for i, ray := range rays {
		hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
		if !isHit {
			t.Fatalf("Ray %d: expected hit, but got miss", i)
		}

		// Hit point lies on the sphere surface
		distance := hit.Point.Subtract(center).Length()
		if math.Abs(distance-radius) > 1e-9 {
			t.Errorf("Ray %d: hit point should be on surface, |p-c|=%f radius=%f", i, distance, radius)
		}

		// Normal is unit length
		if math.Abs(hit.Normal.Length()-1.0) > 1e-5 {
			t.Errorf("Ray %d: expected unit normal, got length %f", i, hit.Normal.Length())
		}
	}
}

func TestSphere_Hit_Bounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	// Test tMax bound
	hit, isHit := sphere.Hit(ray, 0.001, 0.5)
	if isHit {
		t.Errorf("Expected miss due to tMax bound, but got hit at t=%f", hit.T)
	}

	// Test tMin bound
	hit, isHit = sphere.Hit(ray, 3.5, 1000.0)
	if isHit {
		t.Errorf("Expected miss due to tMin bound, but got hit at t=%f", hit.T)
	}

	// Roots must lie strictly inside the interval: with tMin exactly on the
	// near root, the far root is returned instead
	hit, isHit = sphere.Hit(ray, 1.0, 1000.0)
	if !isHit {
		t.Fatal("Expected far-root hit, but got miss")
	}
	if math.Abs(hit.T-3.0) > 1e-9 {
		t.Errorf("Expected far root t=3, got t=%f", hit.T)
	}
}

func TestSphere_Hit_ClosestRoot(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 2), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, 1000.0)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}

	// Both roots (t=1 and t=3) are in range; the minimum wins
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected closest intersection at t=1, got t=%f", hit.T)
	}
}
