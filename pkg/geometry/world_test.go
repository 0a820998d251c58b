package geometry

import (
	"math"
	"testing"

	"github.com/tedkb/go-raytracer/pkg/core"
)

func TestWorld_Hit_NearestAcrossPrimitives(t *testing.T) {
	// Sphere at t=1.5, triangle at t=1: the triangle wins even though
	// spheres are scanned first
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	triangle := NewTriangle(
		core.NewVec3(-1, -1, -1),
		core.NewVec3(1, -1, -1),
		core.NewVec3(0, 1, -1),
		testMaterial(),
	)
	world := NewWorld([]*Sphere{sphere}, []*Mesh{NewMesh([]*Triangle{triangle})})

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, isHit := world.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected nearest hit at t=1, got t=%f", hit.T)
	}

	// Flip geometry depths; the sphere must win now
	world2 := NewWorld(
		[]*Sphere{NewSphere(core.NewVec3(0, 0, -0.5), 0.25, testMaterial())},
		[]*Mesh{NewMesh([]*Triangle{triangle})},
	)
	hit, isHit = world2.Hit(ray)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if math.Abs(hit.T-0.25) > 1e-9 {
		t.Errorf("Expected sphere hit at t=0.25, got t=%f", hit.T)
	}
}

func TestWorld_Hit_Empty(t *testing.T) {
	world := NewWorld(nil, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))

	if _, isHit := world.Hit(ray); isHit {
		t.Error("Empty world should never hit")
	}
}

func TestWorld_Hit_ShadowAcneBound(t *testing.T) {
	// A ray starting on the sphere surface must skip the immediate
	// self-intersection and hit the far side
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, testMaterial())
	world := NewWorld([]*Sphere{sphere}, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1))
	hit, isHit := world.Hit(ray)
	if !isHit {
		t.Fatal("Expected far-side hit, but got miss")
	}
	if math.Abs(hit.T-2.0) > 1e-9 {
		t.Errorf("Expected far side at t=2, got t=%f", hit.T)
	}
}

func TestWorld_Hit_UnitNormals(t *testing.T) {
	world := NewWorld(
		[]*Sphere{NewSphere(core.NewVec3(0.3, -0.2, -3), 1.2, testMaterial())},
		[]*Mesh{NewMesh([]*Triangle{NewTriangle(
			core.NewVec3(-2, -2, -6),
			core.NewVec3(2, -2, -6),
			core.NewVec3(0, 3, -6),
			testMaterial(),
		)})},
	)

	directions := []core.Vec3{
		core.NewVec3(0.1, -0.1, -1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(-0.05, 0.2, -1),
	}

	for i, dir := range directions {
		ray := core.NewRay(core.NewVec3(0, 0, 0), dir)
		hit, isHit := world.Hit(ray)
		if !isHit {
			t.Fatalf("Ray %d: expected hit, but got miss", i)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-5 {
			t.Errorf("Ray %d: expected unit normal, got length %f", i, hit.Normal.Length())
		}
	}
}
