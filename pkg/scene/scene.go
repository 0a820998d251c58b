package scene

import (
	"fmt"
	"os"

	"github.com/tedkb/go-raytracer/pkg/geometry"
	"github.com/tedkb/go-raytracer/pkg/renderer"
)

// Scene contains everything needed for rendering: the camera and the world
// of primitives. Built once from parsed input and read-only afterward.
type Scene struct {
	Camera *renderer.Camera
	World  *geometry.World
}

// LoadFile reads and parses a scene description file
func LoadFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableFile, err)
	}
	return Parse(string(data))
}

// PrimitiveCount returns the total number of primitives in the scene
func (s *Scene) PrimitiveCount() int {
	count := len(s.World.Spheres)
	for _, mesh := range s.World.Meshes {
		count += mesh.TriangleCount()
	}
	return count
}
