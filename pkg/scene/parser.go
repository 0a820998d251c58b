package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tedkb/go-raytracer/pkg/core"
	"github.com/tedkb/go-raytracer/pkg/geometry"
	"github.com/tedkb/go-raytracer/pkg/material"
	"github.com/tedkb/go-raytracer/pkg/renderer"
)

// Named failure kinds for scene parsing. Callers match with errors.Is.
var (
	ErrMissingCamera   = errors.New("missing camera")
	ErrSyntax          = errors.New("syntax error")
	ErrBadNumber       = errors.New("malformed number")
	ErrUnknownMaterial = errors.New("unknown material")
	ErrUnreadableFile  = errors.New("unreadable file")
)

// Parse builds a scene from its textual description:
//
//	program    : <camera> (<material>)* (<sphere>)* (<triangle>)*
//	camera     : camera origin <f> <f> <f> aspect <f> ;
//	material   : material <name> : <type> ;
//	type       : Diffuse color <f> <f> <f>
//	           | Metal color <f> <f> <f> fuzz <f>
//	           | Dielectric ir <f>
//	sphere     : sphere center <f> <f> <f> radius <f> material <name> ;
//	triangle   : triangle v0 <f> <f> <f> v1 <f> <f> <f> v2 <f> <f> <f> material <name> ;
//
// Line comments start with // and are allowed between statements.
func Parse(source string) (*Scene, error) {
	p := &parser{rest: source}

	p.skipComments()
	if !p.accept("camera") {
		return nil, ErrMissingCamera
	}
	if err := p.expect("origin"); err != nil {
		return nil, err
	}
	origin, err := p.vec3()
	if err != nil {
		return nil, err
	}
	if err := p.expect("aspect"); err != nil {
		return nil, err
	}
	aspect, err := p.float()
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	camera := renderer.NewCamera(origin, aspect)

	materials := make(map[string]material.Material)
	for {
		p.skipComments()
		if !p.accept("material") {
			break
		}
		name, mat, err := p.materialBody()
		if err != nil {
			return nil, err
		}
		materials[name] = mat
	}

	var spheres []*geometry.Sphere
	for {
		p.skipComments()
		if !p.accept("sphere") {
			break
		}
		sphere, err := p.sphereBody(materials)
		if err != nil {
			return nil, err
		}
		spheres = append(spheres, sphere)
	}

	var triangles []*geometry.Triangle
	for {
		p.skipComments()
		if !p.accept("triangle") {
			break
		}
		triangle, err := p.triangleBody(materials)
		if err != nil {
			return nil, err
		}
		triangles = append(triangles, triangle)
	}

	p.skipComments()
	if p.rest != "" {
		return nil, fmt.Errorf("%w: unexpected trailing input %q", ErrSyntax, truncate(p.rest))
	}

	var meshes []*geometry.Mesh
	if len(triangles) > 0 {
		meshes = append(meshes, geometry.NewMesh(triangles))
	}

	return &Scene{
		Camera: camera,
		World:  geometry.NewWorld(spheres, meshes),
	}, nil
}

// parser consumes the source left to right
type parser struct {
	rest string
}

func (p *parser) skipSpace() {
	p.rest = strings.TrimLeft(p.rest, " \t\r\n")
}

// skipComments skips whitespace and any // line comments
func (p *parser) skipComments() {
	for {
		p.skipSpace()
		if !strings.HasPrefix(p.rest, "//") {
			return
		}
		if i := strings.IndexByte(p.rest, '\n'); i >= 0 {
			p.rest = p.rest[i+1:]
		} else {
			p.rest = ""
		}
	}
}

// accept consumes the token if the remaining input starts with it
func (p *parser) accept(token string) bool {
	if strings.HasPrefix(p.rest, token) {
		p.rest = p.rest[len(token):]
		return true
	}
	return false
}

// expect consumes the token after whitespace or fails with a syntax error
func (p *parser) expect(token string) error {
	p.skipSpace()
	if !p.accept(token) {
		return fmt.Errorf("%w: expected %q near %q", ErrSyntax, token, truncate(p.rest))
	}
	return nil
}

// identifier scans a [A-Za-z0-9_]+ name
func (p *parser) identifier() (string, error) {
	p.skipSpace()
	i := 0
	for i < len(p.rest) && (isAlnum(p.rest[i]) || p.rest[i] == '_') {
		i++
	}
	if i == 0 {
		return "", fmt.Errorf("%w: expected identifier near %q", ErrSyntax, truncate(p.rest))
	}
	name := p.rest[:i]
	p.rest = p.rest[i:]
	return name, nil
}

// float scans a decimal literal with optional sign and fraction
func (p *parser) float() (float64, error) {
	p.skipSpace()
	i := 0
	if i < len(p.rest) && p.rest[i] == '-' {
		i++
	}
	for i < len(p.rest) && (isDigit(p.rest[i]) || p.rest[i] == '.') {
		i++
	}
	if i == 0 {
		return 0, fmt.Errorf("%w: expected number near %q", ErrBadNumber, truncate(p.rest))
	}
	value, err := strconv.ParseFloat(p.rest[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadNumber, p.rest[:i])
	}
	p.rest = p.rest[i:]
	return value, nil
}

func (p *parser) vec3() (core.Vec3, error) {
	x, err := p.float()
	if err != nil {
		return core.Vec3{}, err
	}
	y, err := p.float()
	if err != nil {
		return core.Vec3{}, err
	}
	z, err := p.float()
	if err != nil {
		return core.Vec3{}, err
	}
	return core.NewVec3(x, y, z), nil
}

// materialBody parses everything after the "material" keyword
func (p *parser) materialBody() (string, material.Material, error) {
	name, err := p.identifier()
	if err != nil {
		return "", nil, err
	}
	if err := p.expect(":"); err != nil {
		return "", nil, err
	}

	p.skipSpace()
	var mat material.Material
	switch {
	case p.accept("Diffuse"):
		if err := p.expect("color"); err != nil {
			return "", nil, err
		}
		color, err := p.vec3()
		if err != nil {
			return "", nil, err
		}
		mat = material.NewLambertian(color)

	case p.accept("Metal"):
		if err := p.expect("color"); err != nil {
			return "", nil, err
		}
		color, err := p.vec3()
		if err != nil {
			return "", nil, err
		}
		if err := p.expect("fuzz"); err != nil {
			return "", nil, err
		}
		fuzz, err := p.float()
		if err != nil {
			return "", nil, err
		}
		mat = material.NewMetal(color, fuzz)

	case p.accept("Dielectric"):
		if err := p.expect("ir"); err != nil {
			return "", nil, err
		}
		ir, err := p.float()
		if err != nil {
			return "", nil, err
		}
		mat = material.NewDielectric(ir)

	default:
		return "", nil, fmt.Errorf("%w: unknown material type near %q", ErrSyntax, truncate(p.rest))
	}

	if err := p.expect(";"); err != nil {
		return "", nil, err
	}
	return name, mat, nil
}

// sphereBody parses everything after the "sphere" keyword
func (p *parser) sphereBody(materials map[string]material.Material) (*geometry.Sphere, error) {
	if err := p.expect("center"); err != nil {
		return nil, err
	}
	center, err := p.vec3()
	if err != nil {
		return nil, err
	}
	if err := p.expect("radius"); err != nil {
		return nil, err
	}
	radius, err := p.float()
	if err != nil {
		return nil, err
	}
	mat, err := p.materialRef(materials)
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return geometry.NewSphere(center, radius, mat), nil
}

// triangleBody parses everything after the "triangle" keyword
func (p *parser) triangleBody(materials map[string]material.Material) (*geometry.Triangle, error) {
	if err := p.expect("v0"); err != nil {
		return nil, err
	}
	v0, err := p.vec3()
	if err != nil {
		return nil, err
	}
	if err := p.expect("v1"); err != nil {
		return nil, err
	}
	v1, err := p.vec3()
	if err != nil {
		return nil, err
	}
	if err := p.expect("v2"); err != nil {
		return nil, err
	}
	v2, err := p.vec3()
	if err != nil {
		return nil, err
	}
	mat, err := p.materialRef(materials)
	if err != nil {
		return nil, err
	}
	if err := p.expect(";"); err != nil {
		return nil, err
	}
	return geometry.NewTriangle(v0, v1, v2, mat), nil
}

// materialRef parses "material <name>" and resolves the name
func (p *parser) materialRef(materials map[string]material.Material) (material.Material, error) {
	if err := p.expect("material"); err != nil {
		return nil, err
	}
	name, err := p.identifier()
	if err != nil {
		return nil, err
	}
	mat, ok := materials[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, name)
	}
	return mat, nil
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isAlnum(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// truncate keeps error messages short on long inputs
func truncate(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}
