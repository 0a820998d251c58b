package scene

// DefaultSource is the built-in demo scene: a diffuse ground, three spheres
// covering each material, and a metal triangle behind them.
const DefaultSource = `
// Built-in demo scene
camera origin 0 0 0 aspect 1.7777 ;

material ground : Diffuse color 0.8 0.8 0.0 ;
material matte  : Diffuse color 0.7 0.3 0.3 ;
material steel  : Metal color 0.8 0.8 0.8 fuzz 0.05 ;
material glass  : Dielectric ir 1.5 ;

sphere center 0 -100.5 -1 radius 100 material ground ;
sphere center 0 0 -1 radius 0.5 material matte ;
sphere center 1 0 -1 radius 0.5 material steel ;
sphere center -1 0 -1 radius 0.5 material glass ;

triangle v0 -1.5 -0.5 -2.5 v1 1.5 -0.5 -2.5 v2 0 1.5 -2.5 material steel ;
`

// NewDefaultScene parses the built-in demo scene
func NewDefaultScene() *Scene {
	s, err := Parse(DefaultSource)
	if err != nil {
		// The built-in source is a constant; failing to parse it is a bug
		panic(err)
	}
	return s
}
