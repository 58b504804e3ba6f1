package scene

import (
	"image/color"

	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/ecs"
)

// Kind distinguishes the ground plane from the cubes.
type Kind uint8

const (
	KindPlane Kind = iota
	KindCube
)

func (k Kind) String() string {
	switch k {
	case KindPlane:
		return "plane"
	case KindCube:
		return "cube"
	default:
		return "unknown"
	}
}

// Object identifies a mesh in the scene.
type Object struct {
	Kind Kind
	Name string
}

// Transform places a mesh. Rotation holds Euler angles in radians, applied
// in XYZ order.
type Transform struct {
	Position math32.Vector3
	Rotation math32.Vector3
}

// Geometry is the mesh extent. A plane lies in its local XY plane and has
// zero Depth; a cube has equal sides.
type Geometry struct {
	Width  float32
	Height float32
	Depth  float32
}

// Material is a Lambert surface colour.
type Material struct {
	Color color.RGBA
}

// Shadow flags whether a mesh casts and/or receives shadows.
type Shadow struct {
	Cast    bool
	Receive bool
}

// Camera is a perspective camera. FOV is the vertical field of view in
// degrees.
type Camera struct {
	FOV      float32
	Near     float32
	Far      float32
	Position math32.Vector3
	Target   math32.Vector3
	Up       math32.Vector3
}

// AmbientLight lights every face evenly.
type AmbientLight struct {
	Color color.RGBA
}

// SpotLight is a point light restricted to a cone around the direction from
// Position to Target. Angle is the cone half-angle in radians.
type SpotLight struct {
	Color      color.RGBA
	Intensity  float32
	Position   math32.Vector3
	Target     math32.Vector3
	Angle      float32
	CastShadow bool
}

// Fog is exponential-squared fog.
type Fog struct {
	Color   color.RGBA
	Density float32
}

// Background is the clear colour of the render target.
type Background struct {
	Color color.RGBA
}

// Controls is the state shared with the tweak panel.
type Controls struct {
	RotationSpeed   float32
	NumberOfObjects int
}

// RegisterComponents registers the mesh components with registry.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Object](registry)
	ecs.RegisterComponent[Transform](registry)
	ecs.RegisterComponent[Geometry](registry)
	ecs.RegisterComponent[Material](registry)
	ecs.RegisterComponent[Shadow](registry)
}

// Mesh is the view over everything needed to draw or animate a mesh.
type Mesh struct {
	ecs.EntityId
	*Object
	*Transform
	*Geometry
	*Material
	*Shadow
}
