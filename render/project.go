// Package render turns the scene into flat-shaded screen polygons and draws
// them with ebiten.
//
// The pipeline is a painter's algorithm: faces are transformed, back-face
// culled, Lambert lit by the ambient and spot lights, fogged by view depth and
// sorted far to near within three layers (ground, shadows, meshes). Shadows
// are planar projections of the casters onto each receiving plane.
package render

import (
	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/scene"
)

// Projector maps world points to screen pixels for one camera and viewport.
type Projector struct {
	viewProj math32.Matrix4
	near     float32
	width    float32
	height   float32
}

// NewProjector builds the view-projection for cam on a width x height
// viewport.
func NewProjector(cam scene.Camera, width, height int) *Projector {
	w, h := float32(max(width, 1)), float32(max(height, 1))

	var proj math32.Matrix4
	proj.SetPerspective(cam.FOV, w/h, cam.Near, cam.Far)

	p := &Projector{near: cam.Near, width: w, height: h}
	p.viewProj.MulMatrices(&proj, viewMatrix(cam))
	return p
}

// Project returns the screen position of world and its view depth. ok is
// false for points closer than the near plane or behind the camera.
func (p *Projector) Project(world math32.Vector3) (screen math32.Vector2, depth float32, ok bool) {
	clip := math32.Vector4FromVector3(world, 1).MulMatrix4(&p.viewProj)
	if clip.W < p.near {
		return math32.Vector2{}, 0, false
	}
	ndc := clip.PerspDiv()
	return math32.Vec2((ndc.X+1)*0.5*p.width, (1-ndc.Y)*0.5*p.height), clip.W, true
}

func viewMatrix(cam scene.Camera) *math32.Matrix4 {
	var look math32.Quat
	look.SetFromRotationMatrix(math32.NewLookAt(cam.Position, cam.Target, cam.Up))
	var camera math32.Matrix4
	camera.SetTransform(cam.Position, look, math32.Vec3(1, 1, 1))
	view, _ := camera.Inverse()
	return view
}

func modelMatrix(t *scene.Transform) *math32.Matrix4 {
	var m math32.Matrix4
	m.SetTransform(t.Position, math32.NewQuatEuler(t.Rotation), math32.Vec3(1, 1, 1))
	return &m
}

func transformPoint(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	r := math32.Vector4FromVector3(v, 1).MulMatrix4(m)
	return math32.Vec3(r.X, r.Y, r.Z)
}

func transformDirection(m *math32.Matrix4, v math32.Vector3) math32.Vector3 {
	r := math32.Vector4FromVector3(v, 0).MulMatrix4(m)
	return math32.Vec3(r.X, r.Y, r.Z).Normal()
}
