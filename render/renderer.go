package render

import (
	"cmp"
	"image/color"
	"iter"
	"slices"

	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/scene"
)

// Layer orders polygons before depth: every ground polygon is painted before
// any shadow, and every shadow before any mesh.
type Layer uint8

const (
	LayerGround Layer = iota
	LayerShadow
	LayerMesh
)

// Polygon is a flat-coloured convex screen polygon.
type Polygon struct {
	Points []math32.Vector2
	Color  color.RGBA
	Depth  float32
	Layer  Layer
}

// Renderer builds the polygon list for a viewport. Buffers are reused
// between frames, so the returned slice is only valid until the next Build.
type Renderer struct {
	width     int
	height    int
	polygons  []Polygon
	receivers []receiver
	casters   []face
}

func NewRenderer(width, height int) *Renderer {
	return &Renderer{width: width, height: height}
}

// Resize changes the viewport used by the next Build.
func (r *Renderer) Resize(width, height int) {
	r.width, r.height = width, height
}

// Size returns the viewport size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// Build lights, projects and sorts meshes into paint order.
func (r *Renderer) Build(env *Environment, meshes iter.Seq[scene.Mesh]) []Polygon {
	r.polygons = r.polygons[:0]
	r.receivers = r.receivers[:0]
	r.casters = r.casters[:0]

	proj := NewProjector(env.Camera, r.width, r.height)
	eye := env.Camera.Position

	for mesh := range meshes {
		if mesh.Object == nil || mesh.Transform == nil || mesh.Geometry == nil || mesh.Material == nil {
			continue
		}
		layer := LayerMesh
		if mesh.Object.Kind == scene.KindPlane {
			layer = LayerGround
		}

		faces := worldFaces(mesh.Object.Kind, mesh.Geometry, mesh.Transform)
		for i := range faces {
			f := &faces[i]
			if mesh.Shadow != nil && mesh.Shadow.Cast {
				r.casters = append(r.casters, *f)
			}
			if mesh.Shadow != nil && mesh.Shadow.Receive && mesh.Object.Kind == scene.KindPlane {
				r.receivers = append(r.receivers, newReceiver(*f, mesh.Material.Color))
			}
			if !facing(f, eye) {
				continue
			}
			c := lambert(env, mesh.Material.Color, f.normal, f.centroid(), 1)
			r.emit(proj, env, f.verts[:], c, layer)
		}
	}

	if env.Spot.CastShadow {
		r.buildShadows(proj, env)
	}

	slices.SortStableFunc(r.polygons, func(a, b Polygon) int {
		if a.Layer != b.Layer {
			return cmp.Compare(a.Layer, b.Layer)
		}
		return cmp.Compare(b.Depth, a.Depth)
	})
	return r.polygons
}

func (r *Renderer) buildShadows(proj *Projector, env *Environment) {
	light := env.Spot.Position
	for i := range r.receivers {
		rcv := &r.receivers[i]
		if !facing(&rcv.face, light) {
			continue
		}
		for j := range r.casters {
			f := &r.casters[j]
			if !facing(f, light) || !inCone(&env.Spot, f.centroid()) {
				continue
			}
			poly := rcv.shadowOf(light, f)
			if len(poly) < 3 {
				continue
			}
			centre := centroid(poly)
			c := lambert(env, rcv.color, rcv.normal, centre, 1-shadowDarkness)
			r.emit(proj, env, poly, c, LayerShadow)
		}
	}
}

// emit projects pts and appends the fogged polygon. Polygons with any vertex
// behind the camera are dropped.
func (r *Renderer) emit(proj *Projector, env *Environment, pts []math32.Vector3, c math32.Vector3, layer Layer) {
	points := make([]math32.Vector2, 0, len(pts))
	var depth float32
	for _, p := range pts {
		s, d, ok := proj.Project(p)
		if !ok {
			return
		}
		points = append(points, s)
		depth += d
	}
	depth /= float32(len(pts))

	r.polygons = append(r.polygons, Polygon{
		Points: points,
		Color:  toRGBA(applyFog(&env.Fog, c, depth)),
		Depth:  depth,
		Layer:  layer,
	})
}

func centroid(pts []math32.Vector3) math32.Vector3 {
	var sum math32.Vector3
	for _, p := range pts {
		sum = sum.Add(p)
	}
	return sum.DivScalar(float32(len(pts)))
}
