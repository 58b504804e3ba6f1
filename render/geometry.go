package render

import (
	"cogentcore.org/core/math32"
	"github.com/plus3/cubes/scene"
)

// face is a convex quad with its outward normal. Vertices run around the
// perimeter.
type face struct {
	verts  [4]math32.Vector3
	normal math32.Vector3
}

func (f *face) centroid() math32.Vector3 {
	return f.verts[0].Add(f.verts[1]).Add(f.verts[2]).Add(f.verts[3]).MulScalar(0.25)
}

// localFaces returns the faces of a mesh in model space.
func localFaces(kind scene.Kind, g *scene.Geometry) []face {
	if kind == scene.KindPlane {
		return planeFaces(g)
	}
	return boxFaces(g)
}

// planeFaces is a single quad in the XY plane facing +Z.
func planeFaces(g *scene.Geometry) []face {
	hw, hh := g.Width/2, g.Height/2
	return []face{{
		verts: [4]math32.Vector3{
			math32.Vec3(-hw, -hh, 0),
			math32.Vec3(hw, -hh, 0),
			math32.Vec3(hw, hh, 0),
			math32.Vec3(-hw, hh, 0),
		},
		normal: math32.Vec3(0, 0, 1),
	}}
}

// boxFaces returns the six faces of a box centred on the origin.
func boxFaces(g *scene.Geometry) []face {
	axes := [3]math32.Vector3{
		math32.Vec3(g.Width/2, 0, 0),
		math32.Vec3(0, g.Height/2, 0),
		math32.Vec3(0, 0, g.Depth/2),
	}
	units := [3]math32.Vector3{
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(0, 0, 1),
	}

	faces := make([]face, 0, 6)
	for i := range axes {
		u, v := axes[(i+1)%3], axes[(i+2)%3]
		for _, sign := range [2]float32{1, -1} {
			c := axes[i].MulScalar(sign)
			faces = append(faces, face{
				verts: [4]math32.Vector3{
					c.Sub(u).Sub(v),
					c.Add(u).Sub(v),
					c.Add(u).Add(v),
					c.Sub(u).Add(v),
				},
				normal: units[i].MulScalar(sign),
			})
		}
	}
	return faces
}

// worldFaces transforms the faces of a mesh into world space.
func worldFaces(kind scene.Kind, g *scene.Geometry, t *scene.Transform) []face {
	m := modelMatrix(t)
	faces := localFaces(kind, g)
	for i := range faces {
		for j := range faces[i].verts {
			faces[i].verts[j] = transformPoint(m, faces[i].verts[j])
		}
		faces[i].normal = transformDirection(m, faces[i].normal)
	}
	return faces
}

// facing reports whether f's front side is towards eye.
func facing(f *face, eye math32.Vector3) bool {
	return f.normal.Dot(eye.Sub(f.centroid())) > 0
}
