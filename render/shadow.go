package render

import (
	"image/color"

	"cogentcore.org/core/math32"
)

// receiver is a horizontal plane that shadows fall on.
type receiver struct {
	y      float32
	minX   float32
	maxX   float32
	minZ   float32
	maxZ   float32
	normal math32.Vector3
	color  color.RGBA
	face   face
}

func newReceiver(f face, c color.RGBA) receiver {
	r := receiver{
		y:      f.centroid().Y,
		minX:   f.verts[0].X,
		maxX:   f.verts[0].X,
		minZ:   f.verts[0].Z,
		maxZ:   f.verts[0].Z,
		normal: f.normal,
		color:  c,
		face:   f,
	}
	for _, v := range f.verts[1:] {
		r.minX = min(r.minX, v.X)
		r.maxX = max(r.maxX, v.X)
		r.minZ = min(r.minZ, v.Z)
		r.maxZ = max(r.maxZ, v.Z)
	}
	return r
}

// projectOntoPlane casts p away from light onto the plane at height y. It
// fails when p is level with or above the light.
func projectOntoPlane(light, p math32.Vector3, y float32) (math32.Vector3, bool) {
	dy := light.Y - p.Y
	if dy <= 0 || light.Y <= y {
		return math32.Vector3{}, false
	}
	t := (light.Y - y) / dy
	s := light.Add(p.Sub(light).MulScalar(t))
	s.Y = y
	return s, true
}

// shadowOf returns the shadow of f on r, clipped to r's footprint. It is
// empty when the shadow misses the plane entirely.
func (r *receiver) shadowOf(light math32.Vector3, f *face) []math32.Vector3 {
	poly := make([]math32.Vector3, 0, len(f.verts))
	for _, v := range f.verts {
		s, ok := projectOntoPlane(light, v, r.y)
		if !ok {
			return nil
		}
		poly = append(poly, s)
	}
	return r.clip(poly)
}

// clip is Sutherland-Hodgman against the receiver's XZ rectangle.
func (r *receiver) clip(poly []math32.Vector3) []math32.Vector3 {
	edges := [4]func(math32.Vector3) float32{
		func(v math32.Vector3) float32 { return v.X - r.minX },
		func(v math32.Vector3) float32 { return r.maxX - v.X },
		func(v math32.Vector3) float32 { return v.Z - r.minZ },
		func(v math32.Vector3) float32 { return r.maxZ - v.Z },
	}
	for _, dist := range edges {
		poly = clipEdge(poly, dist)
		if len(poly) < 3 {
			return nil
		}
	}
	return poly
}

func clipEdge(poly []math32.Vector3, dist func(math32.Vector3) float32) []math32.Vector3 {
	if len(poly) == 0 {
		return nil
	}
	out := make([]math32.Vector3, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	prevD := dist(prev)
	for _, cur := range poly {
		curD := dist(cur)
		switch {
		case curD >= 0 && prevD < 0:
			out = append(out, lerpAt(prev, cur, prevD, curD), cur)
		case curD >= 0:
			out = append(out, cur)
		case prevD >= 0:
			out = append(out, lerpAt(prev, cur, prevD, curD))
		}
		prev, prevD = cur, curD
	}
	return out
}

func lerpAt(a, b math32.Vector3, da, db float32) math32.Vector3 {
	t := da / (da - db)
	return a.Add(b.Sub(a).MulScalar(t))
}
