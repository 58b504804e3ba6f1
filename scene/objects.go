package scene

import (
	"fmt"
	"image/color"
)

// ObjectInfo is a plain snapshot of one mesh, used for dumps and panels.
type ObjectInfo struct {
	Name          string     `yaml:"name"`
	Kind          string     `yaml:"kind"`
	Size          [3]float32 `yaml:"size,flow"`
	Color         string     `yaml:"color"`
	Position      [3]float32 `yaml:"position,flow"`
	Rotation      [3]float32 `yaml:"rotation,flow"`
	CastShadow    bool       `yaml:"castShadow"`
	ReceiveShadow bool       `yaml:"receiveShadow"`
}

// Objects snapshots every mesh in insertion order.
func (s *Scene) Objects() []ObjectInfo {
	infos := make([]ObjectInfo, 0, len(s.children))
	for i := range s.children {
		m := s.Mesh(i)
		if m == nil {
			continue
		}
		pos, rot := m.Transform.Position, m.Transform.Rotation
		infos = append(infos, ObjectInfo{
			Name:          m.Object.Name,
			Kind:          m.Object.Kind.String(),
			Size:          [3]float32{m.Geometry.Width, m.Geometry.Height, m.Geometry.Depth},
			Color:         hexString(m.Material.Color),
			Position:      [3]float32{pos.X, pos.Y, pos.Z},
			Rotation:      [3]float32{rot.X, rot.Y, rot.Z},
			CastShadow:    m.Shadow.Cast,
			ReceiveShadow: m.Shadow.Receive,
		})
	}
	return infos
}

func hexString(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
