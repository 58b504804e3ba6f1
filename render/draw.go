package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas paints polygon lists onto ebiten images.
type Canvas struct {
	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// Draw clears dst to background and paints polygons in order.
func (c *Canvas) Draw(dst *ebiten.Image, background color.RGBA, polygons []Polygon) {
	dst.Fill(background)

	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
	for i := range polygons {
		p := &polygons[i]
		if len(p.Points) < 3 {
			continue
		}
		if len(c.vertices)+len(p.Points) > math.MaxUint16 {
			c.flush(dst)
		}
		c.appendFan(p)
	}
	c.flush(dst)
}

// appendFan triangulates p as a fan around its first point.
func (c *Canvas) appendFan(p *Polygon) {
	base := uint16(len(c.vertices))
	r := float32(p.Color.R) / 0xff
	g := float32(p.Color.G) / 0xff
	b := float32(p.Color.B) / 0xff
	a := float32(p.Color.A) / 0xff

	for _, pt := range p.Points {
		c.vertices = append(c.vertices, ebiten.Vertex{
			DstX:   pt.X,
			DstY:   pt.Y,
			SrcX:   1,
			SrcY:   1,
			ColorR: r,
			ColorG: g,
			ColorB: b,
			ColorA: a,
		})
	}
	for i := 1; i < len(p.Points)-1; i++ {
		c.indices = append(c.indices, base, base+uint16(i), base+uint16(i+1))
	}
}

func (c *Canvas) flush(dst *ebiten.Image) {
	if len(c.indices) == 0 {
		return
	}
	if c.white == nil {
		c.white = ebiten.NewImage(3, 3)
		c.white.Fill(color.White)
	}
	src := c.white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	dst.DrawTriangles(c.vertices, c.indices, src, &ebiten.DrawTrianglesOptions{})
	c.vertices = c.vertices[:0]
	c.indices = c.indices[:0]
}
