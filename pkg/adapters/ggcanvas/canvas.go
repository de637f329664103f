// Package ggcanvas implements the rendering backend using the gg library.
package ggcanvas

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/user/postergen/pkg/ports"
)

// Backend creates gg-based canvases. Stateless; one Canvas per render.
type Backend struct{}

// New creates a new Backend.
func New() *Backend {
	return &Backend{}
}

// NewCanvas creates a raster drawing surface of the given size.
func (b *Backend) NewCanvas(width, height int) (ports.Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("ggcanvas: invalid canvas size %dx%d", width, height)
	}
	return &Canvas{dc: gg.NewContext(width, height)}, nil
}

var _ ports.Backend = (*Backend)(nil)

// Canvas implements ports.Canvas on a gg.Context.
type Canvas struct {
	dc *gg.Context
}

// Clear fills the whole surface with the given color.
func (c *Canvas) Clear(col color.Color) {
	c.dc.SetColor(col)
	c.dc.Clear()
}

// FillPath fills the area enclosed by the path.
func (c *Canvas) FillPath(p ports.Path, col color.Color) {
	c.tracePath(p)
	c.dc.SetColor(col)
	c.dc.Fill()
}

// FillRect fills a plain rectangle.
func (c *Canvas) FillRect(r ports.Rect, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	c.dc.Fill()
}

// PushClip saves the drawing state and intersects the clip region with the
// path.
func (c *Canvas) PushClip(p ports.Path) {
	c.dc.Push()
	c.tracePath(p)
	c.dc.Clip()
}

// PopClip restores the drawing state saved by the matching PushClip,
// including its clip region.
func (c *Canvas) PopClip() {
	c.dc.Pop()
}

// DrawImageRect blits the src region of img into dst. The source region is
// resampled with Catmull-Rom interpolation; the current clip applies.
func (c *Canvas) DrawImageRect(img image.Image, src, dst ports.Rect) {
	w := int(math.Round(dst.Width))
	h := int(math.Round(dst.Height))
	if w <= 0 || h <= 0 {
		return
	}

	srcRect := image.Rect(
		int(math.Round(src.X)),
		int(math.Round(src.Y)),
		int(math.Round(src.X+src.Width)),
		int(math.Round(src.Y+src.Height)),
	)
	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(scaled, scaled.Bounds(), img, srcRect, draw.Over, nil)

	c.dc.DrawImage(scaled, int(math.Round(dst.X)), int(math.Round(dst.Y)))
}

// SetFontFace selects the face used by DrawString and MeasureString.
func (c *Canvas) SetFontFace(face font.Face) {
	c.dc.SetFontFace(face)
}

// DrawString draws one line of text in the given color with its baseline at
// y, shifted left by anchorX times the string width.
func (c *Canvas) DrawString(s string, x, y, anchorX float64, col color.Color) {
	c.dc.SetColor(col)
	c.dc.DrawStringAnchored(s, x, y, anchorX, 0)
}

// MeasureString returns the advance width of s with the current face.
func (c *Canvas) MeasureString(s string) float64 {
	w, _ := c.dc.MeasureString(s)
	return w
}

// Image returns the rasterized surface.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

var _ ports.Canvas = (*Canvas)(nil)

func (c *Canvas) tracePath(p ports.Path) {
	for _, seg := range p {
		switch seg.Op {
		case ports.MoveTo:
			c.dc.MoveTo(seg.X, seg.Y)
		case ports.LineTo:
			c.dc.LineTo(seg.X, seg.Y)
		case ports.QuadTo:
			c.dc.QuadraticTo(seg.CX, seg.CY, seg.X, seg.Y)
		case ports.ClosePath:
			c.dc.ClosePath()
		}
	}
}
