package compose

import (
	"math"

	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

// RoundedRectPath traces the outline of a rectangle with per-corner radii,
// clockwise from the top edge, one quarter-circle quadratic arc per rounded
// corner. Each radius is clamped to half the shorter side so arcs never
// overlap. With all radii zero the result is a plain rectangle.
func RoundedRectPath(x, y, w, h float64, r scene.Radius) ports.Path {
	limit := math.Min(w, h) / 2
	tl := clampRadius(r.TopLeft, limit)
	tr := clampRadius(r.TopRight, limit)
	br := clampRadius(r.BottomRight, limit)
	bl := clampRadius(r.BottomLeft, limit)

	if tl == 0 && tr == 0 && br == 0 && bl == 0 {
		return ports.Path{
			{Op: ports.MoveTo, X: x, Y: y},
			{Op: ports.LineTo, X: x + w, Y: y},
			{Op: ports.LineTo, X: x + w, Y: y + h},
			{Op: ports.LineTo, X: x, Y: y + h},
			{Op: ports.ClosePath},
		}
	}

	p := ports.Path{
		{Op: ports.MoveTo, X: x + tl, Y: y},
		{Op: ports.LineTo, X: x + w - tr, Y: y},
	}
	if tr > 0 {
		p = append(p, ports.Segment{Op: ports.QuadTo, CX: x + w, CY: y, X: x + w, Y: y + tr})
	}
	p = append(p, ports.Segment{Op: ports.LineTo, X: x + w, Y: y + h - br})
	if br > 0 {
		p = append(p, ports.Segment{Op: ports.QuadTo, CX: x + w, CY: y + h, X: x + w - br, Y: y + h})
	}
	p = append(p, ports.Segment{Op: ports.LineTo, X: x + bl, Y: y + h})
	if bl > 0 {
		p = append(p, ports.Segment{Op: ports.QuadTo, CX: x, CY: y + h, X: x, Y: y + h - bl})
	}
	p = append(p, ports.Segment{Op: ports.LineTo, X: x, Y: y + tl})
	if tl > 0 {
		p = append(p, ports.Segment{Op: ports.QuadTo, CX: x, CY: y, X: x + tl, Y: y})
	}
	return append(p, ports.Segment{Op: ports.ClosePath})
}

func clampRadius(r, limit float64) float64 {
	if r < 0 {
		return 0
	}
	return math.Min(r, limit)
}
