package ports

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
)

// Rect is an axis-aligned rectangle in canvas coordinates.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// PathOp identifies one path segment operation.
type PathOp int

const (
	// MoveTo starts a new subpath at (X, Y).
	MoveTo PathOp = iota
	// LineTo draws a straight segment to (X, Y).
	LineTo
	// QuadTo draws a quadratic curve to (X, Y) with control point (CX, CY).
	QuadTo
	// ClosePath closes the current subpath.
	ClosePath
)

// Segment is a single operation of a Path.
type Segment struct {
	Op PathOp
	X  float64
	Y  float64
	CX float64
	CY float64
}

// Path is an ordered sequence of segments describing an outline. The same
// path value is usable both as a fill shape and as a clip region.
type Path []Segment

// Backend creates drawing surfaces. Implementations must be safe to share
// across renders; each render gets its own Canvas.
type Backend interface {
	// NewCanvas creates a raster surface of the given size in pixels.
	NewCanvas(width, height int) (Canvas, error)
}

// Canvas provides the 2D drawing operations the compositor emits. A Canvas
// belongs to a single render pass and is not safe for concurrent use.
type Canvas interface {
	// Clear fills the entire surface with the given color.
	Clear(c color.Color)

	// FillPath fills the area enclosed by the path.
	FillPath(p Path, c color.Color)

	// FillRect fills a plain rectangle.
	FillRect(r Rect, c color.Color)

	// PushClip intersects the current clip region with the path. Every
	// PushClip must be paired with a PopClip.
	PushClip(p Path)

	// PopClip restores the clip region active before the matching PushClip.
	PopClip()

	// DrawImageRect blits the src region of img into the dst region,
	// scaling as needed. The current clip region applies.
	DrawImageRect(img image.Image, src, dst Rect)

	// SetFontFace selects the face used by DrawString and MeasureString.
	SetFontFace(face font.Face)

	// DrawString draws a single line of text in the given color with its
	// baseline at y. anchorX shifts the string left by that fraction of
	// its width: 0 left-aligns at x, 0.5 centers on x, 1 right-aligns at x.
	DrawString(s string, x, y, anchorX float64, c color.Color)

	// MeasureString returns the advance width of s with the current face.
	MeasureString(s string) float64

	// Image returns the rasterized surface.
	Image() image.Image
}
