// Package scene defines the declarative description of a poster canvas and
// its decoding from JSON or YAML documents.
package scene

import "image/color"

// Scene describes one rectangular canvas to rasterize. A Scene is built once
// per render request and is read-only for the duration of the render.
type Scene struct {
	Width           int
	Height          int
	BackgroundColor color.RGBA
	Elements        []Element
}

// Element is the closed set of drawable items: *Background, *Image and
// *Text. The compositor dispatches on the concrete type.
type Element interface {
	element()
}

// ObjectFit selects how a source image maps into its target rectangle.
type ObjectFit int

const (
	// FitCover scales to fill the target, cropping the source centered.
	FitCover ObjectFit = iota
	// FitContain scales to fit inside the target, letterboxing.
	FitContain
	// FitStretch fills the target exactly, ignoring aspect ratio.
	FitStretch
)

// String returns the wire name of the fit mode.
func (f ObjectFit) String() string {
	switch f {
	case FitContain:
		return "contain"
	case FitStretch:
		return "stretch"
	default:
		return "cover"
	}
}

// Align specifies horizontal text alignment relative to the anchor point.
// Left and right mean start and end of the reading direction; the layout
// engine swaps them for right-to-left text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// String returns the wire name of the alignment.
func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Direction is a text reading direction. DirectionAuto defers to script
// detection over the text content.
type Direction int

const (
	DirectionAuto Direction = iota
	DirectionLTR
	DirectionRTL
)

// String returns the wire name of the direction.
func (d Direction) String() string {
	switch d {
	case DirectionLTR:
		return "ltr"
	case DirectionRTL:
		return "rtl"
	default:
		return "auto"
	}
}

// Radius holds per-corner rounding in pixels, clockwise from top-left.
type Radius struct {
	TopLeft     float64
	TopRight    float64
	BottomRight float64
	BottomLeft  float64
}

// UniformRadius returns a Radius with the same value on all four corners.
func UniformRadius(r float64) Radius {
	return Radius{TopLeft: r, TopRight: r, BottomRight: r, BottomLeft: r}
}

// IsZero reports whether no corner is rounded.
func (r Radius) IsZero() bool {
	return r == Radius{}
}

// Background fills the whole canvas. It is always drawn below every other
// element regardless of z-index; only the first Background in a scene is
// honored.
type Background struct {
	// Color fills the canvas. When the element came from a document
	// without an explicit color, decoding substitutes the scene's
	// background color.
	Color color.RGBA

	// Image is an optional source drawn over Color with cover fit.
	// A source that fails to load is logged and ignored.
	Image string

	Radius Radius
}

// Image places a decoded picture at a fixed rectangle.
type Image struct {
	Src    string
	X      float64
	Y      float64
	Width  float64
	Height float64
	Radius Radius
	Fit    ObjectFit
	ZIndex int
}

// Text places one block of text anchored at (X, Y), where Y is the baseline
// of the first line.
type Text struct {
	Text     string
	X        float64
	Y        float64
	FontSize float64
	Color    color.RGBA
	Align    Align

	// FontFamily is tried first during font resolution; empty means no
	// preference.
	FontFamily string

	// MaxWidth enables line wrapping. Zero means unlimited: the text is
	// drawn as a single line even if it overflows the canvas.
	MaxWidth float64

	// LineHeight is the baseline-to-baseline distance as a multiple of
	// FontSize. Documents default it to 1.5.
	LineHeight float64

	// MaxLines caps the number of wrapped lines; the final line is
	// ellipsized when text is cut. Zero means unlimited.
	MaxLines int

	Bold bool

	// Prefix is concatenated immediately before Text, with no separator,
	// before measurement and wrapping.
	Prefix string

	// BackgroundColor, when set, draws a filled box behind the text.
	BackgroundColor *color.RGBA

	Padding      float64
	BorderRadius Radius

	// Width and Height override the computed background box size.
	// Zero derives the size from the text.
	Width  float64
	Height float64

	ZIndex    int
	Direction Direction
}

func (*Background) element() {}
func (*Image) element()      {}
func (*Text) element()       {}
