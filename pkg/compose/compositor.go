// Package compose renders a scene onto a backend canvas: background first,
// then the remaining elements in stable z-index order, with per-element
// rounded clipping.
package compose

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sort"

	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
	"github.com/user/postergen/pkg/textlayout"
)

// RenderError reports a backend or font failure that aborts the whole
// render. Per-element failures with a defined fallback never carry this
// type; they are logged and the element is skipped.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("compose: %s: %v", e.Op, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Compositor renders scenes. It holds no per-render state and is safe to
// share across concurrent renders as long as its collaborators are.
type Compositor struct {
	backend ports.Backend
	loader  ports.ImageLoader
	fonts   ports.FontResolver
	logger  ports.Logger
}

// New creates a Compositor with the given collaborators.
func New(backend ports.Backend, loader ports.ImageLoader, fonts ports.FontResolver, logger ports.Logger) *Compositor {
	return &Compositor{
		backend: backend,
		loader:  loader,
		fonts:   fonts,
		logger:  logger.WithComponent("compose"),
	}
}

// Render rasterizes the scene in a single sequential pass and returns the
// pixel buffer. The scene is only read, never mutated.
func (c *Compositor) Render(ctx context.Context, sc *scene.Scene) (image.Image, error) {
	canvas, err := c.backend.NewCanvas(sc.Width, sc.Height)
	if err != nil {
		return nil, &RenderError{Op: fmt.Sprintf("create %dx%d canvas", sc.Width, sc.Height), Err: err}
	}
	canvas.Clear(sc.BackgroundColor)

	background, rest := splitBackground(sc.Elements)
	if background != nil {
		c.drawBackground(ctx, canvas, sc, background)
	}

	sorted := make([]scene.Element, len(rest))
	copy(sorted, rest)
	sort.SliceStable(sorted, func(i, j int) bool {
		return zIndex(sorted[i]) < zIndex(sorted[j])
	})

	for i, el := range sorted {
		if err := c.drawElement(ctx, canvas, el); err != nil {
			var rerr *RenderError
			if errors.As(err, &rerr) {
				return nil, err
			}
			c.logger.Warn("Skipping element %d: %s", i, err)
		}
	}

	return canvas.Image(), nil
}

// splitBackground returns the first Background element (nil if none) and
// the elements that participate in z-ordering. Extra Background elements
// are dropped: first wins.
func splitBackground(elements []scene.Element) (*scene.Background, []scene.Element) {
	var bg *scene.Background
	rest := make([]scene.Element, 0, len(elements))
	for _, el := range elements {
		if b, ok := el.(*scene.Background); ok {
			if bg == nil {
				bg = b
			}
			continue
		}
		rest = append(rest, el)
	}
	return bg, rest
}

func zIndex(el scene.Element) int {
	switch e := el.(type) {
	case *scene.Image:
		return e.ZIndex
	case *scene.Text:
		return e.ZIndex
	}
	return 0
}

// drawBackground fills the canvas with the background color and optionally
// blits its image with cover fit. An unloadable image falls back to the fill
// color; that is logged, never fatal.
func (c *Compositor) drawBackground(ctx context.Context, canvas ports.Canvas, sc *scene.Scene, bg *scene.Background) {
	w, h := float64(sc.Width), float64(sc.Height)
	if bg.Radius.IsZero() {
		canvas.FillRect(ports.Rect{Width: w, Height: h}, bg.Color)
	} else {
		canvas.FillPath(RoundedRectPath(0, 0, w, h, bg.Radius), bg.Color)
	}

	if bg.Image == "" {
		return
	}
	img, err := c.loader.Load(ctx, bg.Image)
	if err != nil {
		c.logger.Warn("Background image unavailable, using fill color: %s", err)
		return
	}

	if !bg.Radius.IsZero() {
		canvas.PushClip(RoundedRectPath(0, 0, w, h, bg.Radius))
		defer canvas.PopClip()
	}
	b := img.Bounds()
	src, dst := ComputeDraw(ports.Rect{Width: w, Height: h}, float64(b.Dx()), float64(b.Dy()), scene.FitCover)
	canvas.DrawImageRect(img, src, dst)
}

// drawElement dispatches one non-background element. Image elements with a
// rounded radius are clipped to their bounding box for the duration of the
// draw only; the clip is restored even when the draw fails.
func (c *Compositor) drawElement(ctx context.Context, canvas ports.Canvas, el scene.Element) error {
	switch e := el.(type) {
	case *scene.Image:
		if !e.Radius.IsZero() {
			canvas.PushClip(RoundedRectPath(e.X, e.Y, e.Width, e.Height, e.Radius))
			defer canvas.PopClip()
		}
		return c.drawImage(ctx, canvas, e)
	case *scene.Text:
		return c.drawText(canvas, e)
	}
	return nil
}

func (c *Compositor) drawImage(ctx context.Context, canvas ports.Canvas, e *scene.Image) error {
	img, err := c.loader.Load(ctx, e.Src)
	if err != nil {
		return fmt.Errorf("image element: %w", err)
	}

	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return fmt.Errorf("image element: source %q decoded empty", e.Src)
	}

	target := ports.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
	src, dst := ComputeDraw(target, float64(b.Dx()), float64(b.Dy()), e.Fit)
	canvas.DrawImageRect(img, src, dst)
	return nil
}

func (c *Compositor) drawText(canvas ports.Canvas, e *scene.Text) error {
	text := textlayout.ComposedText(e)

	dir := e.Direction
	if dir == scene.DirectionAuto {
		dir = textlayout.DetectDirection(text)
	}

	face, family, err := c.fonts.Resolve(textlayout.FontCandidates(e.FontFamily, dir), e.FontSize, e.Bold)
	if err != nil {
		return &RenderError{Op: "resolve font", Err: err}
	}
	canvas.SetFontFace(face)

	layout := textlayout.Resolve(e, canvas.MeasureString)
	c.logger.Debug("Text layout: family=%s direction=%s lines=%d", family, layout.Direction, len(layout.Lines))

	if layout.Background != nil {
		box := layout.Background
		if e.BorderRadius.IsZero() {
			canvas.FillRect(*box, *e.BackgroundColor)
		} else {
			canvas.FillPath(RoundedRectPath(box.X, box.Y, box.Width, box.Height, e.BorderRadius), *e.BackgroundColor)
		}
	}

	anchor := anchorFor(layout.Align)
	for i, line := range layout.Lines {
		y := e.Y + float64(i)*e.FontSize*e.LineHeight
		canvas.DrawString(line, e.X, y, anchor, e.Color)
	}
	return nil
}

func anchorFor(a scene.Align) float64 {
	switch a {
	case scene.AlignCenter:
		return 0.5
	case scene.AlignRight:
		return 1
	default:
		return 0
	}
}
