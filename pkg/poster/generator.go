// Package poster provides the high-level poster generation API: build a
// scene programmatically or from a decoded document, then render it to a
// PNG byte slice, a file, or a base64 data URI.
package poster

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"github.com/user/postergen/pkg/adapters/fontdir"
	"github.com/user/postergen/pkg/adapters/ggcanvas"
	"github.com/user/postergen/pkg/adapters/imageloader"
	"github.com/user/postergen/pkg/adapters/logger"
	"github.com/user/postergen/pkg/adapters/osfilesystem"
	"github.com/user/postergen/pkg/compose"
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

// Option customizes a Generator's collaborators.
type Option func(*options)

type options struct {
	logger  ports.Logger
	backend ports.Backend
	loader  ports.ImageLoader
	fonts   ports.FontResolver
	fs      ports.FileSystem
}

// WithLogger sets the logger. The default discards all output.
func WithLogger(l ports.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithBackend sets the rendering backend. The default is the gg backend.
func WithBackend(b ports.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithImageLoader sets the image loader.
func WithImageLoader(l ports.ImageLoader) Option {
	return func(o *options) { o.loader = l }
}

// WithFontResolver sets the font resolver.
func WithFontResolver(r ports.FontResolver) Option {
	return func(o *options) { o.fonts = r }
}

// WithFileSystem sets the filesystem used for image sources and file output.
func WithFileSystem(fs ports.FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// Generator accumulates elements and renders them into a poster. Each
// render pass builds a fresh immutable scene, so a Generator can be
// rendered, modified and rendered again.
type Generator struct {
	width      int
	height     int
	background color.RGBA
	elements   []scene.Element

	comp *compose.Compositor
	fs   ports.FileSystem
}

// New creates a Generator for a canvas of the given size and background
// color.
func New(width, height int, background color.RGBA, opts ...Option) *Generator {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNoop()
	}
	if o.fs == nil {
		o.fs = osfilesystem.New()
	}
	if o.backend == nil {
		o.backend = ggcanvas.New()
	}
	if o.loader == nil {
		o.loader = imageloader.New(o.fs)
	}
	if o.fonts == nil {
		o.fonts = fontdir.New()
	}

	return &Generator{
		width:      width,
		height:     height,
		background: background,
		comp:       compose.New(o.backend, o.loader, o.fonts, o.logger),
		fs:         o.fs,
	}
}

// FromScene creates a Generator preloaded with a decoded scene.
func FromScene(sc *scene.Scene, opts ...Option) *Generator {
	g := New(sc.Width, sc.Height, sc.BackgroundColor, opts...)
	g.SetElements(sc.Elements)
	return g
}

// AddBackground appends a background element.
func (g *Generator) AddBackground(b scene.Background) *Generator {
	g.elements = append(g.elements, &b)
	return g
}

// AddImage appends an image element.
func (g *Generator) AddImage(img scene.Image) *Generator {
	g.elements = append(g.elements, &img)
	return g
}

// AddText appends a text element. A zero LineHeight gets the document
// default of 1.5.
func (g *Generator) AddText(t scene.Text) *Generator {
	if t.LineHeight == 0 {
		t.LineHeight = 1.5
	}
	g.elements = append(g.elements, &t)
	return g
}

// SetElements replaces all elements.
func (g *Generator) SetElements(elements []scene.Element) *Generator {
	g.elements = append(g.elements[:0], elements...)
	return g
}

// Clear removes all elements.
func (g *Generator) Clear() *Generator {
	g.elements = g.elements[:0]
	return g
}

// Render validates the accumulated scene and rasterizes it.
func (g *Generator) Render(ctx context.Context) (image.Image, error) {
	sc := &scene.Scene{
		Width:           g.width,
		Height:          g.height,
		BackgroundColor: g.background,
		Elements:        g.elements,
	}
	if err := scene.Validate(sc); err != nil {
		return nil, err
	}
	return g.comp.Render(ctx, sc)
}

// Generate renders the poster and encodes it as PNG.
func (g *Generator) Generate(ctx context.Context) ([]byte, error) {
	img, err := g.Render(ctx)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("poster: encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// GenerateFile renders the poster and writes it as a PNG file, creating
// parent directories as needed.
func (g *Generator) GenerateFile(ctx context.Context, path string) error {
	data, err := g.Generate(ctx)
	if err != nil {
		return err
	}
	return g.fs.WriteFile(path, data)
}

// GenerateBase64 renders the poster and returns it as a PNG data URI.
func (g *Generator) GenerateBase64(ctx context.Context) (string, error) {
	data, err := g.Generate(ctx)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(data), nil
}
