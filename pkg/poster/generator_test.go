package poster

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/user/postergen/pkg/scene"
)

func TestGenerate_EmptyScene(t *testing.T) {
	g := New(64, 48, color.RGBA{255, 255, 255, 255})

	data, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 48 {
		t.Errorf("bounds = %v", b)
	}
	r, gr, bl, _ := img.At(32, 24).RGBA()
	if r>>8 != 255 || gr>>8 != 255 || bl>>8 != 255 {
		t.Errorf("background pixel = %d,%d,%d, expected white", r>>8, gr>>8, bl>>8)
	}
}

func TestRender_InvalidScene(t *testing.T) {
	g := New(0, 48, color.RGBA{A: 255})

	_, err := g.Render(context.Background())
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *scene.ValidationError
	if !errors.As(err, &verr) {
		t.Errorf("expected *scene.ValidationError, got %T", err)
	}
}

func TestAddText_DefaultLineHeight(t *testing.T) {
	g := New(100, 100, color.RGBA{255, 255, 255, 255})
	g.AddText(scene.Text{Text: "hi", X: 10, Y: 50, FontSize: 12, Color: color.RGBA{A: 255}})

	el, ok := g.elements[0].(*scene.Text)
	if !ok {
		t.Fatalf("unexpected element %T", g.elements[0])
	}
	if el.LineHeight != 1.5 {
		t.Errorf("LineHeight = %g, expected default 1.5", el.LineHeight)
	}

	g.AddText(scene.Text{Text: "hi", X: 10, Y: 50, FontSize: 12, LineHeight: 2, Color: color.RGBA{A: 255}})
	if el := g.elements[1].(*scene.Text); el.LineHeight != 2 {
		t.Errorf("explicit LineHeight overwritten: %g", el.LineHeight)
	}
}

func TestGenerate_TextPoster(t *testing.T) {
	g := New(200, 100, color.RGBA{255, 255, 255, 255})
	g.AddText(scene.Text{
		Text: "Hi", X: 100, Y: 50, FontSize: 24,
		Color: color.RGBA{A: 255}, Align: scene.AlignCenter,
	})

	data, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}

	// Centered text leaves ink on both sides of x=100 and none near the
	// canvas edges.
	leftInk, rightInk, edgeInk := false, false, false
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			r, _, _, _ := img.At(x, y).RGBA()
			if r>>8 >= 250 {
				continue
			}
			switch {
			case x < 10 || x >= 190:
				edgeInk = true
			case x < 100:
				leftInk = true
			default:
				rightInk = true
			}
		}
	}
	if !leftInk || !rightInk {
		t.Errorf("centered text ink: left=%v right=%v", leftInk, rightInk)
	}
	if edgeInk {
		t.Error("text ink found at the canvas edges")
	}
}

func TestGenerate_TextColorApplied(t *testing.T) {
	g := New(200, 100, color.RGBA{255, 255, 255, 255})
	g.AddText(scene.Text{
		Text: "Hello", X: 100, Y: 50, FontSize: 40,
		Color: color.RGBA{R: 255, A: 255}, Align: scene.AlignCenter,
	})

	data, err := g.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("output is not PNG: %v", err)
	}

	// Glyph cores must carry the element color, not the background.
	redInk := false
	for y := 0; y < 100 && !redInk; y++ {
		for x := 0; x < 200; x++ {
			r, gr, b, _ := img.At(x, y).RGBA()
			if r>>8 > 200 && gr>>8 < 100 && b>>8 < 100 {
				redInk = true
				break
			}
		}
	}
	if !redInk {
		t.Error("no red pixels found: text color was not applied")
	}
}

func TestGenerateBase64(t *testing.T) {
	g := New(10, 10, color.RGBA{R: 255, A: 255})

	uri, err := g.GenerateBase64(context.Background())
	if err != nil {
		t.Fatalf("GenerateBase64 failed: %v", err)
	}
	const prefix = "data:image/png;base64,"
	if !strings.HasPrefix(uri, prefix) {
		t.Fatalf("unexpected prefix in %q", uri[:30])
	}
	data, err := base64.StdEncoding.DecodeString(uri[len(prefix):])
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("payload is not PNG: %v", err)
	}
}

func TestGenerateFile(t *testing.T) {
	g := New(10, 10, color.RGBA{A: 255})
	path := filepath.Join(t.TempDir(), "out", "poster.png")

	if err := g.GenerateFile(context.Background(), path); err != nil {
		t.Fatalf("GenerateFile failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("output file missing: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Errorf("file is not PNG: %v", err)
	}
}

func TestClearAndRerender(t *testing.T) {
	g := New(20, 20, color.RGBA{255, 255, 255, 255})
	g.AddBackground(scene.Background{Color: color.RGBA{B: 255, A: 255}})

	img, err := g.Render(context.Background())
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if _, _, b, _ := img.At(10, 10).RGBA(); b>>8 != 255 {
		t.Errorf("expected blue background, b=%d", b>>8)
	}

	g.Clear()
	img, err = g.Render(context.Background())
	if err != nil {
		t.Fatalf("second Render failed: %v", err)
	}
	r, gr, b, _ := img.At(10, 10).RGBA()
	if r>>8 != 255 || gr>>8 != 255 || b>>8 != 255 {
		t.Errorf("expected plain white after Clear, got %d,%d,%d", r>>8, gr>>8, b>>8)
	}
}
