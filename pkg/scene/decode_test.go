package scene

import (
	"errors"
	"image/color"
	"testing"

	"github.com/user/postergen/pkg/colorhex"
)

func TestDecodeJSON_FullScene(t *testing.T) {
	doc := `{
		"width": 800,
		"height": 600,
		"background_color": "#ffffff",
		"elements": [
			{"type": "background", "color": "#f5f5f5", "radius": 20},
			{"type": "image", "src": "logo.png", "x": 10, "y": 20, "width": 100, "height": 50, "object_fit": "contain", "z_index": 2},
			{"type": "text", "text": "Hello", "x": 400, "y": 300, "font_size": 40, "color": "#333333", "align": "center", "bold": true, "z_index": 1}
		]
	}`

	sc, err := DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}

	if sc.Width != 800 || sc.Height != 600 {
		t.Errorf("expected 800x600, got %dx%d", sc.Width, sc.Height)
	}
	if sc.BackgroundColor != (color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}) {
		t.Errorf("unexpected background color %+v", sc.BackgroundColor)
	}
	if len(sc.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(sc.Elements))
	}

	bg, ok := sc.Elements[0].(*Background)
	if !ok {
		t.Fatalf("elements[0]: expected *Background, got %T", sc.Elements[0])
	}
	if bg.Radius != UniformRadius(20) {
		t.Errorf("expected uniform radius 20, got %+v", bg.Radius)
	}

	img, ok := sc.Elements[1].(*Image)
	if !ok {
		t.Fatalf("elements[1]: expected *Image, got %T", sc.Elements[1])
	}
	if img.Fit != FitContain {
		t.Errorf("expected contain fit, got %s", img.Fit)
	}
	if img.ZIndex != 2 {
		t.Errorf("expected z_index 2, got %d", img.ZIndex)
	}

	txt, ok := sc.Elements[2].(*Text)
	if !ok {
		t.Fatalf("elements[2]: expected *Text, got %T", sc.Elements[2])
	}
	if txt.Align != AlignCenter {
		t.Errorf("expected center alignment, got %s", txt.Align)
	}
	if !txt.Bold {
		t.Error("expected bold")
	}
	if txt.LineHeight != 1.5 {
		t.Errorf("expected default line height 1.5, got %v", txt.LineHeight)
	}
	if txt.Direction != DirectionAuto {
		t.Errorf("expected auto direction, got %s", txt.Direction)
	}
}

func TestDecodeJSON_RadiusArray(t *testing.T) {
	cases := []struct {
		name   string
		radius string
		want   Radius
	}{
		{"full array", "[1, 2, 3, 4]", Radius{TopLeft: 1, TopRight: 2, BottomRight: 3, BottomLeft: 4}},
		{"short array", "[5, 6]", Radius{TopLeft: 5, TopRight: 6}},
		{"empty array", "[]", Radius{}},
		{"single number", "7", UniformRadius(7)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := `{"width": 10, "height": 10, "background_color": "#000000",
				"elements": [{"type": "background", "color": "#ffffff", "radius": ` + tc.radius + `}]}`
			sc, err := DecodeJSON([]byte(doc))
			if err != nil {
				t.Fatalf("DecodeJSON failed: %v", err)
			}
			bg := sc.Elements[0].(*Background)
			if bg.Radius != tc.want {
				t.Errorf("expected %+v, got %+v", tc.want, bg.Radius)
			}
		})
	}
}

func TestDecodeJSON_RadiusTooManyEntries(t *testing.T) {
	doc := `{"width": 10, "height": 10, "background_color": "#000000",
		"elements": [{"type": "background", "radius": [1, 2, 3, 4, 5]}]}`
	if _, err := DecodeJSON([]byte(doc)); err == nil {
		t.Fatal("expected error for 5-entry radius array")
	}
}

func TestDecodeJSON_BackgroundColorFallback(t *testing.T) {
	doc := `{"width": 10, "height": 10, "background_color": "#112233",
		"elements": [{"type": "background"}]}`
	sc, err := DecodeJSON([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeJSON failed: %v", err)
	}
	bg := sc.Elements[0].(*Background)
	if bg.Color != sc.BackgroundColor {
		t.Errorf("expected background to inherit scene color, got %+v", bg.Color)
	}
}

func TestDecodeJSON_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
	}{
		{"zero width", `{"width": 0, "height": 10, "background_color": "#000000"}`},
		{"negative height", `{"width": 10, "height": -1, "background_color": "#000000"}`},
		{"missing background color", `{"width": 10, "height": 10}`},
		{"bad color", `{"width": 10, "height": 10, "background_color": "000000"}`},
		{"unknown element type", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "video"}]}`},
		{"missing element type", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{}]}`},
		{"image without src", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "image", "width": 5, "height": 5}]}`},
		{"image zero size", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "image", "src": "a.png"}]}`},
		{"text zero font size", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "text", "text": "a", "color": "#ffffff"}]}`},
		{"unknown align", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "text", "text": "a", "font_size": 10, "color": "#ffffff", "align": "justify"}]}`},
		{"unknown fit", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "image", "src": "a.png", "width": 5, "height": 5, "object_fit": "fill"}]}`},
		{"negative radius", `{"width": 10, "height": 10, "background_color": "#000000", "elements": [{"type": "background", "radius": -1}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeJSON([]byte(tc.doc)); err == nil {
				t.Fatalf("expected error for: %s", tc.doc)
			}
		})
	}
}

func TestDecodeJSON_ColorErrorType(t *testing.T) {
	doc := `{"width": 10, "height": 10, "background_color": "nope"}`
	_, err := DecodeJSON([]byte(doc))
	if err == nil {
		t.Fatal("expected error")
	}
	// The hex parser's typed error must survive wrapping.
	var perr *colorhex.ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected *colorhex.ParseError, got %v", err)
	}
}

func TestDecodeYAML(t *testing.T) {
	doc := `
width: 400
height: 300
background_color: "#ffffff"
elements:
  - type: text
    text: hello
    x: 10
    y: 20
    font_size: 16
    color: "#000000"
    direction: rtl
    border_radius: [4, 4]
  - type: image
    src: photo.jpg
    x: 0
    y: 0
    width: 100
    height: 100
    radius: 8
`
	sc, err := DecodeYAML([]byte(doc))
	if err != nil {
		t.Fatalf("DecodeYAML failed: %v", err)
	}
	if len(sc.Elements) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(sc.Elements))
	}

	txt := sc.Elements[0].(*Text)
	if txt.Direction != DirectionRTL {
		t.Errorf("expected rtl, got %s", txt.Direction)
	}
	if txt.BorderRadius != (Radius{TopLeft: 4, TopRight: 4}) {
		t.Errorf("unexpected border radius %+v", txt.BorderRadius)
	}

	img := sc.Elements[1].(*Image)
	if img.Radius != UniformRadius(8) {
		t.Errorf("unexpected radius %+v", img.Radius)
	}
}
