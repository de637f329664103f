package scene

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/user/postergen/pkg/colorhex"
)

// defaultLineHeight matches the document default for text elements.
const defaultLineHeight = 1.5

// sceneDoc is the wire form of a Scene.
type sceneDoc struct {
	Width           int          `json:"width" yaml:"width"`
	Height          int          `json:"height" yaml:"height"`
	BackgroundColor string       `json:"background_color" yaml:"background_color"`
	Elements        []elementDoc `json:"elements" yaml:"elements"`
}

// elementDoc is the union of all element fields; Type discriminates.
// Optional fields are pointers so absent and zero can be told apart.
type elementDoc struct {
	Type string `json:"type" yaml:"type"`

	// background
	Color  string     `json:"color" yaml:"color"`
	Image  string     `json:"image" yaml:"image"`
	Radius *radiusDoc `json:"radius" yaml:"radius"`

	// image
	Src       string   `json:"src" yaml:"src"`
	X         float64  `json:"x" yaml:"x"`
	Y         float64  `json:"y" yaml:"y"`
	Width     *float64 `json:"width" yaml:"width"`
	Height    *float64 `json:"height" yaml:"height"`
	ObjectFit string   `json:"object_fit" yaml:"object_fit"`
	ZIndex    int      `json:"z_index" yaml:"z_index"`

	// text
	Text            string     `json:"text" yaml:"text"`
	FontSize        float64    `json:"font_size" yaml:"font_size"`
	Align           string     `json:"align" yaml:"align"`
	FontFamily      string     `json:"font_family" yaml:"font_family"`
	MaxWidth        float64    `json:"max_width" yaml:"max_width"`
	LineHeight      *float64   `json:"line_height" yaml:"line_height"`
	MaxLines        int        `json:"max_lines" yaml:"max_lines"`
	Bold            bool       `json:"bold" yaml:"bold"`
	Prefix          string     `json:"prefix" yaml:"prefix"`
	BackgroundColor string     `json:"background_color" yaml:"background_color"`
	Padding         float64    `json:"padding" yaml:"padding"`
	BorderRadius    *radiusDoc `json:"border_radius" yaml:"border_radius"`
	Direction       string     `json:"direction" yaml:"direction"`
}

// radiusDoc accepts either a single number or an array of up to four
// corner values ordered top-left, top-right, bottom-right, bottom-left.
// Missing array entries are 0.
type radiusDoc struct {
	corners [4]float64
}

func (r *radiusDoc) UnmarshalJSON(data []byte) error {
	var single float64
	if err := json.Unmarshal(data, &single); err == nil {
		r.corners = [4]float64{single, single, single, single}
		return nil
	}
	var list []float64
	if err := json.Unmarshal(data, &list); err != nil {
		return &ValidationError{Field: "radius", Reason: "must be a number or an array of numbers"}
	}
	return r.fromList(list)
}

func (r *radiusDoc) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var single float64
		if err := value.Decode(&single); err != nil {
			return &ValidationError{Field: "radius", Reason: "must be a number or an array of numbers"}
		}
		r.corners = [4]float64{single, single, single, single}
		return nil
	case yaml.SequenceNode:
		var list []float64
		if err := value.Decode(&list); err != nil {
			return &ValidationError{Field: "radius", Reason: "must be a number or an array of numbers"}
		}
		return r.fromList(list)
	default:
		return &ValidationError{Field: "radius", Reason: "must be a number or an array of numbers"}
	}
}

func (r *radiusDoc) fromList(list []float64) error {
	if len(list) > 4 {
		return &ValidationError{Field: "radius", Reason: "array has more than 4 entries"}
	}
	var c [4]float64
	copy(c[:], list)
	r.corners = c
	return nil
}

func (r *radiusDoc) radius() Radius {
	if r == nil {
		return Radius{}
	}
	return Radius{
		TopLeft:     r.corners[0],
		TopRight:    r.corners[1],
		BottomRight: r.corners[2],
		BottomLeft:  r.corners[3],
	}
}

// DecodeJSON parses a JSON scene document and validates it.
func DecodeJSON(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse JSON: %w", err)
	}
	return doc.toScene()
}

// DecodeYAML parses a YAML scene document and validates it. YAML is a
// superset of JSON, so this also accepts JSON input.
func DecodeYAML(data []byte) (*Scene, error) {
	var doc sceneDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("scene: parse YAML: %w", err)
	}
	return doc.toScene()
}

func (doc *sceneDoc) toScene() (*Scene, error) {
	if doc.BackgroundColor == "" {
		return nil, &ValidationError{Field: "background_color", Reason: "required"}
	}
	bg, err := colorhex.Parse(doc.BackgroundColor)
	if err != nil {
		return nil, fmt.Errorf("scene: background_color: %w", err)
	}

	sc := &Scene{
		Width:           doc.Width,
		Height:          doc.Height,
		BackgroundColor: bg,
		Elements:        make([]Element, 0, len(doc.Elements)),
	}

	for i, el := range doc.Elements {
		built, err := el.toElement(sc)
		if err != nil {
			return nil, fmt.Errorf("scene: elements[%d]: %w", i, err)
		}
		sc.Elements = append(sc.Elements, built)
	}

	if err := Validate(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (el *elementDoc) toElement(sc *Scene) (Element, error) {
	switch el.Type {
	case "background":
		return el.toBackground(sc)
	case "image":
		return el.toImage()
	case "text":
		return el.toText()
	case "":
		return nil, &ValidationError{Field: "type", Reason: "required"}
	default:
		return nil, &ValidationError{Field: "type", Reason: fmt.Sprintf("unknown element type %q", el.Type)}
	}
}

func (el *elementDoc) toBackground(sc *Scene) (Element, error) {
	// An explicit color wins; otherwise the scene background shows when
	// the image is absent or unloadable.
	c := sc.BackgroundColor
	if el.Color != "" {
		parsed, err := colorhex.Parse(el.Color)
		if err != nil {
			return nil, fmt.Errorf("color: %w", err)
		}
		c = parsed
	}
	return &Background{
		Color:  c,
		Image:  el.Image,
		Radius: el.Radius.radius(),
	}, nil
}

func (el *elementDoc) toImage() (Element, error) {
	img := &Image{
		Src:    el.Src,
		X:      el.X,
		Y:      el.Y,
		Radius: el.Radius.radius(),
		ZIndex: el.ZIndex,
	}
	if el.Width != nil {
		img.Width = *el.Width
	}
	if el.Height != nil {
		img.Height = *el.Height
	}
	switch el.ObjectFit {
	case "", "cover":
		img.Fit = FitCover
	case "contain":
		img.Fit = FitContain
	case "stretch":
		img.Fit = FitStretch
	default:
		return nil, &ValidationError{Field: "object_fit", Reason: fmt.Sprintf("unknown mode %q", el.ObjectFit)}
	}
	return img, nil
}

func (el *elementDoc) toText() (Element, error) {
	c, err := colorhex.Parse(el.Color)
	if err != nil {
		return nil, fmt.Errorf("color: %w", err)
	}

	txt := &Text{
		Text:         el.Text,
		X:            el.X,
		Y:            el.Y,
		FontSize:     el.FontSize,
		Color:        c,
		FontFamily:   el.FontFamily,
		MaxWidth:     el.MaxWidth,
		LineHeight:   defaultLineHeight,
		MaxLines:     el.MaxLines,
		Bold:         el.Bold,
		Prefix:       el.Prefix,
		Padding:      el.Padding,
		BorderRadius: el.BorderRadius.radius(),
		ZIndex:       el.ZIndex,
	}
	if el.LineHeight != nil {
		txt.LineHeight = *el.LineHeight
	}
	if el.Width != nil {
		txt.Width = *el.Width
	}
	if el.Height != nil {
		txt.Height = *el.Height
	}
	if el.BackgroundColor != "" {
		bg, err := colorhex.Parse(el.BackgroundColor)
		if err != nil {
			return nil, fmt.Errorf("background_color: %w", err)
		}
		txt.BackgroundColor = &bg
	}

	switch el.Align {
	case "", "left":
		txt.Align = AlignLeft
	case "center":
		txt.Align = AlignCenter
	case "right":
		txt.Align = AlignRight
	default:
		return nil, &ValidationError{Field: "align", Reason: fmt.Sprintf("unknown alignment %q", el.Align)}
	}

	switch el.Direction {
	case "":
		txt.Direction = DirectionAuto
	case "ltr":
		txt.Direction = DirectionLTR
	case "rtl":
		txt.Direction = DirectionRTL
	default:
		return nil, &ValidationError{Field: "direction", Reason: fmt.Sprintf("unknown direction %q", el.Direction)}
	}

	return txt, nil
}
