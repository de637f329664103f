package scene

import "fmt"

// ValidationError reports a structurally invalid scene or element field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("scene: invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the structural invariants of a fully built scene. It is
// called by the decoders and again by the render entry point so scenes
// assembled through the builder API get the same checks.
func Validate(sc *Scene) error {
	if sc.Width <= 0 {
		return &ValidationError{Field: "width", Reason: "must be positive"}
	}
	if sc.Height <= 0 {
		return &ValidationError{Field: "height", Reason: "must be positive"}
	}

	for i, el := range sc.Elements {
		if err := validateElement(el); err != nil {
			return fmt.Errorf("scene: elements[%d]: %w", i, err)
		}
	}
	return nil
}

func validateElement(el Element) error {
	switch e := el.(type) {
	case *Background:
		return validateRadius(e.Radius)
	case *Image:
		if e.Src == "" {
			return &ValidationError{Field: "src", Reason: "required"}
		}
		if e.Width <= 0 || e.Height <= 0 {
			return &ValidationError{Field: "width/height", Reason: "must be positive"}
		}
		return validateRadius(e.Radius)
	case *Text:
		if e.FontSize <= 0 {
			return &ValidationError{Field: "font_size", Reason: "must be positive"}
		}
		if e.Padding < 0 {
			return &ValidationError{Field: "padding", Reason: "must not be negative"}
		}
		if e.MaxWidth < 0 {
			return &ValidationError{Field: "max_width", Reason: "must not be negative"}
		}
		if e.MaxLines < 0 {
			return &ValidationError{Field: "max_lines", Reason: "must be positive when set"}
		}
		if e.LineHeight <= 0 {
			return &ValidationError{Field: "line_height", Reason: "must be positive"}
		}
		return validateRadius(e.BorderRadius)
	default:
		return &ValidationError{Field: "type", Reason: fmt.Sprintf("unsupported element %T", el)}
	}
}

func validateRadius(r Radius) error {
	for _, v := range []float64{r.TopLeft, r.TopRight, r.BottomRight, r.BottomLeft} {
		if v < 0 {
			return &ValidationError{Field: "radius", Reason: "corner values must not be negative"}
		}
	}
	return nil
}
