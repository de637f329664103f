// Package colorhex parses #RRGGBB and #RRGGBBAA color strings.
package colorhex

import (
	"fmt"
	"image/color"
)

// ParseError reports a malformed hex color string.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("colorhex: invalid color %q: %s", e.Input, e.Reason)
}

// Parse converts a #RRGGBB or #RRGGBBAA string into an RGBA color. Hex
// digits are case-insensitive. The six-digit form implies full opacity.
func Parse(s string) (color.RGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, &ParseError{Input: s, Reason: "missing '#' prefix"}
	}
	hex := s[1:]
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, &ParseError{Input: s, Reason: "expected 6 or 8 hex digits"}
	}

	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(hex)/2; i++ {
		hi, ok1 := hexValue(hex[i*2])
		lo, ok2 := hexValue(hex[i*2+1])
		if !ok1 || !ok2 {
			return color.RGBA{}, &ParseError{Input: s, Reason: "non-hex digit"}
		}
		ch[i] = hi<<4 | lo
	}

	return color.RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
