package ports

import "golang.org/x/image/font"

// FontResolver maps a prioritized list of family names to a concrete face.
type FontResolver interface {
	// Resolve returns a face for the first available family, at the given
	// size, in bold weight when requested. Implementations always carry a
	// built-in last-resort face, so an error means no face of any kind
	// could be produced. The returned name identifies the chosen family.
	Resolve(families []string, size float64, bold bool) (font.Face, string, error)
}
