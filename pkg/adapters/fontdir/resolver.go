// Package fontdir resolves font family names against TrueType files found
// in platform font directories, with the bundled Go fonts as the built-in
// last resort.
package fontdir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/user/postergen/pkg/ports"
)

// DefaultFamily names the bundled fallback face.
const DefaultFamily = "Go"

// Resolver implements ports.FontResolver by indexing font files under a set
// of directories. The index is built lazily on first use; parsed fonts are
// cached. Safe for concurrent use.
type Resolver struct {
	dirs []string

	indexOnce sync.Once
	files     map[string]string // normalized family -> file path

	mu     sync.Mutex
	parsed map[string]*truetype.Font

	defaultOnce sync.Once
	regular     *truetype.Font
	bold        *truetype.Font
	defaultErr  error
}

// New creates a Resolver over the platform font directories.
func New() *Resolver {
	return NewWithDirs(systemFontDirs()...)
}

// NewWithDirs creates a Resolver over explicit directories.
func NewWithDirs(dirs ...string) *Resolver {
	return &Resolver{
		dirs:   dirs,
		parsed: make(map[string]*truetype.Font),
	}
}

// Resolve returns a face for the first family with a matching font file.
// When none matches, the bundled Go font is used. Bold prefers a dedicated
// bold file and falls back to the family's regular file.
func (r *Resolver) Resolve(families []string, size float64, bold bool) (font.Face, string, error) {
	for _, family := range families {
		if family == "" {
			continue
		}
		if f := r.lookup(family, bold); f != nil {
			return truetype.NewFace(f, &truetype.Options{Size: size}), family, nil
		}
	}

	f, err := r.fallback(bold)
	if err != nil {
		return nil, "", err
	}
	return truetype.NewFace(f, &truetype.Options{Size: size}), DefaultFamily, nil
}

var _ ports.FontResolver = (*Resolver)(nil)

func (r *Resolver) lookup(family string, bold bool) *truetype.Font {
	idx := r.index()

	var keys []string
	if bold {
		keys = append(keys, normalize(family+" bold"))
	}
	keys = append(keys, normalize(family))

	for _, key := range keys {
		path, ok := idx[key]
		if !ok {
			continue
		}
		if f := r.parse(path); f != nil {
			return f
		}
	}
	return nil
}

func (r *Resolver) index() map[string]string {
	r.indexOnce.Do(func() {
		r.files = make(map[string]string)
		for _, dir := range r.dirs {
			filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
				if err != nil || d.IsDir() {
					return nil
				}
				ext := strings.ToLower(filepath.Ext(path))
				if ext != ".ttf" && ext != ".otf" {
					return nil
				}
				key := normalize(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
				if _, exists := r.files[key]; !exists {
					r.files[key] = path
				}
				return nil
			})
		}
	})
	return r.files
}

func (r *Resolver) parse(path string) *truetype.Font {
	r.mu.Lock()
	defer r.mu.Unlock()

	if f, ok := r.parsed[path]; ok {
		return f
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		// Not every indexed file parses (OpenType CFF outlines are
		// not supported by freetype); treat as unavailable.
		return nil
	}
	r.parsed[path] = f
	return f
}

func (r *Resolver) fallback(bold bool) (*truetype.Font, error) {
	r.defaultOnce.Do(func() {
		r.regular, r.defaultErr = truetype.Parse(goregular.TTF)
		if r.defaultErr != nil {
			r.defaultErr = fmt.Errorf("fontdir: parse bundled regular font: %w", r.defaultErr)
			return
		}
		r.bold, r.defaultErr = truetype.Parse(gobold.TTF)
		if r.defaultErr != nil {
			r.defaultErr = fmt.Errorf("fontdir: parse bundled bold font: %w", r.defaultErr)
		}
	})
	if r.defaultErr != nil {
		return nil, r.defaultErr
	}
	if bold {
		return r.bold, nil
	}
	return r.regular, nil
}

// normalize folds a family name or file base name for matching: lowercase
// with spaces, dashes and underscores removed, so "Noto Naskh Arabic"
// matches NotoNaskhArabic-Regular.ttf as well as notonaskharabic.ttf.
func normalize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch r {
		case ' ', '-', '_':
		default:
			b.WriteRune(r)
		}
	}
	s := b.String()
	s = strings.TrimSuffix(s, "regular")
	return s
}

func systemFontDirs() []string {
	dirs := []string{
		"/usr/share/fonts",
		"/usr/local/share/fonts",
		"/System/Library/Fonts",
		"/Library/Fonts",
		`C:\Windows\Fonts`,
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs,
			filepath.Join(home, ".fonts"),
			filepath.Join(home, ".local", "share", "fonts"),
			filepath.Join(home, "Library", "Fonts"),
		)
	}
	return dirs
}
