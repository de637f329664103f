// Package imageloader decodes poster image sources: filesystem paths,
// data:image/...;base64 literals and http(s) URLs.
package imageloader

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/user/postergen/pkg/ports"
)

// LoadError reports an unreadable or undecodable image source.
type LoadError struct {
	Src string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("imageloader: load %q: %v", e.Src, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Loader implements ports.ImageLoader.
type Loader struct {
	fs     ports.FileSystem
	client *http.Client
}

// New creates a Loader reading local sources through fs. Remote sources use
// an HTTP client with a 30 second timeout; per-request deadlines come from
// the caller's context.
func New(fs ports.FileSystem) *Loader {
	return &Loader{
		fs:     fs,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

// Load resolves a source into decoded pixels.
func (l *Loader) Load(ctx context.Context, src string) (image.Image, error) {
	var (
		data []byte
		err  error
	)
	switch {
	case strings.HasPrefix(src, "data:image/"):
		data, err = decodeDataURI(src)
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		data, err = l.fetch(ctx, src)
	default:
		data, err = l.fs.ReadFile(src)
	}
	if err != nil {
		return nil, &LoadError{Src: DisplaySrc(src), Err: err}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Src: DisplaySrc(src), Err: err}
	}
	return img, nil
}

var _ ports.ImageLoader = (*Loader)(nil)

func decodeDataURI(src string) ([]byte, error) {
	_, payload, ok := strings.Cut(src, ",")
	if !ok {
		return nil, errors.New("malformed data URI: missing comma")
	}
	return base64.StdEncoding.DecodeString(payload)
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// DisplaySrc shortens data URIs for error messages and logs.
func DisplaySrc(src string) string {
	const limit = 48
	if strings.HasPrefix(src, "data:") && len(src) > limit {
		return src[:limit] + "..."
	}
	return src
}
