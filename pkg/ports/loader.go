package ports

import (
	"context"
	"image"
)

// ImageLoader resolves an element's image source into decoded pixels.
// A source may be a filesystem path, a data:image/...;base64 literal or an
// http(s) URL. Loading may block; implementations honor ctx cancellation.
type ImageLoader interface {
	Load(ctx context.Context, src string) (image.Image, error)
}
