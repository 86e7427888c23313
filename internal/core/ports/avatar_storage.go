package ports

import (
	"context"
	"io"
)

// AvatarStorage persists uploaded avatar images and hands back the public
// URL under which they are served.
type AvatarStorage interface {
	Store(ctx context.Context, filename string, data io.Reader) (string, error)
	// Remove deletes the stored file behind url. Unknown URLs are a no-op.
	Remove(ctx context.Context, url string) error
}
