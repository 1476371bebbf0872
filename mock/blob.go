package mock

import (
	"context"

	"github.com/fwojciec/gitwebhl"
)

// Compile-time interface verification.
var (
	_ gitwebhl.BlobSource = (*BlobSource)(nil)
	_ gitwebhl.Viewer     = (*Viewer)(nil)
	_ gitwebhl.Clipboard  = (*Clipboard)(nil)
)

// BlobSource is a mock implementation of gitwebhl.BlobSource.
type BlobSource struct {
	BlobFn func(ctx context.Context, ref gitwebhl.BlobRef) (string, error)
}

func (b *BlobSource) Blob(ctx context.Context, ref gitwebhl.BlobRef) (string, error) {
	return b.BlobFn(ctx, ref)
}

// Viewer is a mock implementation of gitwebhl.Viewer.
type Viewer struct {
	ViewFn func(ctx context.Context, blob gitwebhl.Blob) error
}

func (v *Viewer) View(ctx context.Context, blob gitwebhl.Blob) error {
	return v.ViewFn(ctx, blob)
}

// Clipboard is a mock implementation of gitwebhl.Clipboard.
type Clipboard struct {
	CopyFn func(content string) error
}

func (c *Clipboard) Copy(content string) error {
	return c.CopyFn(content)
}
