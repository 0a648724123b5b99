package ports

import (
	"context"
	"io"
)

// StoredFile describes an uploaded object.
type StoredFile struct {
	Key string
	URL string
}

// FileStore is the object storage backing hobby images.
type FileStore interface {
	Store(ctx context.Context, originalName, contentType string, body io.Reader, size int64) (*StoredFile, error)
	// Open returns domain.ErrFileNotFound for unknown keys.
	Open(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}
