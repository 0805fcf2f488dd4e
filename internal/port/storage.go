package port

import (
	"context"
	"io"
)

// ObjectStorage stores and retrieves uploaded document files.
type ObjectStorage interface {
	// Upload stores the content under the given key and returns the storage URL.
	Upload(ctx context.Context, key string, content io.Reader, contentType string) (string, error)
	// Download retrieves the content stored under the key.
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	// Delete removes the object stored under the key.
	Delete(ctx context.Context, key string) error
	// GetPresignedURL returns a temporary URL for direct download of the key.
	GetPresignedURL(ctx context.Context, key string) (string, error)
}
