package storage

import (
	"context"
	"io"
)

// ObjectStore persists and serves synthesized audio artifacts.
type ObjectStore interface {
	// Put stores data under name with the given content type.
	Put(ctx context.Context, name string, data []byte, contentType string) error
	// Get opens the object stored under name. The caller closes the reader.
	Get(ctx context.Context, name string) (io.ReadCloser, error)
}
