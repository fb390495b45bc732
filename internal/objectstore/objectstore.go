// Package objectstore wraps the binary object storage used for item photos.
// The production backend is an S3-compatible bucket; an in-memory store backs
// tests and a no-op store stands in when the bucket is unconfigured.
package objectstore

import (
	"context"
	"errors"
	"io"
)

// ErrUnconfigured is returned by the no-op store for any upload.
var ErrUnconfigured = errors.New("object storage is not configured")

// Store uploads binary objects keyed by path and reports the public URL they
// are reachable under.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// Noop rejects every upload; items saved through it keep a null image URL.
type Noop struct{}

func NewNoop() *Noop { return &Noop{} }

func (*Noop) Put(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	return "", ErrUnconfigured
}
