// Package blobstore provides read-oriented access to model blobs.
//
// Model files are immutable, so the abstraction is intentionally small: a
// store can open a blob for one sequential read and enumerate blob names.
// Implementations exist for the local file system, process memory (testing),
// Amazon S3 and MinIO/S3-compatible storage.
package blobstore

import (
	"context"
	"io"
	"os"
)

// ErrNotFound is returned when a blob does not exist.
//
// Implementations should return an error that satisfies
// `errors.Is(err, ErrNotFound)`. The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// BlobStore is an abstraction for fetching immutable model blobs.
type BlobStore interface {
	// Open opens a blob for sequential reading.
	// The caller owns the returned reader and must close it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// List returns the blob names under the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}
