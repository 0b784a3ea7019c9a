package service

import (
	"context"
	"io"
)

// ObjectStorage is the binary object half of the remote service boundary.
type ObjectStorage interface {
	// Upload writes data at path inside bucket, overwriting any existing object.
	Upload(ctx context.Context, bucket, path string, data []byte, opts UploadOptions) error

	// PublicURL returns the public address of an object.
	PublicURL(bucket, path string) string

	// List returns at most limit keys under prefix inside bucket, reading a single
	// page. It doubles as an access check when called with a limit of one.
	List(ctx context.Context, bucket, prefix string, limit int) ([]string, error)

	// Open streams an object. A missing object yields ErrNotFound.
	Open(ctx context.Context, bucket, path string) (*Object, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, bucket, path string) error
}

// UploadOptions carries object metadata.
type UploadOptions struct {
	ContentType  string
	CacheControl string
}

// Object is an open object read. The caller closes Body.
type Object struct {
	Body         io.ReadCloser
	ContentType  string
	CacheControl string
	Size         int64
}
