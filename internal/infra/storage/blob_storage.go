// Package storage implements service.ObjectStorage on a gocloud.dev bucket.
// Logical buckets are key prefixes inside the configured bucket URL.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"chaski/config"
	"chaski/internal/domain/service"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket URLs
	_ "gocloud.dev/blob/memblob"  // mem:// bucket URLs
	_ "gocloud.dev/blob/s3blob"   // s3:// bucket URLs
	"gocloud.dev/gcerrors"
)

// defaultListLimit caps List when the caller passes no limit.
const defaultListLimit = 100

type blobStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// StorageParams holds dependencies for ObjectStorage, injected by Fx.
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewObjectStorage opens the configured bucket URL and closes it on shutdown.
func NewObjectStorage(params StorageParams) (service.ObjectStorage, error) {
	cfg := params.Config.Storage

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Object storage initialized", slog.String("bucket_url", cfg.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing object storage")

			return bucket.Close()
		},
	})

	return NewBlobStorage(bucket, cfg.PublicBaseURL), nil
}

// NewBlobStorage wraps an open bucket.
func NewBlobStorage(bucket *blob.Bucket, publicBaseURL string) service.ObjectStorage {
	return &blobStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func objectKey(bucket, path string) string {
	return bucket + "/" + strings.TrimLeft(path, "/")
}

func (s *blobStorage) Upload(ctx context.Context, bucket, path string, data []byte, opts service.UploadOptions) error {
	err := s.bucket.WriteAll(ctx, objectKey(bucket, path), data, &blob.WriterOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to upload %s", path)
	}

	return nil
}

func (s *blobStorage) PublicURL(bucket, path string) string {
	return s.publicBaseURL + "/" + objectKey(bucket, path)
}

func (s *blobStorage) List(ctx context.Context, bucket, prefix string, limit int) ([]string, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	root := bucket + "/"
	objs, _, err := s.bucket.ListPage(ctx, blob.FirstPageToken, limit, &blob.ListOptions{Prefix: objectKey(bucket, prefix)})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list %s", bucket)
	}

	keys := make([]string, 0, len(objs))
	for _, obj := range objs {
		keys = append(keys, strings.TrimPrefix(obj.Key, root))
	}

	return keys, nil
}

func (s *blobStorage) Open(ctx context.Context, bucket, path string) (*service.Object, error) {
	key := objectKey(bucket, path)

	attrs, err := s.bucket.Attributes(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrap(domainerrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to stat %s", path)
	}

	reader, err := s.bucket.NewReader(ctx, key, nil)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrap(domainerrors.ErrNotFound, key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s", path)
	}

	return &service.Object{
		Body:         reader,
		ContentType:  reader.ContentType(),
		CacheControl: attrs.CacheControl,
		Size:         reader.Size(),
	}, nil
}

func (s *blobStorage) Delete(ctx context.Context, bucket, path string) error {
	err := s.bucket.Delete(ctx, objectKey(bucket, path))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete %s", path)
	}

	return nil
}
