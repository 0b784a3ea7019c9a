// Package localstate persists the client flags as one small object per key.
package localstate

import (
	"context"
	"log/slog"

	"chaski/config"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// state directories
	_ "gocloud.dev/blob/memblob"  // mem:// for ephemeral runs
	"gocloud.dev/gcerrors"
)

const flagPrefix = "flags/"

type blobFlags struct {
	bucket *blob.Bucket
}

// FlagsParams holds dependencies for LocalFlags, injected by Fx.
type FlagsParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewLocalFlags opens the local state URL and closes it on shutdown.
func NewLocalFlags(params FlagsParams) (service.LocalFlags, error) {
	stateURL := params.Config.LocalState.URL

	bucket, err := blob.OpenBucket(params.Ctx, stateURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open local state %s", stateURL)
	}

	params.Logger.Info("Local state opened", slog.String("url", stateURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return bucket.Close()
		},
	})

	return NewBlobFlags(bucket), nil
}

// NewBlobFlags wraps an open bucket.
func NewBlobFlags(bucket *blob.Bucket) service.LocalFlags {
	return &blobFlags{bucket: bucket}
}

func (f *blobFlags) Get(ctx context.Context, key string) (string, bool, error) {
	data, err := f.bucket.ReadAll(ctx, flagPrefix+key)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read flag %s", key)
	}

	return string(data), true, nil
}

func (f *blobFlags) Set(ctx context.Context, key, value string) error {
	err := f.bucket.WriteAll(ctx, flagPrefix+key, []byte(value), &blob.WriterOptions{ContentType: "text/plain"})
	if err != nil {
		return errors.Wrapf(err, "failed to write flag %s", key)
	}

	return nil
}

func (f *blobFlags) Delete(ctx context.Context, key string) error {
	err := f.bucket.Delete(ctx, flagPrefix+key)
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete flag %s", key)
	}

	return nil
}
