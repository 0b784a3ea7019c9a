package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/usecase"
	"chaski/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	productImagePrefix = "product-images"
	imageCacheControl  = "3600"
)

// imageUploader validates product images and uploads them concurrently.
type imageUploader struct {
	storage  service.ObjectStorage
	bucket   string
	maxBytes int64
	logger   *slog.Logger
}

type preparedImage struct {
	data        []byte
	ext         string
	contentType string
}

// prepare checks every file before anything is written.
func (u *imageUploader) prepare(files []usecase.ImageFile) ([]preparedImage, error) {
	prepared := make([]preparedImage, 0, len(files))
	for _, file := range files {
		if int64(len(file.Data)) > u.maxBytes {
			return nil, domainerrors.ErrImageTooLarge.WithDetails(fmt.Sprintf("%s is %s, the limit is %s",
				file.Name, util.FormatBytes(int64(len(file.Data))), util.FormatBytes(u.maxBytes)))
		}

		mt := mimetype.Detect(file.Data)
		if !strings.HasPrefix(mt.String(), "image/") {
			return nil, domainerrors.ErrInvalidImage.WithDetails(file.Name)
		}

		prepared = append(prepared, preparedImage{
			data:        file.Data,
			ext:         mt.Extension(),
			contentType: mt.String(),
		})
	}

	return prepared, nil
}

// checkAccess reads one key from the bucket to make sure it is reachable before uploading.
func (u *imageUploader) checkAccess(ctx context.Context) error {
	if _, err := u.storage.List(ctx, u.bucket, productImagePrefix, 1); err != nil {
		u.logger.Error("Product bucket is not accessible", slog.Any("error", err), slog.String("bucket", u.bucket))

		return errors.Wrap(domainerrors.ErrStorageUnavailable, err.Error())
	}

	return nil
}

// upload writes every image under the product folder and returns the public URLs
// in input order along with the object paths written.
func (u *imageUploader) upload(ctx context.Context, productID uuid.UUID, images []preparedImage) ([]string, []string, error) {
	if len(images) == 0 {
		return nil, nil, nil
	}
	if err := u.checkAccess(ctx); err != nil {
		return nil, nil, err
	}

	urls := make([]string, len(images))
	paths := make([]string, len(images))
	for i, image := range images {
		paths[i] = fmt.Sprintf("%s/%s/%s%s", productImagePrefix, productID, uuid.NewString(), image.ext)
	}

	g, gctx := errgroup.WithContext(ctx)
	for i, image := range images {
		g.Go(func() error {
			err := u.storage.Upload(gctx, u.bucket, paths[i], image.data, service.UploadOptions{
				ContentType:  image.contentType,
				CacheControl: imageCacheControl,
			})
			if err != nil {
				return errors.Wrap(domainerrors.ErrUploadFailed, err.Error())
			}
			urls[i] = u.storage.PublicURL(u.bucket, paths[i])

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		u.discard(context.WithoutCancel(ctx), paths)

		return nil, nil, err
	}

	return urls, paths, nil
}

// discard removes uploaded objects, best effort.
func (u *imageUploader) discard(ctx context.Context, paths []string) {
	for _, path := range paths {
		if err := u.storage.Delete(ctx, u.bucket, path); err != nil {
			u.logger.Warn("Failed to delete orphan image", slog.Any("error", err), slog.String("path", path))
		}
	}
}
