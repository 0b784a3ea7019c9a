package storage

import (
	"context"
	"io"
	"testing"

	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestStorage(t *testing.T) service.ObjectStorage {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	return NewBlobStorage(bucket, "https://cdn.chaski.app/")
}

func TestBlobStorage_UploadAndList(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	opts := service.UploadOptions{ContentType: "image/png", CacheControl: "3600"}
	require.NoError(t, storage.Upload(ctx, "products", "product-images/a.png", []byte("a"), opts))
	require.NoError(t, storage.Upload(ctx, "products", "/product-images/b.png", []byte("b"), opts))
	require.NoError(t, storage.Upload(ctx, "avatars", "product-images/c.png", []byte("c"), opts))

	keys, err := storage.List(ctx, "products", "product-images/", 0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"product-images/a.png", "product-images/b.png"}, keys)

	empty, err := storage.List(ctx, "products", "missing/", 0)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBlobStorage_UploadOverwrites(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()
	storage := NewBlobStorage(bucket, "")

	require.NoError(t, storage.Upload(ctx, "products", "x.png", []byte("old"), service.UploadOptions{}))
	require.NoError(t, storage.Upload(ctx, "products", "x.png", []byte("new"), service.UploadOptions{ContentType: "image/png"}))

	data, err := bucket.ReadAll(ctx, "products/x.png")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	attrs, err := bucket.Attributes(ctx, "products/x.png")
	require.NoError(t, err)
	assert.Equal(t, "image/png", attrs.ContentType)
}

func TestBlobStorage_PublicURL(t *testing.T) {
	storage := newTestStorage(t)

	assert.Equal(t, "https://cdn.chaski.app/products/product-images/a.png", storage.PublicURL("products", "product-images/a.png"))
}

func TestBlobStorage_Delete(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	require.NoError(t, storage.Upload(ctx, "products", "a.png", []byte("a"), service.UploadOptions{}))
	require.NoError(t, storage.Delete(ctx, "products", "a.png"))
	assert.NoError(t, storage.Delete(ctx, "products", "a.png"), "deleting a missing object is not an error")

	keys, err := storage.List(ctx, "products", "", 0)
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestBlobStorage_ListReadsASinglePage(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	for _, name := range []string{"a.png", "b.png", "c.png", "d.png"} {
		require.NoError(t, storage.Upload(ctx, "products", "product-images/"+name, []byte(name), service.UploadOptions{}))
	}

	keys, err := storage.List(ctx, "products", "product-images/", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"product-images/a.png"}, keys)

	keys, err = storage.List(ctx, "products", "product-images/", 3)
	require.NoError(t, err)
	assert.Len(t, keys, 3)
}

func TestBlobStorage_Open(t *testing.T) {
	ctx := context.Background()
	storage := newTestStorage(t)

	opts := service.UploadOptions{ContentType: "image/webp", CacheControl: "3600"}
	require.NoError(t, storage.Upload(ctx, "products", "product-images/a.webp", []byte("webp"), opts))

	obj, err := storage.Open(ctx, "products", "product-images/a.webp")
	require.NoError(t, err)
	defer obj.Body.Close()

	data, err := io.ReadAll(obj.Body)
	require.NoError(t, err)
	assert.Equal(t, "webp", string(data))
	assert.Equal(t, "image/webp", obj.ContentType)
	assert.Equal(t, "3600", obj.CacheControl)
	assert.EqualValues(t, 4, obj.Size)

	_, err = storage.Open(ctx, "products", "product-images/missing.webp")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
