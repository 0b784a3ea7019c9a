package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"chaski/config"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/service"
	"chaski/internal/infra/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newTestObjectHandler(t *testing.T) (*ObjectHandler, service.ObjectStorage) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	objects := storage.NewBlobStorage(bucket, "http://localhost:8080/storage/v1/object/public")
	cfg := &config.Config{Storage: &config.StorageConfig{ProductBucket: "products"}}

	return NewObjectHandler(objects, cfg), objects
}

func TestObjectHandler_ServesPublicURL(t *testing.T) {
	h, objects := newTestObjectHandler(t)
	ctx := context.Background()

	png := []byte{0x89, 'P', 'N', 'G'}
	opts := service.UploadOptions{ContentType: "image/png", CacheControl: "3600"}
	require.NoError(t, objects.Upload(ctx, "products", "product-images/a/0.png", png, opts))

	e := newTestEcho()
	e.GET("/storage/v1/object/public/:bucket/*", h.Serve)

	publicURL, err := url.Parse(objects.PublicURL("products", "product-images/a/0.png"))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, publicURL.Path, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestObjectHandler_NotFound(t *testing.T) {
	h, objects := newTestObjectHandler(t)
	require.NoError(t, objects.Upload(context.Background(), "avatars", "me.png", []byte("x"), service.UploadOptions{}))

	tests := []struct {
		name   string
		bucket string
		path   string
	}{
		{name: "missing object", bucket: "products", path: "product-images/none.png"},
		{name: "private bucket", bucket: "avatars", path: "me.png"},
		{name: "empty path", bucket: "products", path: ""},
		{name: "parent segments", bucket: "products", path: "../avatars/me.png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEcho()
			c, _ := newJSONContext(e, http.MethodGet, "/storage/v1/object/public/"+tt.bucket+"/"+tt.path, "",
				map[string]string{"bucket": tt.bucket, "*": tt.path})

			assert.ErrorIs(t, h.Serve(c), domainerrors.ErrNotFound)
		})
	}
}
