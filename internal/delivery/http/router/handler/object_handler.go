package handler

import (
	"net/http"
	"strconv"
	"strings"

	"chaski/config"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ObjectHandler serves public objects out of the object bucket, giving the
// URLs built by ObjectStorage.PublicURL somewhere to resolve.
type ObjectHandler struct {
	storage service.ObjectStorage
	bucket  string
}

// NewObjectHandler is the constructor for ObjectHandler, injected by Fx.
func NewObjectHandler(storage service.ObjectStorage, cfg *config.Config) *ObjectHandler {
	return &ObjectHandler{storage: storage, bucket: cfg.Storage.ProductBucket}
}

// Serve streams one object. Only the product bucket is public.
func (h *ObjectHandler) Serve(c echo.Context) error {
	bucket, path := c.Param("bucket"), c.Param("*")
	if bucket != h.bucket || path == "" || strings.Contains(path, "..") {
		return domainerrors.ErrNotFound
	}

	obj, err := h.storage.Open(c.Request().Context(), bucket, path)
	if err != nil {
		return err
	}
	defer obj.Body.Close()

	header := c.Response().Header()
	if cc := obj.CacheControl; cc != "" {
		// uploads store the max age in seconds
		if _, err := strconv.Atoi(cc); err == nil {
			cc = "max-age=" + cc
		}
		header.Set(echo.HeaderCacheControl, cc)
	}
	if obj.Size >= 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}

	return c.Stream(http.StatusOK, contentType, obj.Body)
}
