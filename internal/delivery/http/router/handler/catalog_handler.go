package handler

import (
	"encoding/json"
	"io"
	"net/http"

	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/delivery/http/response"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	productFormField = "product"
	imagesFormField  = "images"
)

// CatalogHandler serves the stores and products mirror and the seller writes.
type CatalogHandler struct {
	catalog usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(catalog usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

func (h *CatalogHandler) ListStores(c echo.Context) error {
	return response.OK(c, h.catalog.Stores())
}

func (h *CatalogHandler) ListProducts(c echo.Context) error {
	return response.OK(c, h.catalog.Products())
}

func (h *CatalogHandler) GetStore(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	store, ok := h.catalog.Store(id)
	if !ok {
		return domainerrors.ErrStoreNotFound
	}

	return response.OK(c, store)
}

func (h *CatalogHandler) GetProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	product, ok := h.catalog.Product(id)
	if !ok {
		return domainerrors.ErrProductNotFound
	}

	return response.OK(c, product)
}

// ProductOwner returns the public profile of the seller of a product.
func (h *CatalogHandler) ProductOwner(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	owner, err := h.catalog.ProductOwner(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, owner)
}

// StoreShareCode returns the PNG QR code of a store.
func (h *CatalogHandler) StoreShareCode(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	png, err := h.catalog.StoreShareCode(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.PNG(c, png)
}

// Refresh reloads the mirror.
func (h *CatalogHandler) Refresh(c echo.Context) error {
	h.catalog.FetchAll(c.Request().Context())

	return c.NoContent(http.StatusNoContent)
}

func (h *CatalogHandler) MyStores(c echo.Context) error {
	return response.OK(c, h.catalog.MyStores(deliverycontext.GetUser(c).ID))
}

func (h *CatalogHandler) MyProducts(c echo.Context) error {
	return response.OK(c, h.catalog.MyProducts(deliverycontext.GetUser(c).ID))
}

func (h *CatalogHandler) CreateStore(c echo.Context) error {
	var input usecase.CreateStoreInput
	if err := bind(c, &input); err != nil {
		return err
	}

	store, err := h.catalog.CreateStore(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, store, "Store created")
}

func (h *CatalogHandler) UpdateStore(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateStoreInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.catalog.UpdateStore(c.Request().Context(), id, &input); err != nil {
		return err
	}

	store, _ := h.catalog.Store(id)

	return response.Success(c, http.StatusOK, store, "Store updated")
}

// CreateProduct takes a multipart form: the JSON product in "product" and up to
// three files in "images".
func (h *CatalogHandler) CreateProduct(c echo.Context) error {
	var input usecase.CreateProductInput
	files, err := h.productForm(c, &input)
	if err != nil {
		return err
	}

	product, err := h.catalog.CreateProduct(c.Request().Context(), &input, files)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, product, "Product created")
}

func (h *CatalogHandler) UpdateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	files, err := h.productForm(c, &input)
	if err != nil {
		return err
	}

	if err := h.catalog.UpdateProduct(c.Request().Context(), id, &input, files); err != nil {
		return err
	}

	product, _ := h.catalog.Product(id)

	return response.Success(c, http.StatusOK, product, "Product updated")
}

func (h *CatalogHandler) DeactivateProduct(c echo.Context) error {
	id, err := uuidParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.catalog.DeactivateProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// productForm decodes a product payload sent either as plain JSON or as a
// multipart form with attached images.
func (h *CatalogHandler) productForm(c echo.Context, input any) ([]usecase.ImageFile, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, bind(c, input)
		}

		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed multipart form")
	}

	payload := form.Value[productFormField]
	if len(payload) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails(productFormField + " field is required")
	}
	if err := json.Unmarshal([]byte(payload[0]), input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("malformed product payload")
	}
	if err := c.Validate(input); err != nil {
		return nil, err
	}

	headers := form.File[imagesFormField]
	if len(headers) > entity.MaxProductImages {
		return nil, domainerrors.ErrValidationFailed.WithDetails("at most 3 images per product")
	}

	files := make([]usecase.ImageFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open %s", header.Filename)
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s", header.Filename)
		}
		files = append(files, usecase.ImageFile{Name: header.Filename, Data: data})
	}

	return files, nil
}
