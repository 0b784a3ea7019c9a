package handler

import (
	"chaski/internal/delivery/http/response"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

// WishlistHandler serves the wishlist mirror.
type WishlistHandler struct {
	wishlist usecase.WishlistUsecase
	catalog  usecase.CatalogUsecase
}

// NewWishlistHandler is the constructor for WishlistHandler, injected by Fx.
func NewWishlistHandler(wishlist usecase.WishlistUsecase, catalog usecase.CatalogUsecase) *WishlistHandler {
	return &WishlistHandler{wishlist: wishlist, catalog: catalog}
}

// List returns the wishlisted catalog products.
func (h *WishlistHandler) List(c echo.Context) error {
	return response.OK(c, h.wishlist.WishlistProducts(h.catalog.Products()))
}

// Toggle flips a product in or out of the wishlist.
func (h *WishlistHandler) Toggle(c echo.Context) error {
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.wishlist.ToggleWishlist(c.Request().Context(), productID); err != nil {
		return err
	}

	return response.OK(c, map[string]bool{"wishlisted": h.wishlist.Contains(productID)})
}
