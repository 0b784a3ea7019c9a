package handler

import (
	"net/http"

	"chaski/internal/delivery/http/response"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// CartHandler serves the cart mirror.
type CartHandler struct {
	cart    usecase.CartUsecase
	catalog usecase.CatalogUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, catalog usecase.CatalogUsecase) *CartHandler {
	return &CartHandler{cart: cart, catalog: catalog}
}

// CartView is the cart with its derived totals.
type CartView struct {
	Items     entity.Cart     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"itemCount"`
}

func (h *CartHandler) view() CartView {
	return CartView{
		Items:     h.cart.Items(),
		Total:     h.cart.Total(),
		ItemCount: h.cart.ItemCount(),
	}
}

func (h *CartHandler) Get(c echo.Context) error {
	return response.OK(c, h.view())
}

// AddItem adds a catalog product. A missing quantity adds one unit.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input usecase.AddToCartInput
	if err := bind(c, &input); err != nil {
		return err
	}

	product, ok := h.catalog.Product(input.ProductID)
	if !ok {
		return domainerrors.ErrProductNotFound
	}

	if err := h.cart.AddToCart(c.Request().Context(), product, input.Quantity); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.view(), "Added to cart")
}

// UpdateItem sets a line quantity, clamped to at least one unit.
func (h *CartHandler) UpdateItem(c echo.Context) error {
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	var input usecase.UpdateQuantityInput
	if err := bind(c, &input); err != nil {
		return err
	}

	quantity := entity.ClampQuantity(input.Quantity)
	if err := h.cart.UpdateQuantity(c.Request().Context(), productID, quantity); err != nil {
		return err
	}

	return response.OK(c, h.view())
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	productID, err := uuidParam(c, "productId")
	if err != nil {
		return err
	}

	if err := h.cart.RemoveFromCart(c.Request().Context(), productID); err != nil {
		return err
	}

	return response.OK(c, h.view())
}

func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.ClearCart(c.Request().Context()); err != nil {
		return err
	}

	return response.OK(c, h.view())
}
