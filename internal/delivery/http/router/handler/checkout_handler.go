package handler

import (
	"net/http"

	"chaski/internal/delivery/http/response"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

// CheckoutHandler turns the cart into orders.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

func (h *CheckoutHandler) Summary(c echo.Context) error {
	return response.OK(c, h.checkout.Summary())
}

func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := bind(c, &input); err != nil {
		return err
	}

	order, err := h.checkout.PlaceOrder(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, order, "Order placed")
}

func (h *CheckoutHandler) Orders(c echo.Context) error {
	orders, err := h.checkout.Orders(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}
