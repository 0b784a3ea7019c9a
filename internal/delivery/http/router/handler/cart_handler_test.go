package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	mockUsecase "chaski/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectCartView(cart *mockUsecase.MockCartUsecase, items entity.Cart) {
	cart.EXPECT().Items().Return(items).Maybe()
	cart.EXPECT().Total().Return(items.Total()).Maybe()
	cart.EXPECT().ItemCount().Return(items.ItemCount()).Maybe()
}

func TestCartHandler_UpdateItem(t *testing.T) {
	productID := uuid.New()

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "keeps a positive quantity", body: `{"quantity":4}`, expected: 4},
		{name: "clamps zero to one", body: `{"quantity":0}`, expected: 1},
		{name: "clamps negatives to one", body: `{"quantity":-3}`, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := mockUsecase.NewMockCartUsecase(t)
			catalog := mockUsecase.NewMockCatalogUsecase(t)
			h := NewCartHandler(cart, catalog)

			cart.EXPECT().UpdateQuantity(mock.Anything, productID, tt.expected).Return(nil).Once()
			expectCartView(cart, entity.Cart{})

			e := newTestEcho()
			c, rec := newJSONContext(e, http.MethodPatch, "/api/cart/items/"+productID.String(), tt.body,
				map[string]string{"productId": productID.String()})

			require.NoError(t, h.UpdateItem(c))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestCartHandler_UpdateItem_BadProductID(t *testing.T) {
	cart := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cart, mockUsecase.NewMockCatalogUsecase(t))

	c, _ := newJSONContext(newTestEcho(), http.MethodPatch, "/api/cart/items/nope", `{"quantity":2}`,
		map[string]string{"productId": "nope"})

	err := h.UpdateItem(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartHandler_AddItem(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Mate", Price: decimal.NewFromInt(5)}

	t.Run("adds a catalog product", func(t *testing.T) {
		cart := mockUsecase.NewMockCartUsecase(t)
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCartHandler(cart, catalog)

		catalog.EXPECT().Product(product.ID).Return(product, true).Once()
		cart.EXPECT().AddToCart(mock.Anything, product, 2).Return(nil).Once()
		expectCartView(cart, entity.Cart{{Product: product, Quantity: 2}})

		c, rec := newJSONContext(newTestEcho(), http.MethodPost, "/api/cart/items",
			`{"productId":"`+product.ID.String()+`","quantity":2}`, nil)

		require.NoError(t, h.AddItem(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Data struct {
				Total     decimal.Decimal `json:"total"`
				ItemCount int             `json:"itemCount"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.True(t, decimal.NewFromInt(10).Equal(body.Data.Total))
		assert.Equal(t, 2, body.Data.ItemCount)
	})

	t.Run("unknown product", func(t *testing.T) {
		cart := mockUsecase.NewMockCartUsecase(t)
		catalog := mockUsecase.NewMockCatalogUsecase(t)
		h := NewCartHandler(cart, catalog)

		catalog.EXPECT().Product(mock.Anything).Return(nil, false).Once()

		c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/cart/items",
			`{"productId":"`+uuid.NewString()+`"}`, nil)

		assert.ErrorIs(t, h.AddItem(c), domainerrors.ErrProductNotFound)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewCartHandler(mockUsecase.NewMockCartUsecase(t), mockUsecase.NewMockCatalogUsecase(t))

		c, _ := newJSONContext(newTestEcho(), http.MethodPost, "/api/cart/items", `{"productId":`, nil)

		assert.ErrorIs(t, h.AddItem(c), domainerrors.ErrValidationFailed)
	})
}

func TestCartHandler_Clear(t *testing.T) {
	cart := mockUsecase.NewMockCartUsecase(t)
	h := NewCartHandler(cart, mockUsecase.NewMockCatalogUsecase(t))

	cart.EXPECT().ClearCart(mock.Anything).Return(nil).Once()
	expectCartView(cart, entity.Cart{})

	c, rec := newJSONContext(newTestEcho(), http.MethodDelete, "/api/cart", "", nil)

	require.NoError(t, h.Clear(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
