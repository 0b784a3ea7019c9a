package impl

import (
	"io"
	"log/slog"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth:     &config.AuthConfig{LoginTimeout: time.Second},
		Storage:  &config.StorageConfig{ProductBucket: "products", MaxUploadBytes: 5 << 20},
		Checkout: &config.CheckoutConfig{ServiceFee: decimal.RequireFromString("2.00")},
		QRCode:   &config.QRCodeConfig{BaseURL: "chaski://store"},
	}

	return cfg
}

func newTestUser() *entity.User {
	return &entity.User{
		ID:    uuid.NewString(),
		Name:  "Ana Quispe",
		Email: "ana@chaski.com",
		Role:  entity.RoleSeller,
	}
}

func newTestProduct(price string) *entity.Product {
	return &entity.Product{
		ID:       uuid.New(),
		Name:     "Api morado",
		Price:    decimal.RequireFromString(price),
		Category: "bebidas",
		IsActive: true,
		Stock:    10,
		UserID:   uuid.NewString(),
	}
}
