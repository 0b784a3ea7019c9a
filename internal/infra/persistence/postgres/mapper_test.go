package postgres

import (
	"testing"
	"time"

	"chaski/internal/domain/entity"
	"chaski/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/paulmach/orb"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductMapper_LegacyImage(t *testing.T) {
	data := &model.ProductModel{
		ID:    uuid.New(),
		Name:  "Api morado",
		Price: decimal.RequireFromString("7.50"),
		Image: "https://cdn/legacy.png",
	}

	product := toProductDomain(data)

	assert.Equal(t, []string{}, product.Images)
	assert.Equal(t, "https://cdn/legacy.png", product.PrimaryImage())
	assert.True(t, product.Price.Equal(decimal.RequireFromString("7.5")))
}

func TestProductMapper_ImagesDrivePrimary(t *testing.T) {
	storeID := uuid.New()
	product := &entity.Product{
		ID:      uuid.New(),
		Images:  []string{"https://cdn/a.png", "https://cdn/b.png"},
		Image:   "https://cdn/stale.png",
		StoreID: &storeID,
	}

	data := fromProductDomain(product)

	assert.Equal(t, "https://cdn/a.png", data.Image)
	assert.Equal(t, pq.StringArray{"https://cdn/a.png", "https://cdn/b.png"}, data.Images)
	assert.Equal(t, &storeID, data.StoreID)

	back := toProductDomain(data)
	assert.Equal(t, "https://cdn/a.png", back.Image)
}

func TestStoreMapper_Coordinates(t *testing.T) {
	store := &entity.Store{
		ID:          uuid.New(),
		Name:        "Feria 16 de Julio",
		OwnerID:     "ana",
		Coordinates: orb.Point{-68.16, -16.50},
	}

	data := fromStoreDomain(store)
	assert.Equal(t, model.GeoPoint{-68.16, -16.50}, data.Coordinates)
	assert.Equal(t, pq.StringArray{}, data.Images)

	back := toStoreDomain(data)
	assert.Equal(t, store.Coordinates, back.Coordinates)
	assert.True(t, back.IsOwnedBy("ana"))
}

func TestProfileMapper_DefaultsRole(t *testing.T) {
	user := toProfileDomain(&model.ProfileModel{ID: "ana", Role: "wizard"})
	assert.Equal(t, entity.RoleBuyer, user.Role)

	data := fromProfileDomain(&entity.User{ID: "ana", Role: entity.Role("")})
	assert.Equal(t, entity.RoleBuyer.String(), data.Role)
}

func TestOrderMapper_FreezesItems(t *testing.T) {
	productID := uuid.New()
	order := &entity.Order{
		ID:            uuid.New(),
		UserID:        "ana",
		Total:         decimal.RequireFromString("17.00"),
		Status:        entity.OrderPending,
		PaymentMethod: entity.PaymentCard,
		Items: []entity.OrderItem{
			{ProductID: productID, Quantity: 2, Price: decimal.RequireFromString("7.50")},
		},
	}

	data := fromOrderDomain(order)
	require.Len(t, data.Items, 1)
	assert.Equal(t, "pending", data.Status)
	assert.Equal(t, "card", data.PaymentMethod)

	back := toOrderDomain(data)
	assert.Equal(t, order.Items, back.Items)
	assert.Equal(t, entity.PaymentCard, back.PaymentMethod)
}

func TestMessageMapper(t *testing.T) {
	now := time.Now()
	data := &model.MessageModel{
		ID:             uuid.New(),
		ConversationID: uuid.New(),
		SenderID:       "luis",
		Content:        "hola",
		CreatedAt:      now,
	}

	message := toMessageDomain(data)

	assert.Equal(t, data.ID, message.ID)
	assert.Equal(t, data.ConversationID, message.ConversationID)
	assert.Equal(t, now, message.CreatedAt)
	assert.Equal(t, data.ID, fromMessageDomain(message).ID)
}

func TestNonNilStrings(t *testing.T) {
	assert.Equal(t, []string{}, nonNilStrings(nil))
	assert.Equal(t, []string{"a"}, nonNilStrings([]string{"a"}))
}
