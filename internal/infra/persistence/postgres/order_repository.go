package postgres

import (
	"context"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order; gorm writes the items through the association.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound.WrapMessage("order references a missing product")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt

	return nil
}

func (repo *orderRepository) FindByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	var orderModels []model.OrderModel
	err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, toOrderDomain(&orderModels[i]))
	}

	return orders, nil
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	items := make([]entity.OrderItem, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, entity.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &entity.Order{
		ID:            data.ID,
		UserID:        data.UserID,
		Total:         data.Total,
		Status:        entity.OrderStatus(data.Status),
		Address:       data.Address,
		PaymentMethod: entity.PaymentMethod(data.PaymentMethod),
		CouponUsed:    data.CouponUsed,
		Items:         items,
		CreatedAt:     data.CreatedAt,
	}
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	items := make([]model.OrderItemModel, 0, len(data.Items))
	for _, item := range data.Items {
		items = append(items, model.OrderItemModel{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	return &model.OrderModel{
		ID:            data.ID,
		UserID:        data.UserID,
		Total:         data.Total,
		Status:        string(data.Status),
		Address:       data.Address,
		PaymentMethod: string(data.PaymentMethod),
		CouponUsed:    data.CouponUsed,
		Items:         items,
	}
}
