package postgres

import (
	"context"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

// FindByUser returns the lines of userID with their products, oldest line first.
// Lines whose product row is gone are skipped.
func (repo *cartRepository) FindByUser(ctx context.Context, userID string) (entity.Cart, error) {
	var lines []model.CartItemModel
	err := repo.db.WithContext(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&lines).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart := make(entity.Cart, 0, len(lines))
	for _, line := range lines {
		if line.Product == nil {
			continue
		}
		cart = append(cart, entity.CartItem{
			Product:  toProductDomain(line.Product),
			Quantity: line.Quantity,
		})
	}

	return cart, nil
}

// Upsert inserts the (user, product) row or adds quantity to the existing one.
func (repo *cartRepository) Upsert(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	line := &model.CartItemModel{UserID: userID, ProductID: productID, Quantity: quantity}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "product_id"}},
		DoUpdates: clause.Assignments(map[string]any{
			"quantity":   gorm.Expr("cart_items.quantity + EXCLUDED.quantity"),
			"updated_at": gorm.Expr("NOW()"),
		}),
	}).Create(line).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert cart item")
	}

	return nil
}

func (repo *cartRepository) UpdateQuantity(ctx context.Context, userID string, productID uuid.UUID, quantity int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.CartItemModel{}).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Update("quantity", quantity).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update cart item")
	}

	return nil
}

func (repo *cartRepository) Delete(ctx context.Context, userID string, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.CartItemModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func (repo *cartRepository) DeleteAll(ctx context.Context, userID string) error {
	if err := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.CartItemModel{}).Error; err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// wishlistRepository implements the repository.WishlistRepository interface.
type wishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository is the constructor for wishlistRepository.
func NewWishlistRepository(db *gorm.DB) repository.WishlistRepository {
	return &wishlistRepository{db: db}
}

func (repo *wishlistRepository) FindProductIDs(ctx context.Context, userID string) (entity.Wishlist, error) {
	var ids []uuid.UUID
	err := repo.db.WithContext(ctx).
		Model(&model.WishlistItemModel{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Pluck("product_id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wishlist")
	}

	return entity.Wishlist(ids), nil
}

func (repo *wishlistRepository) Insert(ctx context.Context, userID string, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.WishlistItemModel{UserID: userID, ProductID: productID}).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert wishlist item")
	}

	return nil
}

func (repo *wishlistRepository) Delete(ctx context.Context, userID string, productID uuid.UUID) error {
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		Delete(&model.WishlistItemModel{}).Error
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}
