package postgres

import (
	"context"
	"time"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) repository.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (repo *refreshTokenRepository) Create(ctx context.Context, token *entity.RefreshToken) error {
	row := model.RefreshTokenModel{
		ID:        token.ID,
		UserID:    token.UserID,
		Provider:  string(token.Provider),
		TokenHash: token.TokenHash,
		ExpiresAt: token.ExpiresAt,
	}

	err := repo.db.WithContext(ctx).Create(&row).Error
	switch {
	case err == nil:
		token.ID = row.ID
		token.CreatedAt = row.CreatedAt

		return nil
	case isUniqueConstraintViolation(err):
		return domainerrors.ErrConflict.WrapMessage("session already stored")
	case isForeignKeyConstraintViolation(err):
		return domainerrors.ErrNotFound.WrapMessage("session for unknown account")
	default:
		return domainerrors.NewDatabaseExecuteError(err, "failed to store session")
	}
}

// FindByHash returns the stored session without checking its expiry.
func (repo *refreshTokenRepository) FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error) {
	var row model.RefreshTokenModel
	err := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &entity.RefreshToken{
		ID:        row.ID,
		UserID:    row.UserID,
		Provider:  entity.ProviderType(row.Provider),
		TokenHash: row.TokenHash,
		ExpiresAt: row.ExpiresAt,
		CreatedAt: row.CreatedAt,
	}, nil
}

func (repo *refreshTokenRepository) DeleteByHash(ctx context.Context, tokenHash string) error {
	result := repo.db.WithContext(ctx).Where("token_hash = ?", tokenHash).Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return errors.WithStack(result.Error)
	}
	if result.RowsAffected == 0 {
		return repository.ErrRefreshTokenNotFound
	}

	return nil
}

func (repo *refreshTokenRepository) DeleteExpired(ctx context.Context, accountID uuid.UUID, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("user_id = ? AND expires_at < ?", accountID, now).
		Delete(&model.RefreshTokenModel{})
	if result.Error != nil {
		return 0, errors.WithStack(result.Error)
	}

	return result.RowsAffected, nil
}
