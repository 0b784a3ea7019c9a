package repository

import (
	"context"
	"errors"
	"time"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when no stored session matches a token hash.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores the long-lived half of each session, keyed by token hash.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *entity.RefreshToken) error
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// DeleteByHash ends one session.
	DeleteByHash(ctx context.Context, tokenHash string) error

	// DeleteExpired prunes the sessions of an account that expired before now
	// and reports how many were removed.
	DeleteExpired(ctx context.Context, accountID uuid.UUID, now time.Time) (int64, error)
}
