package service

import (
	"time"

	"chaski/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Token types carried in the "type" claim.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID   uuid.UUID           `json:"uid"`
	Provider entity.ProviderType `json:"provider"`
	Type     string              `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateTokens creates a new access token and refresh token for a given account.
	GenerateTokens(userID uuid.UUID, provider entity.ProviderType) (accessToken string, refreshToken string, err error)

	// ValidateToken checks the signature and expiry of a token of the given type.
	ValidateToken(tokenString string, tokenType string) (*Claims, error)

	// HashToken returns the storage form of a raw refresh token.
	HashToken(token string) string

	// AccessTokenDuration returns the configured lifetime of access tokens.
	AccessTokenDuration() time.Duration

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}
