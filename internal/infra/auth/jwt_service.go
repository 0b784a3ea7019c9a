package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := time.Hour, 30*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}, nil
}

// GenerateTokens creates a new access token and refresh token for a given account.
func (s *jwtService) GenerateTokens(userID uuid.UUID, provider entity.ProviderType) (accessToken string, refreshToken string, err error) {
	accessToken, err = s.generateToken(userID, provider, service.TokenTypeAccess)
	if err != nil {
		return "", "", err
	}

	refreshToken, err = s.generateToken(userID, provider, service.TokenTypeRefresh)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}

// ValidateToken parses tokenString with the secret of tokenType and checks its type claim.
func (s *jwtService) ValidateToken(tokenString string, tokenType string) (*service.Claims, error) {
	secret, _, err := s.secretFor(tokenType)
	if err != nil {
		return nil, err
	}

	claims := &service.Claims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if claims.Type != tokenType {
		return nil, errors.Errorf("unexpected token type %q", claims.Type)
	}

	return claims, nil
}

// HashToken returns the hex SHA-256 of a raw token.
func (s *jwtService) HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))

	return hex.EncodeToString(sum[:])
}

func (s *jwtService) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) secretFor(tokenType string) ([]byte, time.Duration, error) {
	switch tokenType {
	case service.TokenTypeAccess:
		return s.accessSecret, s.accessTTL, nil
	case service.TokenTypeRefresh:
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, errors.Errorf("unknown token type %q", tokenType)
	}
}

func (s *jwtService) generateToken(userID uuid.UUID, provider entity.ProviderType, tokenType string) (string, error) {
	secret, ttl, err := s.secretFor(tokenType)
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := service.Claims{
		UserID:   userID,
		Provider: provider,
		Type:     tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}
