package auth

import (
	"testing"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTConfig() *config.Config {
	cfg := &config.Config{Auth: &config.AuthConfig{
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 24 * time.Hour,
	}}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_GenerateAndValidateTokens(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	userID := uuid.New()
	accessToken, refreshToken, err := jwtService.GenerateTokens(userID, entity.ProviderGoogle)
	require.NoError(t, err)
	assert.NotEqual(t, accessToken, refreshToken)

	accessClaims, err := jwtService.ValidateToken(accessToken, service.TokenTypeAccess)
	require.NoError(t, err)
	assert.Equal(t, userID, accessClaims.UserID)
	assert.Equal(t, entity.ProviderGoogle, accessClaims.Provider)
	assert.Equal(t, service.TokenTypeAccess, accessClaims.Type)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), accessClaims.ExpiresAt.Time, 5*time.Second)

	refreshClaims, err := jwtService.ValidateToken(refreshToken, service.TokenTypeRefresh)
	require.NoError(t, err)
	assert.Equal(t, userID, refreshClaims.UserID)
	assert.Equal(t, service.TokenTypeRefresh, refreshClaims.Type)
}

func TestJWTService_RejectsWrongType(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	accessToken, refreshToken, err := jwtService.GenerateTokens(uuid.New(), entity.ProviderEmail)
	require.NoError(t, err)

	_, err = jwtService.ValidateToken(accessToken, service.TokenTypeRefresh)
	assert.Error(t, err)

	_, err = jwtService.ValidateToken(refreshToken, service.TokenTypeAccess)
	assert.Error(t, err)

	_, err = jwtService.ValidateToken(accessToken, "id")
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "garbage", token: "invalid.token.here"},
		{name: "empty", token: ""},
		{name: "expired", token: signExpired(t)},
		{name: "none algorithm", token: signNone(t)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jwtService.ValidateToken(tt.token, service.TokenTypeAccess)
			assert.Error(t, err)
		})
	}
}

func TestJWTService_MissingSecrets(t *testing.T) {
	_, err := NewJWTService(&config.Config{})

	assert.Error(t, err)
}

func TestJWTService_HashToken(t *testing.T) {
	jwtService, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	hash := jwtService.HashToken("raw-token")

	assert.Len(t, hash, 64)
	assert.Equal(t, hash, jwtService.HashToken("raw-token"))
	assert.NotEqual(t, hash, jwtService.HashToken("raw-token-2"))
}

func signExpired(t *testing.T) string {
	t.Helper()

	claims := service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(newTestJWTConfig().SecretKey.Access))
	require.NoError(t, err)

	return signed
}

func signNone(t *testing.T) string {
	t.Helper()

	claims := service.Claims{
		UserID: uuid.New(),
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	return signed
}
