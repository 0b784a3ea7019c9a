package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"auth": map[string]any{
			"loginTimeout": "10s",
		},
		"feed": map[string]any{
			"subscriptionId": "",
		},
		"localState": map[string]any{
			"url": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "AUTH_LOGINTIMEOUT", want: "auth.loginTimeout"},
		{envKey: "FEED_SUBSCRIPTIONID", want: "feed.subscriptionId"},
		{envKey: "LOCALSTATE_URL", want: "localState.url"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			assert.Equal(t, tt.want, canonicalizeEnvKey(tt.envKey, existing))
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 10*time.Second, cfg.Auth.LoginTimeout)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "products", cfg.Storage.ProductBucket)
	assert.EqualValues(t, 5<<20, cfg.Storage.MaxUploadBytes)
	assert.Equal(t, FeedProviderMemory, cfg.Feed.Provider)
	assert.True(t, decimal.RequireFromString("2").Equal(cfg.Checkout.ServiceFee))
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.InDelta(t, defaultRequestsPerSecond, cfg.RateLimit.RequestsPerSecond, 0)
	require.NotNil(t, cfg.Cron)
	assert.Empty(t, cfg.Cron.CatalogRefresh)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:      &AuthConfig{LoginTimeout: 3 * time.Second, BcryptCost: 4},
		Feed:      &FeedConfig{Provider: FeedProviderGoogle},
		RateLimit: &RateLimitConfig{Enabled: true, RequestsPerSecond: 2, Burst: 1},
	}
	cfg.applyDefaults()

	assert.Equal(t, 1, cfg.RateLimit.Burst)
	assert.InDelta(t, 2, cfg.RateLimit.RequestsPerSecond, 0)

	assert.Equal(t, 3*time.Second, cfg.Auth.LoginTimeout)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, FeedProviderGoogle, cfg.Feed.Provider)
}
