package oauth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

func testProvider() *config.OAuthProviderConfig {
	return &config.OAuthProviderConfig{
		ClientID:     "test_client_id",
		ClientSecret: "test_secret",
		RedirectURL:  "http://localhost:8080/api/auth/callback",
	}
}

// tokenServer answers the authorization code grant with idToken.
func tokenServer(t *testing.T, idToken string) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		assert.Equal(t, "the-code", r.PostForm.Get("code"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "provider-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     idToken,
		})
	}))
	t.Cleanup(server.Close)

	return server
}

func TestNewServices_OnlyConfigured(t *testing.T) {
	cfg := &config.Config{}
	assert.Empty(t, NewServices(cfg))

	cfg.OAuth.Google = testProvider()
	cfg.OAuth.Apple = &config.OAuthProviderConfig{}
	services := NewServices(cfg)

	require.Len(t, services, 1)
	assert.Equal(t, entity.ProviderGoogle, services[0].GetProvider())
}

func TestGoogleService_AuthCodeURL(t *testing.T) {
	svc := NewGoogleService(testProvider())

	parsed, err := url.Parse(svc.AuthCodeURL("state-123"))
	require.NoError(t, err)

	query := parsed.Query()
	assert.Equal(t, "accounts.google.com", parsed.Host)
	assert.Equal(t, "test_client_id", query.Get("client_id"))
	assert.Equal(t, "state-123", query.Get("state"))
	assert.Equal(t, "code", query.Get("response_type"))
	assert.Equal(t, "openid email profile", query.Get("scope"))
}

func TestGoogleService_Exchange(t *testing.T) {
	server := tokenServer(t, "google-id-token")

	tests := []struct {
		name     string
		validate idTokenValidator
		wantErr  bool
	}{
		{
			name: "verified",
			validate: func(_ context.Context, idToken, audience string) (*idtoken.Payload, error) {
				assert.Equal(t, "google-id-token", idToken)
				assert.Equal(t, "test_client_id", audience)

				return &idtoken.Payload{Subject: "g-123", Claims: map[string]any{
					"email":          "ana@example.com",
					"name":           "Ana Mamani",
					"picture":        "https://lh3/ana.png",
					"email_verified": true,
				}}, nil
			},
		},
		{
			name: "unverified email",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return &idtoken.Payload{Subject: "g-123", Claims: map[string]any{"email_verified": false}}, nil
			},
			wantErr: true,
		},
		{
			name: "bad signature",
			validate: func(context.Context, string, string) (*idtoken.Payload, error) {
				return nil, errors.New("idtoken: invalid signature")
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &googleService{
				config:   newOAuth2Config(testProvider(), oauth2.Endpoint{TokenURL: server.URL, AuthStyle: oauth2.AuthStyleInParams}, googleScopes),
				validate: tt.validate,
			}

			user, err := svc.Exchange(context.Background(), "the-code")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "g-123", user.ID)
			assert.Equal(t, entity.ProviderGoogle, user.Provider)
			assert.Equal(t, "Ana Mamani", user.Metadata()[entity.MetadataFullName])
			assert.Equal(t, "https://lh3/ana.png", user.Metadata()[entity.MetadataAvatarURL])
		})
	}
}

func appleIDToken(t *testing.T, claims appleClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unused"))
	require.NoError(t, err)

	return signed
}

func TestAppleService_Exchange(t *testing.T) {
	valid := appleClaims{
		Email:         "luis@privaterelay.appleid.com",
		EmailVerified: "true",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    appleIssuer,
			Subject:   "001234.abcd",
			Audience:  jwt.ClaimStrings{"test_client_id"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	wrongAudience := valid
	wrongAudience.Audience = jwt.ClaimStrings{"someone_else"}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name    string
		claims  appleClaims
		wantErr bool
	}{
		{name: "valid", claims: valid},
		{name: "wrong audience", claims: wrongAudience, wantErr: true},
		{name: "expired", claims: expired, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := tokenServer(t, appleIDToken(t, tt.claims))
			svc := &appleService{config: newOAuth2Config(testProvider(), oauth2.Endpoint{TokenURL: server.URL, AuthStyle: oauth2.AuthStyleInParams}, appleScopes)}

			user, err := svc.Exchange(context.Background(), "the-code")
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "001234.abcd", user.ID)
			assert.Equal(t, entity.ProviderApple, user.Provider)
			assert.True(t, user.EmailVerified)
		})
	}
}

func TestAppleService_AuthCodeURL(t *testing.T) {
	svc := NewAppleService(testProvider())

	parsed, err := url.Parse(svc.AuthCodeURL("s"))
	require.NoError(t, err)

	assert.Equal(t, "appleid.apple.com", parsed.Host)
	assert.Equal(t, "form_post", parsed.Query().Get("response_mode"))
	assert.Equal(t, "name email", parsed.Query().Get("scope"))
}
