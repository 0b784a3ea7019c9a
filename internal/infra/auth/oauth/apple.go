package oauth

import (
	"context"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const appleIssuer = "https://appleid.apple.com"

var (
	appleEndpoint = oauth2.Endpoint{
		AuthURL:   "https://appleid.apple.com/auth/authorize",
		TokenURL:  "https://appleid.apple.com/auth/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	appleScopes = []string{"name", "email"}
)

// appleClaims are the identity claims of a Sign in with Apple ID token.
// email_verified arrives either as a bool or as the string "true".
type appleClaims struct {
	Email         string `json:"email"`
	EmailVerified any    `json:"email_verified"`
	jwt.RegisteredClaims
}

func (c *appleClaims) verified() bool {
	switch v := c.EmailVerified.(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}

// appleService drives the Sign in with Apple flow. The ID token comes straight
// from Apple's token endpoint over TLS, so its claims are read without fetching keys.
type appleService struct {
	config *oauth2.Config
}

// NewAppleService creates the Apple OAuthService. ClientSecret is the
// pre-generated client secret JWT of the Services ID.
func NewAppleService(provider *config.OAuthProviderConfig) service.OAuthService {
	return &appleService{config: newOAuth2Config(provider, appleEndpoint, appleScopes)}
}

func (s *appleService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.SetAuthURLParam("response_mode", "form_post"))
}

func (s *appleService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange apple authorization code")
	}

	raw := idTokenOf(token)
	if raw == "" {
		return nil, errors.New("apple token response carries no id_token")
	}

	claims, err := s.parseIDToken(raw)
	if err != nil {
		return nil, err
	}

	return &service.OAuthUser{
		ID:            claims.Subject,
		Email:         claims.Email,
		Provider:      entity.ProviderApple,
		EmailVerified: claims.verified(),
	}, nil
}

func (s *appleService) parseIDToken(raw string) (*appleClaims, error) {
	claims := &appleClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, errors.Wrap(err, "malformed apple id token")
	}

	validator := jwt.NewValidator(
		jwt.WithIssuer(appleIssuer),
		jwt.WithAudience(s.config.ClientID),
		jwt.WithExpirationRequired(),
	)
	if err := validator.Validate(claims); err != nil {
		return nil, errors.Wrap(err, "invalid apple id token")
	}
	if claims.Subject == "" {
		return nil, errors.New("apple id token has no subject")
	}

	return claims, nil
}

func (s *appleService) GetProvider() entity.ProviderType {
	return entity.ProviderApple
}
