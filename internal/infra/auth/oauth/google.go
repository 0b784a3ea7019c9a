package oauth

import (
	"context"

	"chaski/config"
	"chaski/internal/domain/entity"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var googleScopes = []string{"openid", "email", "profile"}

type idTokenValidator func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// googleService drives the Google authorization code flow and verifies the
// returned ID token against Google's published keys.
type googleService struct {
	config   *oauth2.Config
	validate idTokenValidator
}

// NewGoogleService creates the Google OAuthService.
func NewGoogleService(provider *config.OAuthProviderConfig) service.OAuthService {
	return &googleService{
		config:   newOAuth2Config(provider, google.Endpoint, googleScopes),
		validate: idtoken.Validate,
	}
}

func (s *googleService) AuthCodeURL(state string) string {
	return s.config.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

func (s *googleService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.config.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "failed to exchange google authorization code")
	}

	raw := idTokenOf(token)
	if raw == "" {
		return nil, errors.New("google token response carries no id_token")
	}

	payload, err := s.validate(ctx, raw, s.config.ClientID)
	if err != nil {
		return nil, errors.Wrap(err, "invalid google id token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	picture, _ := payload.Claims["picture"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if !verified {
		return nil, errors.New("google email not verified")
	}

	return &service.OAuthUser{
		ID:            payload.Subject,
		Email:         email,
		Name:          name,
		Provider:      entity.ProviderGoogle,
		AvatarURL:     picture,
		EmailVerified: verified,
	}, nil
}

func (s *googleService) GetProvider() entity.ProviderType {
	return entity.ProviderGoogle
}
