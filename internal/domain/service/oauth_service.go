package service

import (
	"context"

	"chaski/internal/domain/entity"
)

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string              // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string              // User's email address
	Name          string              // User's display name
	Provider      entity.ProviderType // The OAuth provider (google, apple)
	AvatarURL     string              // URL to user's profile picture
	EmailVerified bool                // Whether the email is verified by the provider
}

// Metadata returns the claims in the keys the session layer reads.
func (u *OAuthUser) Metadata() map[string]string {
	metadata := map[string]string{}
	if u.Name != "" {
		metadata[entity.MetadataFullName] = u.Name
		metadata[entity.MetadataName] = u.Name
	}
	if u.AvatarURL != "" {
		metadata[entity.MetadataAvatarURL] = u.AvatarURL
		metadata[entity.MetadataPicture] = u.AvatarURL
	}

	return metadata
}

// OAuthService drives the authorization code flow of one identity provider.
type OAuthService interface {
	// AuthCodeURL builds the redirect URL carrying state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for verified user information.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() entity.ProviderType
}
