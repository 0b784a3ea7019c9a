package service

import (
	"context"

	"chaski/internal/domain/entity"
)

// AuthProvider is the authentication half of the remote service boundary.
type AuthProvider interface {
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error)

	// SignUp creates an account carrying metadata and returns its first session.
	SignUp(ctx context.Context, email, password string, metadata map[string]string) (*entity.Session, error)

	// AuthorizationURL returns the external authorization redirect of provider.
	AuthorizationURL(ctx context.Context, provider entity.ProviderType) (string, error)

	// ExchangeCode completes a provider redirect and returns the session it established.
	ExchangeCode(ctx context.Context, provider entity.ProviderType, code, state string) (*entity.Session, error)

	// GetSession restores the session identified by a cached token.
	// It returns nil without error when the token is unknown or expired.
	GetSession(ctx context.Context, token string) (*entity.Session, error)

	// SignOut revokes session.
	SignOut(ctx context.Context, session *entity.Session) error

	// UpdatePassword sets or replaces the password credential of the session's account.
	UpdatePassword(ctx context.Context, session *entity.Session, newPassword string) error
}
