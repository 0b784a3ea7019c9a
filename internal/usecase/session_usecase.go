// Package usecase defines the application-level contracts exposed to the view layer:
// the session manager and one data mirror per domain.
package usecase

import (
	"context"

	"chaski/internal/domain/entity"
)

// SessionState is the position of the session manager in its state machine.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticating  SessionState = "authenticating"
	StateAuthenticated   SessionState = "authenticated"
	StateDemo            SessionState = "demo"
)

// HasIdentity reports whether the state carries a usable identity.
func (s SessionState) HasIdentity() bool {
	return s == StateAuthenticated || s == StateDemo
}

// IdentityProvider exposes the identity driving ownership and filtering.
type IdentityProvider interface {
	// CurrentUser returns a copy of the current identity, or nil.
	CurrentUser() *entity.User
}

// SessionListener is implemented by stateful components that follow the session lifecycle.
type SessionListener interface {
	// SessionStarted is called once an identity is installed.
	SessionStarted(ctx context.Context, user *entity.User)

	// SessionEnded is called on logout or forced sign-out. The component must drop
	// every piece of identity-scoped state.
	SessionEnded(ctx context.Context)
}

// SessionUsecase is the session manager.
type SessionUsecase interface {
	IdentityProvider

	// Initialize restores the demo identity or a cached session.
	Initialize(ctx context.Context) error

	// EnterDemo persists the skip-auth flag and installs the demo identity.
	EnterDemo(ctx context.Context) error

	// Login exchanges credentials for a session, bounded by the auth timeout.
	Login(ctx context.Context, input *LoginInput) error

	// LoginWithGoogle returns the Google authorization redirect.
	LoginWithGoogle(ctx context.Context) (string, error)

	// LoginWithApple returns the Apple authorization redirect.
	LoginWithApple(ctx context.Context) (string, error)

	// LoginWithProvider returns the authorization redirect of a federated provider.
	LoginWithProvider(ctx context.Context, provider entity.ProviderType) (string, error)

	// CompleteProviderLogin finishes a provider redirect and installs the identity.
	CompleteProviderLogin(ctx context.Context, input *ProviderCallbackInput) error

	// Register creates an account. The profile row is created once a session exists.
	Register(ctx context.Context, input *RegisterInput) error

	// Logout clears the identity and resets every listener. Remote sign-out is best effort.
	Logout(ctx context.Context) error

	// UpdateUserProfile writes the present fields and merges them into the identity.
	UpdateUserProfile(ctx context.Context, input *UpdateProfileInput) (*entity.User, error)

	// UpdatePassword sets a password credential on the current account.
	UpdatePassword(ctx context.Context, input *UpdatePasswordInput) error

	// IsLoading reports whether an initialization or login is in flight.
	IsLoading() bool

	// State returns the current state.
	State() SessionState

	// AddListener registers components to be notified of session transitions.
	AddListener(listeners ...SessionListener)
}

// LoginInput carries email credentials.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput carries the credentials and profile seed of a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Name     string `json:"name" validate:"required,max=120"`
}

// ProviderCallbackInput carries the query of a provider redirect.
type ProviderCallbackInput struct {
	Provider entity.ProviderType `json:"provider" param:"provider" validate:"required,oneof=google apple"`
	Code     string              `json:"code" query:"code" validate:"required"`
	State    string              `json:"state" query:"state" validate:"required"`
}

// UpdateProfileInput carries the recognized profile fields. Absent fields are untouched.
type UpdateProfileInput struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=120"`
	Address     *string `json:"address,omitempty" validate:"omitempty,max=255"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,max=30"`
	CI          *string `json:"ci,omitempty" validate:"omitempty,max=30"`
}

// ToEntity converts the input to the domain update.
func (in *UpdateProfileInput) ToEntity() entity.ProfileUpdate {
	return entity.ProfileUpdate{
		Name:        in.Name,
		Address:     in.Address,
		PhoneNumber: in.PhoneNumber,
		CI:          in.CI,
	}
}

// UpdatePasswordInput carries the new password.
type UpdatePasswordInput struct {
	Password string `json:"password" validate:"required,min=6"`
}
