// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for authentication persistence.
var (
	// ErrAccountNotFound is returned when no account matches the lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrAuthNotFound is returned when an authentication method is not found.
	ErrAuthNotFound = errors.New("authentication method not found")
)

// AccountRepository persists auth-side accounts.
type AccountRepository interface {
	// CreateAccount persists a new account and fills in its generated ID.
	CreateAccount(ctx context.Context, account *entity.Account) error

	// FindAccountByID retrieves an account by ID.
	FindAccountByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindAccountByEmail retrieves an account by its login email.
	FindAccountByEmail(ctx context.Context, email string) (*entity.Account, error)

	// UpdateAccountMetadata merges metadata into the stored account metadata.
	UpdateAccountMetadata(ctx context.Context, id uuid.UUID, metadata map[string]string) error
}

// AuthRepository defines the standard operations for authentication-related persistence.
type AuthRepository interface {
	// CreateAuthentication persists a new authentication method (e.g., email/password, social login).
	CreateAuthentication(ctx context.Context, auth *entity.Authentication) error

	// FindAuthentication retrieves an authentication method by its provider and provider-specific ID.
	FindAuthentication(ctx context.Context, provider entity.ProviderType, providerUserID string) (*entity.Authentication, error)

	// FindAuthenticationByUserIDAndProvider finds an authentication method for a specific account and provider.
	FindAuthenticationByUserIDAndProvider(ctx context.Context, userID uuid.UUID, provider entity.ProviderType) (*entity.Authentication, error)

	// UpdateAuthentication updates an existing authentication record.
	UpdateAuthentication(ctx context.Context, auth *entity.Authentication) error
}
