// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType names the mechanism a session was established with.
type ProviderType string

const (
	ProviderEmail  ProviderType = "email"
	ProviderGoogle ProviderType = "google"
	ProviderApple  ProviderType = "apple"
)

// IsFederated reports whether the provider is an external identity provider.
func (p ProviderType) IsFederated() bool {
	return p == ProviderGoogle || p == ProviderApple
}

// IsValid checks if the ProviderType is a known value.
func (p ProviderType) IsValid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderApple:
		return true
	default:
		return false
	}
}

// Metadata keys supplied at signup or by identity providers.
const (
	MetadataName      = "name"
	MetadataFullName  = "full_name"
	MetadataAvatarURL = "avatar_url"
	MetadataPicture   = "picture"
)

// Account is an authentication-side user record, independent of the marketplace profile.
type Account struct {
	ID        uuid.UUID         // The account identifier, shared with the profile row.
	Email     string            // Login email.
	Metadata  map[string]string // Signup payload or provider claims (name, avatar).
	CreatedAt time.Time         // Timestamp of when the account was created.
}

// Authentication represents a single method of logging in (a credential).
// For example, a user's email/password is one record, while a linked Google account is another.
type Authentication struct {
	ID             uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID         uuid.UUID    // Links this authentication method to the Account it belongs to.
	Provider       ProviderType // The authentication provider, e.g., "email", "google", "apple".
	ProviderUserID string       // The user's unique ID from the external provider (e.g., Google's 'sub' claim).
	PasswordHash   string       // Stores the bcrypt-hashed password, only used when the Provider is "email".
	CreatedAt      time.Time    // Timestamp of when this authentication method was linked to the account.
}

// RefreshToken represents a long-lived, authorized session.
type RefreshToken struct {
	ID        uuid.UUID    // The unique ID for this specific refresh token record.
	UserID    uuid.UUID    // Links this session to the Account it belongs to.
	Provider  ProviderType // Mechanism the session was established with.
	TokenHash string       // SHA-256 hash of the raw refresh token.
	ExpiresAt time.Time    // The exact time when this refresh token will expire.
	CreatedAt time.Time    // Timestamp of when this session was created.
}

// Session is a live authenticated session as handed back by the auth provider.
type Session struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Email        string
	Provider     ProviderType
	Metadata     map[string]string
	ExpiresAt    time.Time
}

// MetadataValue returns the first non-empty metadata value among keys.
func (s *Session) MetadataValue(keys ...string) string {
	if s == nil {
		return ""
	}
	for _, key := range keys {
		if v := s.Metadata[key]; v != "" {
			return v
		}
	}

	return ""
}

// IsExpired reports whether the session is past its expiry at now.
func (s *Session) IsExpired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
