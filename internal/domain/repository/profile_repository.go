package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"
)

// ErrProfileNotFound is returned when no profile row exists for an identity.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository is the row boundary of the 'profiles' collection.
type ProfileRepository interface {
	// FindByID retrieves the profile row keyed by the identity ID.
	FindByID(ctx context.Context, id string) (*entity.User, error)

	// FindByIDs retrieves several profiles at once. Missing ids are skipped.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error)

	// Create inserts a new profile row. It fails on an existing ID.
	Create(ctx context.Context, user *entity.User) error

	// Update writes the present fields of update and bumps updated_at.
	Update(ctx context.Context, id string, update entity.ProfileUpdate) error

	// UpdateIdentity overwrites the name and avatar of an existing profile.
	UpdateIdentity(ctx context.Context, id, name, profileImage string) error

	// UpdateRatingSummary stores the aggregate of the ratings received by id.
	UpdateRatingSummary(ctx context.Context, id string, summary entity.RatingSummary) error
}
