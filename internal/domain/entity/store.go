package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store is a seller's storefront. Coordinates are stored as (lng, lat).
type Store struct {
	ID          uuid.UUID
	Name        string
	Description string
	Images      []string
	Address     string
	OwnerID     string    // Identity ID of the seller running the store.
	Coordinates orb.Point // Location of the store, [0,0] when unknown.
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsOwnedBy reports whether userID runs the store.
func (s *Store) IsOwnedBy(userID string) bool {
	return s != nil && userID != "" && s.OwnerID == userID
}

// StoreUpdate carries the editable fields of a store. Nil fields are left untouched.
type StoreUpdate struct {
	Name        *string
	Description *string
	Address     *string
	Images      []string
}
