// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

const (
	// DemoUserID is the fixed identifier of the local demo identity.
	DemoUserID = "demo-user-id"

	// DefaultParticipantName is shown when a profile row carries no name.
	DefaultParticipantName = "Usuario"
)

// User is the application-level identity derived from a backend profile row.
// Its ID is the join key for every ownership relation (stores, products, cart rows, messages).
type User struct {
	ID            string    // Opaque identifier issued by the auth provider. Immutable.
	Name          string    // Display name, empty when the profile row has none.
	Email         string    // Email of the authenticated account.
	Role          Role      // Marketplace role, buyer by default.
	ProfileImage  string    // Public URL of the avatar, optional.
	CI            string    // National identity document number, optional.
	Address       string    // Free-form delivery address, optional.
	PhoneNumber   string    // Contact phone number, optional.
	AverageRating float64   // Mean of the ratings received by this user.
	TotalRatings  int       // Number of ratings received by this user.
	CreatedAt     time.Time // Timestamp of when the profile row was created.
	UpdatedAt     time.Time // Timestamp of the last modification to the profile row.
}

// DemoUser returns the static identity used when authentication is skipped.
// It is never persisted remotely.
func DemoUser() *User {
	return &User{
		ID:            DemoUserID,
		Name:          "Usuario Demo",
		Email:         "demo@chaski.com",
		Role:          RoleBuyer,
		Address:       "Cochabamba, Bolivia",
		PhoneNumber:   "70123456",
		AverageRating: 0,
		TotalRatings:  0,
	}
}

// IsDemo reports whether the identity is the local demo identity.
func (u *User) IsDemo() bool {
	return u != nil && u.ID == DemoUserID
}

// ProfileUpdate carries the recognized profile fields a user can change.
// Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string
	Address     *string
	PhoneNumber *string
	CI          *string
}

// IsEmpty reports whether the update carries no field at all.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Address == nil && p.PhoneNumber == nil && p.CI == nil
}

// Apply merges the present fields into u, preserving everything else.
func (p ProfileUpdate) Apply(u *User) {
	if u == nil {
		return
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.PhoneNumber != nil {
		u.PhoneNumber = *p.PhoneNumber
	}
	if p.CI != nil {
		u.CI = *p.CI
	}
}

// Participant is the public view of the other side of a conversation or a rating.
type Participant struct {
	ID           string
	Name         string
	ProfileImage string
}

// ParticipantOf builds the public view of u, applying the default display name.
func ParticipantOf(u *User) Participant {
	if u == nil {
		return Participant{Name: DefaultParticipantName}
	}

	name := u.Name
	if name == "" {
		name = DefaultParticipantName
	}

	return Participant{ID: u.ID, Name: name, ProfileImage: u.ProfileImage}
}
