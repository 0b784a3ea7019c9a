package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	MinRatingStars = 1
	MaxRatingStars = 5
)

// Rating is one user's score for another user.
type Rating struct {
	ID          uuid.UUID
	UserID      string // Who rated.
	RatedUserID string // Who was rated.
	Rating      int
	Comment     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidStars reports whether stars is inside the accepted range.
func ValidStars(stars int) bool {
	return stars >= MinRatingStars && stars <= MaxRatingStars
}

// RatingSummary is the aggregate stored on a profile row.
type RatingSummary struct {
	Average float64
	Total   int
}
