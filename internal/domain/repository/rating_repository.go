package repository

import (
	"context"
	"errors"

	"chaski/internal/domain/entity"
)

// ErrRatingNotFound is returned when the rater has not rated the user yet.
var ErrRatingNotFound = errors.New("rating not found")

// RatingRepository is the row boundary of the 'ratings' collection.
type RatingRepository interface {
	// FindByRaterAndRated retrieves the rating userID gave ratedUserID.
	FindByRaterAndRated(ctx context.Context, userID, ratedUserID string) (*entity.Rating, error)

	// Create inserts a rating.
	Create(ctx context.Context, rating *entity.Rating) error

	// Update overwrites the score and comment of an existing rating.
	Update(ctx context.Context, rating *entity.Rating) error

	// Summarize aggregates every rating received by ratedUserID.
	Summarize(ctx context.Context, ratedUserID string) (entity.RatingSummary, error)
}
