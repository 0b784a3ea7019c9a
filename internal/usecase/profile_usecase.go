package usecase

import (
	"context"

	"chaski/internal/domain/entity"
)

// ProfileUsecase serves public profiles and the rating flow.
type ProfileUsecase interface {
	// PublicProfile loads another user's profile.
	PublicProfile(ctx context.Context, userID string) (*entity.User, error)

	// MyRating returns the rating the current identity gave userID, or nil.
	MyRating(ctx context.Context, userID string) (*entity.Rating, error)

	// SubmitRating creates or replaces the current identity's rating of a user and
	// returns the refreshed profile.
	SubmitRating(ctx context.Context, input *SubmitRatingInput) (*entity.User, error)
}

// SubmitRatingInput carries a score.
type SubmitRatingInput struct {
	RatedUserID string `json:"ratedUserId" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"max=1000"`
}
