package impl

import (
	"context"
	"log/slog"

	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/usecase"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	profiles  repository.ProfileRepository
	ratings   repository.RatingRepository
	identity  usecase.IdentityProvider
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	profiles repository.ProfileRepository,
	ratings repository.RatingRepository,
	identity usecase.IdentityProvider,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		profiles:  profiles,
		ratings:   ratings,
		identity:  identity,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// PublicProfile retrieves another user's profile.
func (srv *profileService) PublicProfile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.profiles.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}
	if user.Name == "" {
		user.Name = entity.DefaultParticipantName
	}
	// Contact fields stay private.
	user.Email = ""
	user.CI = ""
	user.PhoneNumber = ""

	return user, nil
}

func (srv *profileService) MyRating(ctx context.Context, userID string) (*entity.Rating, error) {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return nil, err
	}

	rating, err := srv.ratings.FindByRaterAndRated(ctx, actor.ID, userID)
	if err != nil {
		if errors.Is(err, repository.ErrRatingNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return rating, nil
}

// SubmitRating upserts the rating and recomputes the rated user's summary in one transaction.
func (srv *profileService) SubmitRating(ctx context.Context, input *usecase.SubmitRatingInput) (*entity.User, error) {
	actor, err := requireRemoteIdentity(srv.identity)
	if err != nil {
		return nil, err
	}
	if !entity.ValidStars(input.Rating) {
		return nil, domainerrors.ErrInvalidRating
	}
	if input.RatedUserID == actor.ID {
		return nil, domainerrors.ErrSelfRating
	}

	srv.log(ctx).Info("Submitting rating", slog.String("rated_user_id", input.RatedUserID), slog.Int("rating", input.Rating))

	var rated *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		ratingRepo := repoFactory.RatingRepo()
		profileRepo := repoFactory.ProfileRepo()

		// 1. Upsert the rating
		existing, err := ratingRepo.FindByRaterAndRated(ctx, actor.ID, input.RatedUserID)
		switch {
		case err == nil:
			existing.Rating = input.Rating
			existing.Comment = input.Comment
			if err := ratingRepo.Update(ctx, existing); err != nil {
				return errors.Wrap(err, "failed to update rating")
			}
		case errors.Is(err, repository.ErrRatingNotFound):
			rating := &entity.Rating{
				UserID:      actor.ID,
				RatedUserID: input.RatedUserID,
				Rating:      input.Rating,
				Comment:     input.Comment,
			}
			if err := ratingRepo.Create(ctx, rating); err != nil {
				return errors.Wrap(err, "failed to create rating")
			}
		default:
			return errors.Wrap(err, "failed to find rating")
		}

		// 2. Recompute the summary
		summary, err := ratingRepo.Summarize(ctx, input.RatedUserID)
		if err != nil {
			return errors.Wrap(err, "failed to summarize ratings")
		}
		if err := profileRepo.UpdateRatingSummary(ctx, input.RatedUserID, summary); err != nil {
			if errors.Is(err, repository.ErrProfileNotFound) {
				return domainerrors.ErrProfileNotFound
			}

			return errors.Wrap(err, "failed to store rating summary")
		}

		// 3. Reload the profile
		user, err := profileRepo.FindByID(ctx, input.RatedUserID)
		if err != nil {
			return errors.Wrap(err, "failed to reload profile")
		}
		rated = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to submit rating", slog.Any("error", err), slog.String("rated_user_id", input.RatedUserID))

		return nil, err
	}

	return rated, nil
}
