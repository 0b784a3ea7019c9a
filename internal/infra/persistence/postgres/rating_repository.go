package postgres

import (
	"context"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// ratingRepository implements the repository.RatingRepository interface.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository is the constructor for ratingRepository.
func NewRatingRepository(db *gorm.DB) repository.RatingRepository {
	return &ratingRepository{db: db}
}

func (repo *ratingRepository) FindByRaterAndRated(ctx context.Context, userID, ratedUserID string) (*entity.Rating, error) {
	var ratingM model.RatingModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ? AND rated_user_id = ?", userID, ratedUserID).
		First(&ratingM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRatingNotFound
		}

		return nil, errors.Wrap(err, "failed to find rating")
	}

	return toRatingDomain(&ratingM), nil
}

func (repo *ratingRepository) Create(ctx context.Context, rating *entity.Rating) error {
	ratingM := fromRatingDomain(rating)

	if err := repo.db.WithContext(ctx).Create(ratingM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("rating already exists")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create rating")
	}

	rating.ID = ratingM.ID
	rating.CreatedAt = ratingM.CreatedAt
	rating.UpdatedAt = ratingM.UpdatedAt

	return nil
}

func (repo *ratingRepository) Update(ctx context.Context, rating *entity.Rating) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Where("id = ?", rating.ID).
		Updates(map[string]any{"rating": rating.Rating, "comment": rating.Comment})
	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrInvalidRating
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update rating")
	}
	if result.RowsAffected == 0 {
		return repository.ErrRatingNotFound
	}

	return nil
}

// Summarize aggregates every rating received by ratedUserID.
func (repo *ratingRepository) Summarize(ctx context.Context, ratedUserID string) (entity.RatingSummary, error) {
	var row struct {
		Average float64
		Total   int
	}
	err := repo.db.WithContext(ctx).
		Model(&model.RatingModel{}).
		Select("COALESCE(AVG(rating), 0) AS average, COUNT(*) AS total").
		Where("rated_user_id = ?", ratedUserID).
		Scan(&row).Error
	if err != nil {
		return entity.RatingSummary{}, errors.Wrap(err, "failed to summarize ratings")
	}

	return entity.RatingSummary{Average: row.Average, Total: row.Total}, nil
}

func toRatingDomain(data *model.RatingModel) *entity.Rating {
	return &entity.Rating{
		ID:          data.ID,
		UserID:      data.UserID,
		RatedUserID: data.RatedUserID,
		Rating:      data.Rating,
		Comment:     data.Comment,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromRatingDomain(data *entity.Rating) *model.RatingModel {
	return &model.RatingModel{
		ID:          data.ID,
		UserID:      data.UserID,
		RatedUserID: data.RatedUserID,
		Rating:      data.Rating,
		Comment:     data.Comment,
	}
}
