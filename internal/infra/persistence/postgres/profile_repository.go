package postgres

import (
	"context"
	"math"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	"chaski/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// profileRepository implements the repository.ProfileRepository interface.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

func (repo *profileRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var profileM model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&profileM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toProfileDomain(&profileM), nil
}

func (repo *profileRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}

	var profileModels []model.ProfileModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Find(&profileModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find profiles")
	}

	users := make([]*entity.User, 0, len(profileModels))
	for i := range profileModels {
		users = append(users, toProfileDomain(&profileModels[i]))
	}

	return users, nil
}

// Create inserts a new profile row. A duplicate ID is reported as a conflict.
func (repo *profileRepository) Create(ctx context.Context, user *entity.User) error {
	profileM := fromProfileDomain(user)

	if err := repo.db.WithContext(ctx).Create(profileM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("profile already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrProfileCreationFailed.WrapMessage("missing required profile information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	user.CreatedAt = profileM.CreatedAt
	user.UpdatedAt = profileM.UpdatedAt

	return nil
}

// Update writes the present fields of update and bumps updated_at.
func (repo *profileRepository) Update(ctx context.Context, id string, update entity.ProfileUpdate) error {
	columns := map[string]any{}
	if update.Name != nil {
		columns["name"] = *update.Name
	}
	if update.Address != nil {
		columns["address"] = *update.Address
	}
	if update.PhoneNumber != nil {
		columns["phone_number"] = *update.PhoneNumber
	}
	if update.CI != nil {
		columns["ci"] = *update.CI
	}
	if len(columns) == 0 {
		return nil
	}

	return repo.updateColumns(ctx, id, columns)
}

func (repo *profileRepository) UpdateIdentity(ctx context.Context, id, name, profileImage string) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"name":          name,
		"profile_image": profileImage,
	})
}

func (repo *profileRepository) UpdateRatingSummary(ctx context.Context, id string, summary entity.RatingSummary) error {
	return repo.updateColumns(ctx, id, map[string]any{
		"average_rating": math.Round(summary.Average*100) / 100,
		"total_ratings":  summary.Total,
	})
}

// updateColumns updates the named columns; gorm bumps updated_at on map updates.
func (repo *profileRepository) updateColumns(ctx context.Context, id string, columns map[string]any) error {
	result := repo.db.WithContext(ctx).Model(&model.ProfileModel{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProfileDomain(data *model.ProfileModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Role:          entity.RoleOrDefault(data.Role),
		ProfileImage:  data.ProfileImage,
		CI:            data.CI,
		Address:       data.Address,
		PhoneNumber:   data.PhoneNumber,
		AverageRating: data.AverageRating,
		TotalRatings:  data.TotalRatings,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromProfileDomain(data *entity.User) *model.ProfileModel {
	if data == nil {
		return nil
	}

	role := data.Role
	if !role.IsValid() {
		role = entity.RoleBuyer
	}

	return &model.ProfileModel{
		ID:            data.ID,
		Name:          data.Name,
		Email:         data.Email,
		Role:          role.String(),
		ProfileImage:  data.ProfileImage,
		CI:            data.CI,
		Address:       data.Address,
		PhoneNumber:   data.PhoneNumber,
		AverageRating: data.AverageRating,
		TotalRatings:  data.TotalRatings,
	}
}
