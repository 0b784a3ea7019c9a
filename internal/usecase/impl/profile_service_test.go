package impl

import (
	"context"
	"testing"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	mockUsecase "chaski/internal/mocks/usecase"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
	profiles  *mockRepo.MockProfileRepository
	ratings   *mockRepo.MockRatingRepository
	identity  *mockUsecase.MockIdentityProvider
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	fx := profileServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		profiles:  mockRepo.NewMockProfileRepository(t),
		ratings:   mockRepo.NewMockRatingRepository(t),
		identity:  mockUsecase.NewMockIdentityProvider(t),
	}
	fx.service = NewProfileService(fx.txManager, fx.profiles, fx.ratings, fx.identity, newTestLogger())

	return fx
}

// inTransaction runs the transaction body against a factory handing out profiles and ratings.
func (fx profileServiceFixtures) inTransaction(t *testing.T) (*mockRepo.MockProfileRepository, *mockRepo.MockRatingRepository) {
	txProfiles := mockRepo.NewMockProfileRepository(t)
	txRatings := mockRepo.NewMockRatingRepository(t)

	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().RatingRepo().Return(txRatings)
			factory.EXPECT().ProfileRepo().Return(txProfiles)

			return fn(factory)
		})

	return txProfiles, txRatings
}

func TestProfileService_PublicProfile(t *testing.T) {
	t.Run("hides contact fields", func(t *testing.T) {
		fx := createTestProfileService(t)
		ctx := context.Background()
		fx.profiles.EXPECT().FindByID(ctx, "luis").Return(&entity.User{
			ID:          "luis",
			Email:       "luis@chaski.com",
			PhoneNumber: "70000000",
			CI:          "1234567",
		}, nil)

		user, err := fx.service.PublicProfile(ctx, "luis")

		require.NoError(t, err)
		assert.Equal(t, entity.DefaultParticipantName, user.Name)
		assert.Empty(t, user.Email)
		assert.Empty(t, user.PhoneNumber)
		assert.Empty(t, user.CI)
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestProfileService(t)
		fx.profiles.EXPECT().FindByID(mock.Anything, "nadie").Return(nil, repository.ErrProfileNotFound)

		_, err := fx.service.PublicProfile(context.Background(), "nadie")

		assert.ErrorIs(t, err, domainerrors.ErrProfileNotFound)
	})
}

func TestProfileService_MyRating_NotRatedYet(t *testing.T) {
	fx := createTestProfileService(t)
	me := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(me)
	fx.ratings.EXPECT().FindByRaterAndRated(mock.Anything, me.ID, "luis").Return(nil, repository.ErrRatingNotFound)

	rating, err := fx.service.MyRating(context.Background(), "luis")

	require.NoError(t, err)
	assert.Nil(t, rating)
}

func TestProfileService_SubmitRating_CreatesAndSummarizes(t *testing.T) {
	fx := createTestProfileService(t)
	me := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(me)
	txProfiles, txRatings := fx.inTransaction(t)

	summary := entity.RatingSummary{Average: 4.5, Total: 2}
	txRatings.EXPECT().FindByRaterAndRated(mock.Anything, me.ID, "luis").Return(nil, repository.ErrRatingNotFound)
	txRatings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.UserID == me.ID && r.RatedUserID == "luis" && r.Rating == 5 && r.Comment == "Excelente"
	})).Return(nil)
	txRatings.EXPECT().Summarize(mock.Anything, "luis").Return(summary, nil)
	txProfiles.EXPECT().UpdateRatingSummary(mock.Anything, "luis", summary).Return(nil)
	txProfiles.EXPECT().FindByID(mock.Anything, "luis").Return(&entity.User{ID: "luis", AverageRating: 4.5, TotalRatings: 2}, nil)

	user, err := fx.service.SubmitRating(context.Background(), &usecase.SubmitRatingInput{
		RatedUserID: "luis",
		Rating:      5,
		Comment:     "Excelente",
	})

	require.NoError(t, err)
	assert.InDelta(t, 4.5, user.AverageRating, 0.001)
	assert.Equal(t, 2, user.TotalRatings)
}

func TestProfileService_SubmitRating_ReplacesExisting(t *testing.T) {
	fx := createTestProfileService(t)
	me := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(me)
	txProfiles, txRatings := fx.inTransaction(t)

	existing := &entity.Rating{ID: uuid.New(), UserID: me.ID, RatedUserID: "luis", Rating: 2}
	txRatings.EXPECT().FindByRaterAndRated(mock.Anything, me.ID, "luis").Return(existing, nil)
	txRatings.EXPECT().Update(mock.Anything, mock.MatchedBy(func(r *entity.Rating) bool {
		return r.ID == existing.ID && r.Rating == 4
	})).Return(nil)
	txRatings.EXPECT().Summarize(mock.Anything, "luis").Return(entity.RatingSummary{Average: 4, Total: 1}, nil)
	txProfiles.EXPECT().UpdateRatingSummary(mock.Anything, "luis", mock.Anything).Return(nil)
	txProfiles.EXPECT().FindByID(mock.Anything, "luis").Return(&entity.User{ID: "luis"}, nil)

	_, err := fx.service.SubmitRating(context.Background(), &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 4})

	require.NoError(t, err)
}

func TestProfileService_SubmitRating_Rejections(t *testing.T) {
	me := newTestUser()

	tests := []struct {
		name    string
		actor   *entity.User
		input   *usecase.SubmitRatingInput
		wantErr error
	}{
		{"anonymous", nil, &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 3}, domainerrors.ErrNotAuthenticated},
		{"demo", entity.DemoUser(), &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 3}, domainerrors.ErrDemoUnsupported},
		{"zero stars", me, &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 0}, domainerrors.ErrInvalidRating},
		{"six stars", me, &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 6}, domainerrors.ErrInvalidRating},
		{"self", me, &usecase.SubmitRatingInput{RatedUserID: me.ID, Rating: 5}, domainerrors.ErrSelfRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProfileService(t)
			fx.identity.EXPECT().CurrentUser().Return(tt.actor)

			_, err := fx.service.SubmitRating(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProfileService_SubmitRating_TransactionError(t *testing.T) {
	fx := createTestProfileService(t)
	me := newTestUser()
	fx.identity.EXPECT().CurrentUser().Return(me)
	_, txRatings := fx.inTransaction(t)

	txRatings.EXPECT().FindByRaterAndRated(mock.Anything, me.ID, "luis").Return(nil, errors.New("deadlock"))

	_, err := fx.service.SubmitRating(context.Background(), &usecase.SubmitRatingInput{RatedUserID: "luis", Rating: 5})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "deadlock")
}
