package auth

import (
	"context"
	"io"
	"log/slog"
	"net/url"
	"testing"
	"time"

	"chaski/config"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	mockRepo "chaski/internal/mocks/repository"
	mockService "chaski/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type authProviderFixtures struct {
	provider      service.AuthProvider
	txManager     *mockRepo.MockTransactionManager
	accounts      *mockRepo.MockAccountRepository
	auths         *mockRepo.MockAuthRepository
	refreshTokens *mockRepo.MockRefreshTokenRepository
	google        *mockService.MockOAuthService
	hasher        service.PasswordHasher
	tokens        service.TokenService
}

func createTestAuthProvider(t *testing.T) authProviderFixtures {
	tokens, err := NewJWTService(newTestJWTConfig())
	require.NoError(t, err)

	fx := authProviderFixtures{
		txManager:     mockRepo.NewMockTransactionManager(t),
		accounts:      mockRepo.NewMockAccountRepository(t),
		auths:         mockRepo.NewMockAuthRepository(t),
		refreshTokens: mockRepo.NewMockRefreshTokenRepository(t),
		google:        mockService.NewMockOAuthService(t),
		hasher:        NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}}),
		tokens:        tokens,
	}
	fx.google.EXPECT().GetProvider().Return(entity.ProviderGoogle)

	fx.provider = NewAuthProvider(AuthProviderParams{
		TxManager:        fx.txManager,
		AccountRepo:      fx.accounts,
		AuthRepo:         fx.auths,
		RefreshTokenRepo: fx.refreshTokens,
		Hasher:           fx.hasher,
		TokenService:     fx.tokens,
		OAuthServices:    []service.OAuthService{fx.google},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return fx
}

// inTransaction runs the callback against the fixture repositories.
func (fx authProviderFixtures) inTransaction(t *testing.T) {
	fx.txManager.EXPECT().Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			factory.EXPECT().AccountRepo().Return(fx.accounts).Maybe()
			factory.EXPECT().AuthRepo().Return(fx.auths).Maybe()

			return fn(factory)
		}).Once()
}

func (fx authProviderFixtures) expectRefreshStored() {
	fx.refreshTokens.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.RefreshToken")).Return(nil).Once()
	fx.refreshTokens.EXPECT().DeleteExpired(mock.Anything, mock.Anything, mock.AnythingOfType("time.Time")).Return(0, nil).Once()
}

func TestAuthProvider_SignInWithPassword(t *testing.T) {
	fx := createTestAuthProvider(t)
	hash, err := fx.hasher.Hash("secreto1")
	require.NoError(t, err)

	account := &entity.Account{ID: uuid.New(), Email: "ana@chaski.com", Metadata: map[string]string{entity.MetadataName: "Ana"}}
	fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ana@chaski.com").
		Return(&entity.Authentication{UserID: account.ID, PasswordHash: hash}, nil)
	fx.accounts.EXPECT().FindAccountByID(mock.Anything, account.ID).Return(account, nil)
	fx.expectRefreshStored()

	session, err := fx.provider.SignInWithPassword(context.Background(), "  Ana@Chaski.com ", "secreto1")

	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), session.UserID)
	assert.Equal(t, entity.ProviderEmail, session.Provider)
	assert.Equal(t, "Ana", session.MetadataValue(entity.MetadataName))
	assert.False(t, session.IsExpired(time.Now()))

	_, err = fx.tokens.ValidateToken(session.RefreshToken, service.TokenTypeRefresh)
	assert.NoError(t, err)
}

func TestAuthProvider_SignInWithPassword_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestAuthProvider(t)
		fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "luis@chaski.com").Return(nil, repository.ErrAuthNotFound)

		_, err := fx.provider.SignInWithPassword(context.Background(), "luis@chaski.com", "secreto1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthProvider(t)
		hash, err := fx.hasher.Hash("secreto1")
		require.NoError(t, err)
		fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ana@chaski.com").
			Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: hash}, nil)

		_, err = fx.provider.SignInWithPassword(context.Background(), "ana@chaski.com", "otra-clave")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
		fx.accounts.AssertNotCalled(t, "FindAccountByID", mock.Anything, mock.Anything)
	})
}

func TestAuthProvider_SignUp(t *testing.T) {
	fx := createTestAuthProvider(t)
	accountID := uuid.New()
	metadata := map[string]string{entity.MetadataName: "Ana Quispe"}

	fx.inTransaction(t)
	fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ana@chaski.com").Return(nil, repository.ErrAuthNotFound)
	fx.accounts.EXPECT().CreateAccount(mock.Anything, &entity.Account{Email: "ana@chaski.com", Metadata: metadata}).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			account.ID = accountID

			return nil
		})
	fx.auths.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.UserID == accountID && auth.Provider == entity.ProviderEmail && fx.hasher.Check("secreto1", auth.PasswordHash)
	})).Return(nil)
	fx.expectRefreshStored()

	session, err := fx.provider.SignUp(context.Background(), "ana@chaski.com", "secreto1", metadata)

	require.NoError(t, err)
	assert.Equal(t, accountID.String(), session.UserID)
	assert.Equal(t, "Ana Quispe", session.MetadataValue(entity.MetadataName))
}

func TestAuthProvider_SignUp_Duplicate(t *testing.T) {
	fx := createTestAuthProvider(t)

	fx.inTransaction(t)
	fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderEmail, "ana@chaski.com").Return(&entity.Authentication{}, nil)

	_, err := fx.provider.SignUp(context.Background(), "ana@chaski.com", "secreto1", nil)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	fx.refreshTokens.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuthProvider_ProviderRoundTrip(t *testing.T) {
	fx := createTestAuthProvider(t)
	ctx := context.Background()

	var issued string
	fx.google.EXPECT().AuthCodeURL(mock.Anything).RunAndReturn(func(state string) string {
		issued = state

		return "https://accounts.google.com/o/oauth2/auth?state=" + url.QueryEscape(state)
	})

	redirect, err := fx.provider.AuthorizationURL(ctx, entity.ProviderGoogle)
	require.NoError(t, err)
	assert.Contains(t, redirect, issued)

	_, err = fx.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", "forged")
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)

	accountID := uuid.New()
	oauthUser := &service.OAuthUser{ID: "g-123", Email: "ana@gmail.com", Name: "Ana", Provider: entity.ProviderGoogle, EmailVerified: true}
	fx.google.EXPECT().Exchange(mock.Anything, "code").Return(oauthUser, nil).Once()
	fx.inTransaction(t)
	fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderGoogle, "g-123").Return(&entity.Authentication{UserID: accountID}, nil)
	fx.accounts.EXPECT().UpdateAccountMetadata(mock.Anything, accountID, oauthUser.Metadata()).Return(nil)
	fx.accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(&entity.Account{ID: accountID, Metadata: oauthUser.Metadata()}, nil)
	fx.expectRefreshStored()

	session, err := fx.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", issued)
	require.NoError(t, err)
	assert.Equal(t, entity.ProviderGoogle, session.Provider)
	assert.Equal(t, "Ana", session.MetadataValue(entity.MetadataFullName))

	_, err = fx.provider.ExchangeCode(ctx, entity.ProviderGoogle, "code", issued)
	assert.ErrorIs(t, err, domainerrors.ErrOAuthStateInvalid)
}

func TestAuthProvider_ExchangeCode_CreatesAccount(t *testing.T) {
	fx := createTestAuthProvider(t)
	fx.google.EXPECT().AuthCodeURL(mock.Anything).Return("https://accounts.google.com")
	state := issueState(t, fx)

	accountID := uuid.New()
	oauthUser := &service.OAuthUser{ID: "g-9", Email: "Luis@Gmail.com", Provider: entity.ProviderGoogle, EmailVerified: true}
	fx.google.EXPECT().Exchange(mock.Anything, "code").Return(oauthUser, nil)
	fx.inTransaction(t)
	fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderGoogle, "g-9").Return(nil, repository.ErrAuthNotFound)
	fx.accounts.EXPECT().FindAccountByEmail(mock.Anything, "luis@gmail.com").Return(nil, repository.ErrAccountNotFound)
	fx.accounts.EXPECT().CreateAccount(mock.Anything, mock.AnythingOfType("*entity.Account")).
		RunAndReturn(func(_ context.Context, account *entity.Account) error {
			account.ID = accountID

			return nil
		})
	fx.auths.EXPECT().CreateAuthentication(mock.Anything, &entity.Authentication{
		UserID:         accountID,
		Provider:       entity.ProviderGoogle,
		ProviderUserID: "g-9",
	}).Return(nil)
	fx.expectRefreshStored()

	session, err := fx.provider.ExchangeCode(context.Background(), entity.ProviderGoogle, "code", state)

	require.NoError(t, err)
	assert.Equal(t, "luis@gmail.com", session.Email)
}

func TestAuthProvider_ExchangeCode_Rejections(t *testing.T) {
	t.Run("unsupported provider", func(t *testing.T) {
		fx := createTestAuthProvider(t)

		_, err := fx.provider.AuthorizationURL(context.Background(), entity.ProviderApple)
		assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
	})

	t.Run("unverified email on existing account", func(t *testing.T) {
		fx := createTestAuthProvider(t)
		fx.google.EXPECT().AuthCodeURL(mock.Anything).Return("https://accounts.google.com")
		state := issueState(t, fx)

		fx.google.EXPECT().Exchange(mock.Anything, "code").
			Return(&service.OAuthUser{ID: "g-1", Email: "ana@chaski.com", Provider: entity.ProviderGoogle}, nil)
		fx.inTransaction(t)
		fx.auths.EXPECT().FindAuthentication(mock.Anything, entity.ProviderGoogle, "g-1").Return(nil, repository.ErrAuthNotFound)
		fx.accounts.EXPECT().FindAccountByEmail(mock.Anything, "ana@chaski.com").Return(&entity.Account{ID: uuid.New()}, nil)

		_, err := fx.provider.ExchangeCode(context.Background(), entity.ProviderGoogle, "code", state)
		assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	})
}

func issueState(t *testing.T, fx authProviderFixtures) string {
	t.Helper()

	store := fx.provider.(*backendAuthProvider).states
	_, err := fx.provider.AuthorizationURL(context.Background(), entity.ProviderGoogle)
	require.NoError(t, err)
	require.Len(t, store.states, 1)
	for state := range store.states {
		return state
	}

	return ""
}

func TestAuthProvider_GetSession(t *testing.T) {
	fx := createTestAuthProvider(t)
	ctx := context.Background()
	accountID := uuid.New()

	_, refreshToken, err := fx.tokens.GenerateTokens(accountID, entity.ProviderApple)
	require.NoError(t, err)

	t.Run("restores", func(t *testing.T) {
		fx.refreshTokens.EXPECT().FindByHash(mock.Anything, fx.tokens.HashToken(refreshToken)).
			Return(&entity.RefreshToken{UserID: accountID, Provider: entity.ProviderApple, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()
		fx.accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(&entity.Account{ID: accountID}, nil).Once()

		session, err := fx.provider.GetSession(ctx, refreshToken)
		require.NoError(t, err)
		require.NotNil(t, session)
		assert.Equal(t, refreshToken, session.RefreshToken)
		assert.Equal(t, entity.ProviderApple, session.Provider)
	})

	t.Run("revoked", func(t *testing.T) {
		fx.refreshTokens.EXPECT().FindByHash(mock.Anything, mock.Anything).Return(nil, repository.ErrRefreshTokenNotFound).Once()

		session, err := fx.provider.GetSession(ctx, refreshToken)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("expired row", func(t *testing.T) {
		fx.refreshTokens.EXPECT().FindByHash(mock.Anything, mock.Anything).
			Return(&entity.RefreshToken{UserID: accountID, ExpiresAt: time.Now().Add(-time.Minute)}, nil).Once()

		session, err := fx.provider.GetSession(ctx, refreshToken)
		require.NoError(t, err)
		assert.Nil(t, session)
	})

	t.Run("garbage token", func(t *testing.T) {
		session, err := fx.provider.GetSession(ctx, "not-a-jwt")
		require.NoError(t, err)
		assert.Nil(t, session)
	})
}

func TestAuthProvider_SignOut(t *testing.T) {
	fx := createTestAuthProvider(t)

	fx.refreshTokens.EXPECT().DeleteByHash(mock.Anything, fx.tokens.HashToken("refresh")).Return(repository.ErrRefreshTokenNotFound)

	assert.NoError(t, fx.provider.SignOut(context.Background(), &entity.Session{RefreshToken: "refresh"}))
	assert.NoError(t, fx.provider.SignOut(context.Background(), nil))
}

func TestAuthProvider_UpdatePassword_AddsEmailCredential(t *testing.T) {
	fx := createTestAuthProvider(t)
	accountID := uuid.New()

	accessToken, _, err := fx.tokens.GenerateTokens(accountID, entity.ProviderGoogle)
	require.NoError(t, err)

	fx.inTransaction(t)
	fx.auths.EXPECT().FindAuthenticationByUserIDAndProvider(mock.Anything, accountID, entity.ProviderEmail).Return(nil, repository.ErrAuthNotFound)
	fx.accounts.EXPECT().FindAccountByID(mock.Anything, accountID).Return(&entity.Account{ID: accountID, Email: "ana@gmail.com"}, nil)
	fx.auths.EXPECT().CreateAuthentication(mock.Anything, mock.MatchedBy(func(auth *entity.Authentication) bool {
		return auth.ProviderUserID == "ana@gmail.com" && fx.hasher.Check("nueva-clave", auth.PasswordHash)
	})).Return(nil)

	err = fx.provider.UpdatePassword(context.Background(), &entity.Session{AccessToken: accessToken}, "nueva-clave")

	require.NoError(t, err)
}

func TestAuthProvider_UpdatePassword_ExpiredSession(t *testing.T) {
	fx := createTestAuthProvider(t)

	err := fx.provider.UpdatePassword(context.Background(), &entity.Session{AccessToken: "stale"}, "nueva-clave")

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}

func TestStateStore_Expiry(t *testing.T) {
	store := newStateStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	state, err := store.issue(entity.ProviderGoogle)
	require.NoError(t, err)
	assert.False(t, store.consume(entity.ProviderApple, state))

	state, err = store.issue(entity.ProviderGoogle)
	require.NoError(t, err)
	now = now.Add(oauthStateTTL + time.Second)
	assert.False(t, store.consume(entity.ProviderGoogle, state))
}
