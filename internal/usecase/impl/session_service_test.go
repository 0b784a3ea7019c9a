package impl

import (
	"context"
	"testing"
	"time"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	mockRepo "chaski/internal/mocks/repository"
	mockService "chaski/internal/mocks/service"
	mockUsecase "chaski/internal/mocks/usecase"
	"chaski/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// sessionServiceFixtures holds all test dependencies for session service tests.
type sessionServiceFixtures struct {
	service  usecase.SessionUsecase
	auth     *mockService.MockAuthProvider
	profiles *mockRepo.MockProfileRepository
	flags    *mockService.MockLocalFlags
	listener *mockUsecase.MockSessionListener
}

func createTestSessionService(t *testing.T, timeout time.Duration) sessionServiceFixtures {
	cfg := newTestConfig()
	cfg.Auth.LoginTimeout = timeout

	fx := sessionServiceFixtures{
		auth:     mockService.NewMockAuthProvider(t),
		profiles: mockRepo.NewMockProfileRepository(t),
		flags:    mockService.NewMockLocalFlags(t),
		listener: mockUsecase.NewMockSessionListener(t),
	}
	fx.service = NewSessionService(SessionServiceParams{
		AuthProvider: fx.auth,
		ProfileRepo:  fx.profiles,
		LocalFlags:   fx.flags,
		Config:       cfg,
		Logger:       newTestLogger(),
	})
	fx.service.AddListener(fx.listener)

	return fx
}

func newTestSession(provider entity.ProviderType, metadata map[string]string) *entity.Session {
	return &entity.Session{
		AccessToken:  "access",
		RefreshToken: "refresh",
		UserID:       uuid.NewString(),
		Email:        "ana@chaski.com",
		Provider:     provider,
		Metadata:     metadata,
		ExpiresAt:    time.Now().Add(time.Hour),
	}
}

func userWithID(id string) any {
	return mock.MatchedBy(func(u *entity.User) bool { return u != nil && u.ID == id })
}

func TestSessionService_Initialize_DemoModeDoesNoRemoteIO(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("true", true, nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(entity.DemoUserID)).Return()

	err := fx.service.Initialize(ctx)

	require.NoError(t, err)
	assert.Equal(t, usecase.StateDemo, fx.service.State())
	user := fx.service.CurrentUser()
	require.NotNil(t, user)
	assert.True(t, user.IsDemo())
	assert.Equal(t, "Usuario Demo", user.Name)
	assert.False(t, fx.service.IsLoading())
}

func TestSessionService_Initialize_NoCachedToken(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("", false, nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSessionToken).Return("", false, nil)

	require.NoError(t, fx.service.Initialize(ctx))

	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
	assert.Nil(t, fx.service.CurrentUser())
}

func TestSessionService_Initialize_RestoresProfile(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, nil)
	profile := &entity.User{ID: session.UserID, Name: "Ana", Role: entity.RoleSeller}

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("", false, nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSessionToken).Return("cached", true, nil)
	fx.auth.EXPECT().GetSession(mock.Anything, "cached").Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(profile, nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return()

	require.NoError(t, fx.service.Initialize(ctx))

	assert.Equal(t, usecase.StateAuthenticated, fx.service.State())
	user := fx.service.CurrentUser()
	require.NotNil(t, user)
	assert.Equal(t, "ana@chaski.com", user.Email)
	assert.Equal(t, entity.RoleSeller, user.Role)
}

func TestSessionService_Initialize_ExpiredSessionClearsToken(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("", false, nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSessionToken).Return("stale", true, nil)
	fx.auth.EXPECT().GetSession(mock.Anything, "stale").Return(nil, nil)
	fx.flags.EXPECT().Delete(ctx, service.FlagSessionToken).Return(nil)

	require.NoError(t, fx.service.Initialize(ctx))

	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
}

func TestSessionService_Initialize_FederatedProfileFallsBackToUpdate(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderGoogle, map[string]string{
		entity.MetadataName:    "Ana",
		entity.MetadataPicture: "https://img/ana.png",
	})
	existing := &entity.User{ID: session.UserID, Name: "Ana", ProfileImage: "https://img/ana.png", Role: entity.RoleBuyer}

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("", false, nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSessionToken).Return("cached", true, nil)
	fx.auth.EXPECT().GetSession(mock.Anything, "cached").Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrProfileNotFound).Once()
	fx.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.Name == "Ana" && u.ProfileImage == "https://img/ana.png" && u.Role == entity.RoleBuyer
	})).Return(errors.New("duplicate key"))
	fx.profiles.EXPECT().UpdateIdentity(ctx, session.UserID, "Ana", "https://img/ana.png").Return(nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(existing, nil).Once()
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return()

	require.NoError(t, fx.service.Initialize(ctx))

	assert.Equal(t, usecase.StateAuthenticated, fx.service.State())
	assert.Equal(t, "https://img/ana.png", fx.service.CurrentUser().ProfileImage)
}

func TestSessionService_Initialize_DerivationFailureForcesSignOut(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, map[string]string{entity.MetadataName: "Ana"})

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("", false, nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSessionToken).Return("cached", true, nil)
	fx.auth.EXPECT().GetSession(mock.Anything, "cached").Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrProfileNotFound)
	fx.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(errors.New("insert failed"))
	fx.flags.EXPECT().Delete(ctx, service.FlagSessionToken).Return(nil)
	fx.auth.EXPECT().SignOut(ctx, session).Return(errors.New("network down"))

	require.NoError(t, fx.service.Initialize(ctx))

	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
	assert.Nil(t, fx.service.CurrentUser())
}

func TestSessionService_Login_Success(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, nil)
	profile := &entity.User{ID: session.UserID, Name: "Ana"}

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "ana@chaski.com", "secret").Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(profile, nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return()

	err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, usecase.StateAuthenticated, fx.service.State())
}

func TestSessionService_Login_InvalidCredentials(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "ana@chaski.com", "wrong").Return(nil, domainerrors.ErrInvalidCredentials)

	err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.NotErrorIs(t, err, domainerrors.ErrAuthTimeout)
	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
}

func TestSessionService_Login_TimeoutYieldsFixedMessage(t *testing.T) {
	fx := createTestSessionService(t, 20*time.Millisecond)
	ctx := context.Background()

	release := make(chan struct{})
	t.Cleanup(func() { close(release) })

	// The provider ignores cancellation on purpose.
	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "ana@chaski.com", "secret").
		RunAndReturn(func(context.Context, string, string) (*entity.Session, error) {
			<-release

			return nil, nil
		})

	start := time.Now()
	err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"})

	require.Error(t, err)
	assert.Less(t, time.Since(start), time.Second)
	assert.ErrorIs(t, err, domainerrors.ErrAuthTimeout)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "La operación ha excedido el tiempo máximo de espera", appErr.Message())
	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
	assert.False(t, fx.service.IsLoading())
}

func TestSessionService_Register_CreatesProfileFromSignupName(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, map[string]string{entity.MetadataName: "Ana"})

	fx.auth.EXPECT().SignUp(mock.Anything, "ana@chaski.com", "secret1", map[string]string{entity.MetadataName: "Ana"}).Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(nil, repository.ErrProfileNotFound)
	fx.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
		return u.ID == session.UserID && u.Name == "Ana" && u.Role == entity.RoleBuyer
	})).Return(nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return()

	err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ana@chaski.com", Password: "secret1", Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, "Ana", fx.service.CurrentUser().Name)
}

func TestSessionService_Register_WithoutImmediateSession(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.auth.EXPECT().SignUp(mock.Anything, "ana@chaski.com", "secret1", mock.Anything).Return(nil, nil)

	err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "ana@chaski.com", Password: "secret1", Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
}

func TestSessionService_LoginWithProvider(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.auth.EXPECT().AuthorizationURL(mock.Anything, entity.ProviderGoogle).Return("https://accounts.google.com/o/oauth2/auth?state=x", nil)

	url, err := fx.service.LoginWithGoogle(ctx)
	require.NoError(t, err)
	assert.Contains(t, url, "accounts.google.com")

	_, err = fx.service.LoginWithProvider(ctx, entity.ProviderEmail)
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedProvider)
}

func TestSessionService_Logout_ResetsListenersAndFlags(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, nil)

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(&entity.User{ID: session.UserID}, nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, mock.Anything).Return()
	require.NoError(t, fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"}))

	fx.flags.EXPECT().Delete(ctx, service.FlagSkipAuth).Return(nil)
	fx.flags.EXPECT().Delete(ctx, service.FlagSessionToken).Return(nil)
	fx.auth.EXPECT().SignOut(ctx, session).Return(errors.New("offline"))
	fx.listener.EXPECT().SessionEnded(ctx).Return().Once()

	require.NoError(t, fx.service.Logout(ctx))

	assert.Equal(t, usecase.StateUnauthenticated, fx.service.State())
	assert.Nil(t, fx.service.CurrentUser())
}

func TestSessionService_UpdateUserProfile_RequiresIdentity(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	name := "Ana"

	_, err := fx.service.UpdateUserProfile(context.Background(), &usecase.UpdateProfileInput{Name: &name})

	assert.ErrorIs(t, err, domainerrors.ErrNotAuthenticated)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "No user logged in", appErr.Message())
}

func TestSessionService_UpdateUserProfile_DemoMergesLocally(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("true", true, nil)
	fx.listener.EXPECT().SessionStarted(ctx, mock.Anything).Return()
	require.NoError(t, fx.service.Initialize(ctx))

	phone := "77777777"
	updated, err := fx.service.UpdateUserProfile(ctx, &usecase.UpdateProfileInput{PhoneNumber: &phone})

	require.NoError(t, err)
	assert.Equal(t, "77777777", updated.PhoneNumber)
	assert.Equal(t, "Usuario Demo", updated.Name)
	assert.Equal(t, "Cochabamba, Bolivia", updated.Address)
	assert.Equal(t, "77777777", fx.service.CurrentUser().PhoneNumber)
}

func TestSessionService_UpdateUserProfile_WritesPresentFields(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, nil)

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, mock.Anything, mock.Anything).Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(&entity.User{ID: session.UserID, Name: "Ana", CI: "123"}, nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, mock.Anything).Return()
	require.NoError(t, fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"}))

	address := "Av. Heroínas 123"
	fx.profiles.EXPECT().Update(ctx, session.UserID, entity.ProfileUpdate{Address: &address}).Return(nil)

	updated, err := fx.service.UpdateUserProfile(ctx, &usecase.UpdateProfileInput{Address: &address})

	require.NoError(t, err)
	assert.Equal(t, address, updated.Address)
	assert.Equal(t, "Ana", updated.Name)
	assert.Equal(t, "123", updated.CI)
}

func TestSessionService_EnterDemo(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Set(ctx, service.FlagSkipAuth, "true").Return(nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("true", true, nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(entity.DemoUserID)).Return()

	require.NoError(t, fx.service.EnterDemo(ctx))

	assert.Equal(t, usecase.StateDemo, fx.service.State())
}

func TestSessionService_UpdatePassword_RejectsDemo(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("true", true, nil)
	fx.listener.EXPECT().SessionStarted(ctx, mock.Anything).Return()
	require.NoError(t, fx.service.Initialize(ctx))

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Password: "nueva123"})

	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)
}

func TestSessionService_Demo_RejectsAuthenticationUntilLogout(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()

	fx.flags.EXPECT().Set(ctx, service.FlagSkipAuth, "true").Return(nil)
	fx.flags.EXPECT().Get(ctx, service.FlagSkipAuth).Return("true", true, nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(entity.DemoUserID)).Return()
	require.NoError(t, fx.service.EnterDemo(ctx))

	err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"})
	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)

	err = fx.service.Register(ctx, &usecase.RegisterInput{Email: "ana@chaski.com", Password: "secret", Name: "Ana"})
	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)

	err = fx.service.CompleteProviderLogin(ctx, &usecase.ProviderCallbackInput{Provider: entity.ProviderGoogle, Code: "code", State: "state"})
	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)

	_, err = fx.service.LoginWithGoogle(ctx)
	assert.ErrorIs(t, err, domainerrors.ErrDemoUnsupported)

	assert.Equal(t, usecase.StateDemo, fx.service.State())
	fx.auth.AssertNotCalled(t, "SignInWithPassword", mock.Anything, mock.Anything, mock.Anything)
	fx.flags.AssertNotCalled(t, "Set", mock.Anything, service.FlagSessionToken, mock.Anything)

	// Logging out clears the skip-auth flag, after which a real login is accepted.
	session := newTestSession(entity.ProviderEmail, nil)
	fx.flags.EXPECT().Delete(ctx, service.FlagSkipAuth).Return(nil)
	fx.flags.EXPECT().Delete(ctx, service.FlagSessionToken).Return(nil)
	fx.listener.EXPECT().SessionEnded(ctx).Return()
	require.NoError(t, fx.service.Logout(ctx))

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "ana@chaski.com", "secret").Return(session, nil)
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(&entity.User{ID: session.UserID, Name: "Ana"}, nil)
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, "refresh").Return(nil)
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return()

	require.NoError(t, fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"}))
	assert.Equal(t, usecase.StateAuthenticated, fx.service.State())
}

// loginForTest establishes an email session with the given tokens.
func loginForTest(t *testing.T, fx sessionServiceFixtures, session *entity.Session) {
	t.Helper()
	ctx := context.Background()

	fx.auth.EXPECT().SignInWithPassword(mock.Anything, "ana@chaski.com", "secret").Return(session, nil).Once()
	fx.profiles.EXPECT().FindByID(ctx, session.UserID).Return(&entity.User{ID: session.UserID, Name: "Ana"}, nil).Once()
	fx.flags.EXPECT().Set(ctx, service.FlagSessionToken, session.RefreshToken).Return(nil).Once()
	fx.listener.EXPECT().SessionStarted(ctx, userWithID(session.UserID)).Return().Once()

	require.NoError(t, fx.service.Login(ctx, &usecase.LoginInput{Email: "ana@chaski.com", Password: "secret"}))
}

func withAccessToken(token string) any {
	return mock.MatchedBy(func(s *entity.Session) bool { return s != nil && s.AccessToken == token })
}

func TestSessionService_UpdatePassword_RenewsExpiredAccessToken(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderGoogle, nil)
	loginForTest(t, fx, session)

	renewed := *session
	renewed.AccessToken = "fresh"

	fx.auth.EXPECT().UpdatePassword(mock.Anything, withAccessToken("access"), "nueva123").Return(domainerrors.ErrSessionExpired).Once()
	fx.auth.EXPECT().GetSession(mock.Anything, "refresh").Return(&renewed, nil).Once()
	fx.auth.EXPECT().UpdatePassword(mock.Anything, withAccessToken("fresh"), "nueva123").Return(nil).Once()

	require.NoError(t, fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Password: "nueva123"}))

	// The renewed session is kept, so the next call goes straight through.
	fx.auth.EXPECT().UpdatePassword(mock.Anything, withAccessToken("fresh"), "otra1234").Return(nil).Once()
	require.NoError(t, fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Password: "otra1234"}))
}

func TestSessionService_UpdatePassword_RefreshTokenAlsoExpired(t *testing.T) {
	fx := createTestSessionService(t, time.Second)
	ctx := context.Background()
	session := newTestSession(entity.ProviderEmail, nil)
	loginForTest(t, fx, session)

	fx.auth.EXPECT().UpdatePassword(mock.Anything, withAccessToken("access"), "nueva123").Return(domainerrors.ErrSessionExpired).Once()
	fx.auth.EXPECT().GetSession(mock.Anything, "refresh").Return(nil, nil).Once()

	err := fx.service.UpdatePassword(ctx, &usecase.UpdatePasswordInput{Password: "nueva123"})

	assert.ErrorIs(t, err, domainerrors.ErrSessionExpired)
}
