// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"chaski/config"
	deliverycontext "chaski/internal/delivery/context"
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"
	"chaski/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements the SessionUsecase interface.
// Operations are serialized by opMu; mu only guards the fields read by accessors.
type sessionService struct {
	auth     service.AuthProvider
	profiles repository.ProfileRepository
	flags    service.LocalFlags
	timeout  time.Duration
	logger   *slog.Logger

	opMu sync.Mutex

	mu        sync.RWMutex
	state     usecase.SessionState
	user      *entity.User
	session   *entity.Session
	loading   bool
	listeners []usecase.SessionListener
}

// SessionServiceParams holds dependencies for SessionService, injected by Fx.
type SessionServiceParams struct {
	fx.In

	AuthProvider service.AuthProvider
	ProfileRepo  repository.ProfileRepository
	LocalFlags   service.LocalFlags
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(params SessionServiceParams) usecase.SessionUsecase {
	timeout := 10 * time.Second
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.LoginTimeout > 0 {
		timeout = params.Config.Auth.LoginTimeout
	}

	return &sessionService{
		auth:     params.AuthProvider,
		profiles: params.ProfileRepo,
		flags:    params.LocalFlags,
		timeout:  timeout,
		logger:   params.Logger,
		state:    usecase.StateUnauthenticated,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// withAuthTimeout bounds fn by timeout. The result is abandoned when the deadline
// passes first, even if fn ignores cancellation.
func withAuthTimeout[T any](ctx context.Context, timeout time.Duration, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		val T
		err error
	}
	done := make(chan result, 1)
	go func() {
		val, err := fn(ctx)
		done <- result{val: val, err: err}
	}()

	var zero T
	select {
	case res := <-done:
		if res.err != nil && errors.Is(res.err, context.DeadlineExceeded) {
			return zero, domainerrors.ErrAuthTimeout
		}

		return res.val, res.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return zero, domainerrors.ErrAuthTimeout
		}

		return zero, errors.WithStack(ctx.Err())
	}
}

// Initialize restores the demo identity or the cached session.
func (srv *sessionService) Initialize(ctx context.Context) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	return srv.initializeLocked(ctx)
}

func (srv *sessionService) initializeLocked(ctx context.Context) error {
	srv.setLoading(true)
	defer srv.setLoading(false)

	skip, _, err := srv.flags.Get(ctx, service.FlagSkipAuth)
	if err != nil {
		return errors.Wrap(err, "failed to read skip auth flag")
	}
	if skip == "true" {
		srv.log(ctx).Info("Skip auth flag set, entering demo mode")
		srv.install(ctx, entity.DemoUser(), nil, usecase.StateDemo)

		return nil
	}

	token, ok, err := srv.flags.Get(ctx, service.FlagSessionToken)
	if err != nil {
		return errors.Wrap(err, "failed to read cached session token")
	}
	if !ok || token == "" {
		srv.setState(usecase.StateUnauthenticated)

		return nil
	}

	srv.setState(usecase.StateAuthenticating)

	session, err := withAuthTimeout(ctx, srv.timeout, func(ctx context.Context) (*entity.Session, error) {
		return srv.auth.GetSession(ctx, token)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to restore cached session", slog.Any("error", err))
		srv.setState(usecase.StateUnauthenticated)

		return nil
	}
	if session == nil {
		srv.log(ctx).Info("Cached session is no longer valid")
		srv.deleteFlag(ctx, service.FlagSessionToken)
		srv.setState(usecase.StateUnauthenticated)

		return nil
	}

	// Derivation failures already forced a sign-out; initialization itself succeeded.
	if err := srv.establish(ctx, session); err != nil {
		srv.log(ctx).Warn("Restored session discarded", slog.Any("error", err))
	}

	return nil
}

// EnterDemo persists the skip-auth flag and re-initializes.
func (srv *sessionService) EnterDemo(ctx context.Context) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	if err := srv.flags.Set(ctx, service.FlagSkipAuth, "true"); err != nil {
		return errors.Wrap(err, "failed to persist skip auth flag")
	}

	return srv.initializeLocked(ctx)
}

// Login exchanges email credentials for a session.
func (srv *sessionService) Login(ctx context.Context, input *usecase.LoginInput) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.log(ctx).Info("Logging in", slog.String("email", input.Email))

	return srv.authenticate(ctx, func(ctx context.Context) (*entity.Session, error) {
		return srv.auth.SignInWithPassword(ctx, input.Email, input.Password)
	})
}

// LoginWithGoogle returns the Google authorization redirect.
func (srv *sessionService) LoginWithGoogle(ctx context.Context) (string, error) {
	return srv.LoginWithProvider(ctx, entity.ProviderGoogle)
}

// LoginWithApple returns the Apple authorization redirect.
func (srv *sessionService) LoginWithApple(ctx context.Context) (string, error) {
	return srv.LoginWithProvider(ctx, entity.ProviderApple)
}

// LoginWithProvider returns the authorization redirect of a federated provider.
func (srv *sessionService) LoginWithProvider(ctx context.Context, provider entity.ProviderType) (string, error) {
	if !provider.IsFederated() {
		return "", errors.Wrapf(domainerrors.ErrUnsupportedProvider, "provider %q", provider)
	}

	if srv.State() == usecase.StateDemo {
		return "", domainerrors.ErrDemoUnsupported
	}

	srv.setLoading(true)
	defer srv.setLoading(false)

	url, err := withAuthTimeout(ctx, srv.timeout, func(ctx context.Context) (string, error) {
		return srv.auth.AuthorizationURL(ctx, provider)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to start provider login", slog.Any("error", err), slog.String("provider", string(provider)))

		return "", err
	}

	return url, nil
}

// CompleteProviderLogin finishes a provider redirect.
func (srv *sessionService) CompleteProviderLogin(ctx context.Context, input *usecase.ProviderCallbackInput) error {
	if !input.Provider.IsFederated() {
		return errors.Wrapf(domainerrors.ErrUnsupportedProvider, "provider %q", input.Provider)
	}

	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	return srv.authenticate(ctx, func(ctx context.Context) (*entity.Session, error) {
		return srv.auth.ExchangeCode(ctx, input.Provider, input.Code, input.State)
	})
}

// Register creates the remote account. The profile row is created once a session exists.
func (srv *sessionService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.log(ctx).Info("Registering account", slog.String("email", input.Email))

	metadata := map[string]string{entity.MetadataName: input.Name}

	return srv.authenticate(ctx, func(ctx context.Context) (*entity.Session, error) {
		return srv.auth.SignUp(ctx, input.Email, input.Password, metadata)
	})
}

// authenticate runs a bounded auth call and establishes the session it yields.
// A nil session leaves the manager unauthenticated without error. The demo identity
// must log out first, so the skip-auth flag never outlives a real session.
func (srv *sessionService) authenticate(ctx context.Context, call func(context.Context) (*entity.Session, error)) error {
	if srv.State() == usecase.StateDemo {
		return domainerrors.ErrDemoUnsupported
	}

	srv.setLoading(true)
	defer srv.setLoading(false)

	previous := srv.State()
	srv.setState(usecase.StateAuthenticating)

	session, err := withAuthTimeout(ctx, srv.timeout, call)
	if err != nil {
		srv.setState(previous)
		srv.log(ctx).Error("Authentication failed", slog.Any("error", err))

		return err
	}
	if session == nil {
		srv.setState(previous)

		return nil
	}

	return srv.establish(ctx, session)
}

// establish derives the identity of session and installs it. On failure the
// session is signed out so no half-initialized identity remains.
func (srv *sessionService) establish(ctx context.Context, session *entity.Session) error {
	user, err := srv.deriveIdentity(ctx, session)
	if err != nil {
		srv.log(ctx).Error("Failed to derive identity, signing out",
			slog.Any("error", err),
			slog.String("user_id", session.UserID),
			slog.String("provider", string(session.Provider)),
		)
		srv.forceSignOut(ctx, session)

		return errors.Wrap(domainerrors.ErrProfileCreationFailed, err.Error())
	}

	if session.RefreshToken != "" {
		if err := srv.flags.Set(ctx, service.FlagSessionToken, session.RefreshToken); err != nil {
			srv.log(ctx).Warn("Failed to cache session token", slog.Any("error", err))
		}
	}

	srv.install(ctx, user, session, usecase.StateAuthenticated)
	srv.log(ctx).Info("Session established", slog.String("user_id", user.ID), slog.String("provider", string(session.Provider)))

	return nil
}

func (srv *sessionService) deriveIdentity(ctx context.Context, session *entity.Session) (*entity.User, error) {
	profile, err := srv.profiles.FindByID(ctx, session.UserID)
	if err == nil {
		profile.Email = session.Email

		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	user := &entity.User{
		ID:    session.UserID,
		Email: session.Email,
		Role:  entity.RoleBuyer,
	}

	if !session.Provider.IsFederated() {
		user.Name = session.MetadataValue(entity.MetadataName)
		if err := srv.profiles.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create profile")
		}

		return user, nil
	}

	user.Name = session.MetadataValue(entity.MetadataFullName, entity.MetadataName)
	user.ProfileImage = session.MetadataValue(entity.MetadataAvatarURL, entity.MetadataPicture)

	if err := srv.profiles.Create(ctx, user); err != nil {
		srv.log(ctx).Warn("Profile creation failed, updating the existing row", slog.Any("error", err), slog.String("user_id", user.ID))

		if err := srv.profiles.UpdateIdentity(ctx, user.ID, user.Name, user.ProfileImage); err != nil {
			return nil, errors.Wrap(err, "failed to update profile identity")
		}

		refetched, err := srv.profiles.FindByID(ctx, user.ID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to reload profile")
		}
		refetched.Email = session.Email

		return refetched, nil
	}

	return user, nil
}

// forceSignOut drops a session that could not be turned into an identity.
func (srv *sessionService) forceSignOut(ctx context.Context, session *entity.Session) {
	srv.deleteFlag(ctx, service.FlagSessionToken)

	if err := srv.auth.SignOut(ctx, session); err != nil {
		srv.log(ctx).Warn("Remote sign-out failed", slog.Any("error", err))
	}

	srv.mu.Lock()
	hadIdentity := srv.user != nil
	srv.user = nil
	srv.session = nil
	srv.state = usecase.StateUnauthenticated
	srv.mu.Unlock()

	if hadIdentity {
		srv.notifyEnded(ctx)
	}
}

// Logout clears the identity and resets every listener.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.mu.Lock()
	session := srv.session
	hadIdentity := srv.user != nil
	srv.user = nil
	srv.session = nil
	srv.state = usecase.StateUnauthenticated
	srv.mu.Unlock()

	srv.deleteFlag(ctx, service.FlagSkipAuth)
	srv.deleteFlag(ctx, service.FlagSessionToken)

	if session != nil {
		if err := srv.auth.SignOut(ctx, session); err != nil {
			srv.log(ctx).Warn("Remote sign-out failed, local session cleared anyway", slog.Any("error", err))
		}
	}

	if hadIdentity {
		srv.notifyEnded(ctx)
	}
	srv.log(ctx).Info("Logged out")

	return nil
}

// UpdateUserProfile writes the present fields and merges them into the identity.
func (srv *sessionService) UpdateUserProfile(ctx context.Context, input *usecase.UpdateProfileInput) (*entity.User, error) {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	current := srv.CurrentUser()
	if current == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}

	update := input.ToEntity()
	if !current.IsDemo() && !update.IsEmpty() {
		if err := srv.profiles.Update(ctx, current.ID, update); err != nil {
			srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.String("user_id", current.ID))

			return nil, errors.Wrap(domainerrors.ErrProfileUpdateFailed, err.Error())
		}
	}

	srv.mu.Lock()
	defer srv.mu.Unlock()
	if srv.user == nil || srv.user.ID != current.ID {
		return nil, domainerrors.ErrNotAuthenticated
	}
	update.Apply(srv.user)
	updated := *srv.user

	return &updated, nil
}

// UpdatePassword sets a password credential on the current account.
func (srv *sessionService) UpdatePassword(ctx context.Context, input *usecase.UpdatePasswordInput) error {
	srv.opMu.Lock()
	defer srv.opMu.Unlock()

	srv.mu.RLock()
	session, state := srv.session, srv.state
	srv.mu.RUnlock()

	if state == usecase.StateDemo {
		return domainerrors.ErrDemoUnsupported
	}
	if session == nil {
		return domainerrors.ErrNotAuthenticated
	}

	err := srv.updatePassword(ctx, session, input.Password)
	if errors.Is(err, domainerrors.ErrSessionExpired) && session.RefreshToken != "" {
		srv.log(ctx).Info("Access token expired, renewing session")

		renewed, renewErr := srv.renewSession(ctx, session)
		if renewErr != nil {
			srv.log(ctx).Error("Failed to renew session", slog.Any("error", renewErr))

			return renewErr
		}
		err = srv.updatePassword(ctx, renewed, input.Password)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to update password", slog.Any("error", err))

		return err
	}

	return nil
}

func (srv *sessionService) updatePassword(ctx context.Context, session *entity.Session, password string) error {
	_, err := withAuthTimeout(ctx, srv.timeout, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, srv.auth.UpdatePassword(ctx, session, password)
	})

	return err
}

// renewSession re-issues the access token of session from its refresh token and
// keeps the result when session is still the current one.
func (srv *sessionService) renewSession(ctx context.Context, session *entity.Session) (*entity.Session, error) {
	renewed, err := withAuthTimeout(ctx, srv.timeout, func(ctx context.Context) (*entity.Session, error) {
		return srv.auth.GetSession(ctx, session.RefreshToken)
	})
	if err != nil {
		return nil, err
	}
	if renewed == nil {
		return nil, domainerrors.ErrSessionExpired
	}

	srv.mu.Lock()
	if srv.session == session {
		srv.session = renewed
	}
	srv.mu.Unlock()

	return renewed, nil
}

// CurrentUser returns a copy of the current identity.
func (srv *sessionService) CurrentUser() *entity.User {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if srv.user == nil {
		return nil
	}
	user := *srv.user

	return &user
}

// IsLoading reports whether an initialization or login is in flight.
func (srv *sessionService) IsLoading() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.loading
}

// State returns the current state.
func (srv *sessionService) State() usecase.SessionState {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.state
}

// AddListener registers components to be notified of session transitions.
func (srv *sessionService) AddListener(listeners ...usecase.SessionListener) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.listeners = append(srv.listeners, listeners...)
}

// install replaces the identity and notifies listeners. An identity already in
// place is ended first.
func (srv *sessionService) install(ctx context.Context, user *entity.User, session *entity.Session, state usecase.SessionState) {
	srv.mu.Lock()
	hadIdentity := srv.user != nil
	srv.mu.Unlock()

	if hadIdentity {
		srv.notifyEnded(ctx)
	}

	srv.mu.Lock()
	srv.user = user
	srv.session = session
	srv.state = state
	srv.mu.Unlock()

	srv.notifyStarted(ctx, user)
}

func (srv *sessionService) notifyStarted(ctx context.Context, user *entity.User) {
	var wg sync.WaitGroup
	for _, listener := range srv.snapshotListeners() {
		wg.Go(func() {
			snapshot := *user
			listener.SessionStarted(ctx, &snapshot)
		})
	}
	wg.Wait()
}

func (srv *sessionService) notifyEnded(ctx context.Context) {
	var wg sync.WaitGroup
	for _, listener := range srv.snapshotListeners() {
		wg.Go(func() {
			listener.SessionEnded(ctx)
		})
	}
	wg.Wait()
}

func (srv *sessionService) snapshotListeners() []usecase.SessionListener {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return append([]usecase.SessionListener(nil), srv.listeners...)
}

func (srv *sessionService) setState(state usecase.SessionState) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.state = state
}

func (srv *sessionService) setLoading(loading bool) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.loading = loading
}

func (srv *sessionService) deleteFlag(ctx context.Context, key string) {
	if err := srv.flags.Delete(ctx, key); err != nil {
		srv.log(ctx).Warn("Failed to delete local flag", slog.Any("error", err), slog.String("key", key))
	}
}
