package auth

import (
	"context"
	"log/slog"
	"maps"
	"strings"
	"time"

	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/domain/repository"
	"chaski/internal/domain/service"
	"chaski/internal/errors"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// backendAuthProvider implements service.AuthProvider on top of the account
// tables: bcrypt credentials, JWT session tokens and stored refresh tokens.
type backendAuthProvider struct {
	txManager     repository.TransactionManager
	accounts      repository.AccountRepository
	auths         repository.AuthRepository
	refreshTokens repository.RefreshTokenRepository
	hasher        service.PasswordHasher
	tokens        service.TokenService
	oauth         map[entity.ProviderType]service.OAuthService
	states        *stateStore
	logger        *slog.Logger
}

// AuthProviderParams holds dependencies for the auth provider, injected by Fx.
type AuthProviderParams struct {
	fx.In

	TxManager        repository.TransactionManager
	AccountRepo      repository.AccountRepository
	AuthRepo         repository.AuthRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	OAuthServices    []service.OAuthService
	Logger           *slog.Logger
}

// NewAuthProvider is the constructor for backendAuthProvider.
func NewAuthProvider(params AuthProviderParams) service.AuthProvider {
	oauth := make(map[entity.ProviderType]service.OAuthService, len(params.OAuthServices))
	for _, svc := range params.OAuthServices {
		oauth[svc.GetProvider()] = svc
	}

	return &backendAuthProvider{
		txManager:     params.TxManager,
		accounts:      params.AccountRepo,
		auths:         params.AuthRepo,
		refreshTokens: params.RefreshTokenRepo,
		hasher:        params.Hasher,
		tokens:        params.TokenService,
		oauth:         oauth,
		states:        newStateStore(),
		logger:        params.Logger,
	}
}

func mergeMetadata(base, overlay map[string]string) map[string]string {
	merged := maps.Clone(base)
	if merged == nil {
		merged = make(map[string]string, len(overlay))
	}
	maps.Copy(merged, overlay)

	return merged
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignInWithPassword checks the email credential and opens a session.
func (p *backendAuthProvider) SignInWithPassword(ctx context.Context, email, password string) (*entity.Session, error) {
	email = normalizeEmail(email)

	authRecord, err := p.auths.FindAuthentication(ctx, entity.ProviderEmail, email)
	if err != nil {
		if errors.Is(err, repository.ErrAuthNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find authentication")
	}

	// bcrypt is CPU-bound, keep it out of any transaction.
	if !p.hasher.Check(password, authRecord.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	account, err := p.accounts.FindAccountByID(ctx, authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account")
	}

	return p.openSession(ctx, account, entity.ProviderEmail)
}

// SignUp creates the account with its email credential and opens its first session.
func (p *backendAuthProvider) SignUp(ctx context.Context, email, password string, metadata map[string]string) (*entity.Session, error) {
	email = normalizeEmail(email)

	hashedPassword, err := p.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	account := &entity.Account{Email: email, Metadata: metadata}
	err = p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.AccountRepo().CreateAccount(ctx, account); err != nil {
			return errors.Wrap(err, "failed to create account")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         account.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		})
	})
	if err != nil {
		p.logger.Warn("Sign up failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	return p.openSession(ctx, account, entity.ProviderEmail)
}

// AuthorizationURL issues a one-time state and returns the provider redirect.
func (p *backendAuthProvider) AuthorizationURL(_ context.Context, provider entity.ProviderType) (string, error) {
	svc, ok := p.oauth[provider]
	if !ok {
		return "", domainerrors.ErrUnsupportedProvider
	}

	state, err := p.states.issue(provider)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate oauth state")
	}

	return svc.AuthCodeURL(state), nil
}

// ExchangeCode completes a redirect. The account is found by provider subject,
// then by email, and created when neither matches.
func (p *backendAuthProvider) ExchangeCode(ctx context.Context, provider entity.ProviderType, code, state string) (*entity.Session, error) {
	svc, ok := p.oauth[provider]
	if !ok {
		return nil, domainerrors.ErrUnsupportedProvider
	}
	if !p.states.consume(provider, state) {
		return nil, domainerrors.ErrOAuthStateInvalid
	}

	oauthUser, err := svc.Exchange(ctx, code)
	if err != nil {
		p.logger.Warn("OAuth exchange failed", slog.String("provider", string(provider)), slog.Any("error", err))

		return nil, domainerrors.ErrOAuthFailed.WrapMessage(err.Error())
	}

	var account *entity.Account
	err = p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		linked, err := p.linkFederated(ctx, repoFactory, oauthUser)
		account = linked

		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to link federated account")
	}

	return p.openSession(ctx, account, provider)
}

func (p *backendAuthProvider) linkFederated(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.Account, error) {
	accountRepo := repoFactory.AccountRepo()
	authRepo := repoFactory.AuthRepo()
	metadata := oauthUser.Metadata()

	authRecord, err := authRepo.FindAuthentication(ctx, oauthUser.Provider, oauthUser.ID)
	if err == nil {
		if len(metadata) > 0 {
			if err := accountRepo.UpdateAccountMetadata(ctx, authRecord.UserID, metadata); err != nil {
				return nil, errors.Wrap(err, "failed to refresh provider claims")
			}
		}

		return accountRepo.FindAccountByID(ctx, authRecord.UserID)
	}
	if !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	email := normalizeEmail(oauthUser.Email)
	account, err := accountRepo.FindAccountByEmail(ctx, email)
	switch {
	case err == nil:
		// Only a provider-verified email may be linked to an existing account.
		if !oauthUser.EmailVerified {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email registered with another sign-in method")
		}
		if err := accountRepo.UpdateAccountMetadata(ctx, account.ID, metadata); err != nil {
			return nil, errors.Wrap(err, "failed to merge provider claims")
		}
		account.Metadata = mergeMetadata(account.Metadata, metadata)
	case errors.Is(err, repository.ErrAccountNotFound):
		account = &entity.Account{Email: email, Metadata: metadata}
		if err := accountRepo.CreateAccount(ctx, account); err != nil {
			return nil, errors.Wrap(err, "failed to create federated account")
		}
	default:
		return nil, errors.Wrap(err, "failed to find account")
	}

	err = authRepo.CreateAuthentication(ctx, &entity.Authentication{
		UserID:         account.ID,
		Provider:       oauthUser.Provider,
		ProviderUserID: oauthUser.ID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to link provider")
	}

	return account, nil
}

// GetSession restores a session from a cached refresh token, issuing a fresh access token.
func (p *backendAuthProvider) GetSession(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := p.tokens.ValidateToken(token, service.TokenTypeRefresh)
	if err != nil {
		return nil, nil
	}

	stored, err := p.refreshTokens.FindByHash(ctx, p.tokens.HashToken(token))
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find refresh token")
	}
	if time.Now().After(stored.ExpiresAt) || stored.UserID != claims.UserID {
		return nil, nil
	}

	account, err := p.accounts.FindAccountByID(ctx, stored.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to load account")
	}

	accessToken, _, err := p.tokens.GenerateTokens(account.ID, stored.Provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return p.sessionOf(account, stored.Provider, accessToken, token), nil
}

// SignOut revokes the refresh token of session. An unknown token is already signed out.
func (p *backendAuthProvider) SignOut(ctx context.Context, session *entity.Session) error {
	if session == nil || session.RefreshToken == "" {
		return nil
	}

	err := p.refreshTokens.DeleteByHash(ctx, p.tokens.HashToken(session.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return errors.Wrap(err, "failed to revoke refresh token")
	}

	return nil
}

// UpdatePassword sets the email credential of the session account, creating it for federated accounts.
func (p *backendAuthProvider) UpdatePassword(ctx context.Context, session *entity.Session, newPassword string) error {
	if session == nil {
		return domainerrors.ErrNotAuthenticated
	}
	claims, err := p.tokens.ValidateToken(session.AccessToken, service.TokenTypeAccess)
	if err != nil {
		return domainerrors.ErrSessionExpired
	}

	hashedPassword, err := p.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	return p.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		authRecord, err := authRepo.FindAuthenticationByUserIDAndProvider(ctx, claims.UserID, entity.ProviderEmail)
		if err == nil {
			authRecord.PasswordHash = hashedPassword

			return authRepo.UpdateAuthentication(ctx, authRecord)
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		account, err := repoFactory.AccountRepo().FindAccountByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to load account")
		}
		if account.Email == "" {
			return domainerrors.ErrValidationFailed.WithDetails("account has no email to sign in with")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         account.ID,
			Provider:       entity.ProviderEmail,
			ProviderUserID: account.Email,
			PasswordHash:   hashedPassword,
		})
	})
}

func (p *backendAuthProvider) openSession(ctx context.Context, account *entity.Account, provider entity.ProviderType) (*entity.Session, error) {
	accessToken, refreshToken, err := p.tokens.GenerateTokens(account.ID, provider)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := time.Now()
	err = p.refreshTokens.Create(ctx, &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    account.ID,
		Provider:  provider,
		TokenHash: p.tokens.HashToken(refreshToken),
		ExpiresAt: now.Add(p.tokens.RefreshTokenDuration()),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	if pruned, err := p.refreshTokens.DeleteExpired(ctx, account.ID, now); err != nil {
		p.logger.Warn("Failed to prune expired sessions", slog.String("account_id", account.ID.String()), slog.Any("error", err))
	} else if pruned > 0 {
		p.logger.Debug("Pruned expired sessions", slog.String("account_id", account.ID.String()), slog.Int64("count", pruned))
	}

	return p.sessionOf(account, provider, accessToken, refreshToken), nil
}

func (p *backendAuthProvider) sessionOf(account *entity.Account, provider entity.ProviderType, accessToken, refreshToken string) *entity.Session {
	return &entity.Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		UserID:       account.ID.String(),
		Email:        account.Email,
		Provider:     provider,
		Metadata:     account.Metadata,
		ExpiresAt:    time.Now().Add(p.tokens.AccessTokenDuration()),
	}
}
