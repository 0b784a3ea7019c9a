package impl

import (
	"chaski/internal/domain/entity"
	domainerrors "chaski/internal/domain/errors"
	"chaski/internal/usecase"
)

// requireRemoteIdentity returns the current identity when it is backed by a remote account.
func requireRemoteIdentity(identity usecase.IdentityProvider) (*entity.User, error) {
	user := identity.CurrentUser()
	if user == nil {
		return nil, domainerrors.ErrNotAuthenticated
	}
	if user.IsDemo() {
		return nil, domainerrors.ErrDemoUnsupported
	}

	return user, nil
}
