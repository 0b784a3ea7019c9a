package handler

import (
	"log/slog"
	"net/http"

	"chaski/internal/delivery/http/response"
	"chaski/internal/domain/entity"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionHandler exposes the session manager.
type SessionHandler struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewSessionHandler is the constructor for SessionHandler, injected by Fx.
func NewSessionHandler(session usecase.SessionUsecase, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{session: session, logger: logger}
}

// SessionView is the observable session state.
type SessionView struct {
	State   usecase.SessionState `json:"state"`
	Loading bool                 `json:"loading"`
	User    *entity.User         `json:"user,omitempty"`
}

func (h *SessionHandler) view() SessionView {
	return SessionView{
		State:   h.session.State(),
		Loading: h.session.IsLoading(),
		User:    h.session.CurrentUser(),
	}
}

// Current returns the session state.
func (h *SessionHandler) Current(c echo.Context) error {
	return response.OK(c, h.view())
}

// Login handles email sign-in.
func (h *SessionHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.session.Login(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.view(), "Login successful")
}

// Register creates an account and signs it in.
func (h *SessionHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.session.Register(c.Request().Context(), &input); err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, h.view(), "User registered successfully")
}

// EnterDemo skips authentication.
func (h *SessionHandler) EnterDemo(c echo.Context) error {
	if err := h.session.EnterDemo(c.Request().Context()); err != nil {
		return err
	}

	return response.OK(c, h.view())
}

// Logout ends the session.
func (h *SessionHandler) Logout(c echo.Context) error {
	if err := h.session.Logout(c.Request().Context()); err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, h.view(), "Logout successful")
}

// ProviderLogin starts a federated sign-in. With ?redirect=true it redirects
// straight to the provider, otherwise it returns the URL.
func (h *SessionHandler) ProviderLogin(c echo.Context) error {
	provider := entity.ProviderType(c.Param("provider"))

	authURL, err := h.session.LoginWithProvider(c.Request().Context(), provider)
	if err != nil {
		return err
	}

	if c.QueryParam("redirect") == "true" {
		return c.Redirect(http.StatusTemporaryRedirect, authURL)
	}

	return response.OK(c, map[string]string{"url": authURL})
}

// ProviderCallback completes a federated sign-in. Apple posts the code as a form.
func (h *SessionHandler) ProviderCallback(c echo.Context) error {
	input := usecase.ProviderCallbackInput{
		Provider: entity.ProviderType(c.Param("provider")),
		Code:     c.FormValue("code"),
		State:    c.FormValue("state"),
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	if err := h.session.CompleteProviderLogin(c.Request().Context(), &input); err != nil {
		h.logger.Warn("Provider callback rejected", slog.String("provider", string(input.Provider)), slog.Any("error", err))

		return err
	}

	return response.Success(c, http.StatusOK, h.view(), "Login successful")
}

// UpdateProfile writes the present profile fields.
func (h *SessionHandler) UpdateProfile(c echo.Context) error {
	var input usecase.UpdateProfileInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.session.UpdateUserProfile(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Profile updated")
}

// UpdatePassword sets the email credential.
func (h *SessionHandler) UpdatePassword(c echo.Context) error {
	var input usecase.UpdatePasswordInput
	if err := bind(c, &input); err != nil {
		return err
	}

	if err := h.session.UpdatePassword(c.Request().Context(), &input); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
