package handler

import (
	"net/http"

	"chaski/internal/delivery/http/response"
	"chaski/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves public profiles and ratings.
type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) Get(c echo.Context) error {
	user, err := h.profiles.PublicProfile(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// MyRating returns the caller's rating of a user, null when none.
func (h *ProfileHandler) MyRating(c echo.Context) error {
	rating, err := h.profiles.MyRating(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.OK(c, rating)
}

func (h *ProfileHandler) SubmitRating(c echo.Context) error {
	var input usecase.SubmitRatingInput
	if err := bind(c, &input); err != nil {
		return err
	}

	user, err := h.profiles.SubmitRating(c.Request().Context(), &input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user, "Rating saved")
}
