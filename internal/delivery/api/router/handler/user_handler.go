package handler

import (
	"encoding/json"
	"net/http"

	"gusto/internal/delivery/api/middleware"
	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
}

// UserHandler serves user listings, profiles and preferences.
type UserHandler struct {
	userUC usecase.UserUsecase
}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{userUC: params.UserUC}
}

// SavePreferencesRequest wraps the opaque preferences document.
type SavePreferencesRequest struct {
	Preferences json.RawMessage `json:"preferences"`
}

// ListUsers returns every user.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, users)
}

// GetUser returns the user named in the path.
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUC.GetUser(c.Request().Context(), c.Param("username"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}

// GetMe returns the authenticated user.
func (h *UserHandler) GetMe(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}

	user, err := h.userUC.GetMe(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, user)
}

// UpdateProfile applies a partial profile update to the authenticated user.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}

	var req usecase.UpdateProfileInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusOK, user, "Profile updated")
}

// GetPreferences returns the stored preferences of the authenticated user.
func (h *UserHandler) GetPreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}

	prefs, err := h.userUC.GetPreferences(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, prefs)
}

// SavePreferences replaces the preferences of the authenticated user. A body
// without a preferences field stores an empty object.
func (h *UserHandler) SavePreferences(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return missingIdentity(c)
	}

	var req SavePreferencesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if len(req.Preferences) == 0 {
		req.Preferences = json.RawMessage(`{}`)
	}

	prefs, err := h.userUC.SavePreferences(c.Request().Context(), userID, req.Preferences)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusOK, prefs, "Preferences saved")
}
