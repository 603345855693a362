package handler

import (
	"log/slog"
	"net/http"

	"gusto/internal/delivery/api/response"
	"gusto/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Logger *slog.Logger
}

// AuthHandler holds dependencies for registration and login.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler.
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		logger: params.Logger,
	}
}

// Register handles account creation.
func (h *AuthHandler) Register(c echo.Context) error {
	var req usecase.RegisterInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.SuccessWithMessage(c, http.StatusCreated, out, "User registered successfully")
}

// Login handles credential verification.
func (h *AuthHandler) Login(c echo.Context) error {
	var req usecase.LoginInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, out)
}
