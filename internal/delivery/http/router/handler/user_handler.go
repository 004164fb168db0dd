// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"
)

// landingPage is where successful registrations and logins are sent.
const landingPage = "/index.html"

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the user registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if _, err := h.uc.Register(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, landingPage)
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if _, err := h.uc.Login(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, landingPage)
}
