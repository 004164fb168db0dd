package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	domainerrors "gatehouse/internal/domain/errors"
	"gatehouse/internal/usecase"
)

// ContactHandler holds dependencies for contact form handlers.
type ContactHandler struct {
	uc     usecase.ContactUsecase
	logger *slog.Logger
}

// NewContactHandler is the constructor for ContactHandler, injected by Fx.
func NewContactHandler(uc usecase.ContactUsecase, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{
		uc:     uc,
		logger: logger,
	}
}

// Submit handles the contact form submission request.
func (h *ContactHandler) Submit(c echo.Context) error {
	var input usecase.SubmitContactInput
	if err := c.Bind(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("invalid contact form input")
	}
	if err := c.Validate(&input); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	if _, err := h.uc.Submit(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return c.Redirect(http.StatusFound, "/")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
