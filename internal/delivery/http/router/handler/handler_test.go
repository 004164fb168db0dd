package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"

	gatemiddleware "gatehouse/internal/delivery/http/middleware"
	"gatehouse/internal/delivery/http/validator"
	"gatehouse/internal/usecase"
)

// MockUserUsecase is a hand-written testify mock for usecase.UserUsecase.
type MockUserUsecase struct {
	mock.Mock
}

func (m *MockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return output, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return output, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockContactUsecase is a hand-written testify mock for usecase.ContactUsecase.
type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) Submit(ctx context.Context, input *usecase.SubmitContactInput) (*usecase.SubmitContactOutput, error) {
	args := m.Called(ctx, input)
	if output, ok := args.Get(0).(*usecase.SubmitContactOutput); ok {
		return output, args.Error(1)
	}
	return nil, args.Error(1)
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance with the same validator and error
// handler the real server wires in.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = gatemiddleware.NewErrorMiddleware(newDiscardLogger()).HandleHTTPError

	return e
}

// serveForm runs a handler against a form-encoded POST body and funnels any
// returned error through the error handler, mirroring the real dispatch.
func serveForm(e *echo.Echo, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}

// serveJSON is serveForm for JSON bodies.
func serveJSON(e *echo.Echo, h echo.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	return rec
}
