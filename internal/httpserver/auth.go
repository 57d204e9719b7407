package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/courtneystore/catalog-api/internal/logging"
	"github.com/courtneystore/catalog-api/internal/service"
	"github.com/courtneystore/catalog-api/internal/transport"
)

// Auth routes answer with an "error" field on failure, unlike the
// catalog routes which use "message".

type AuthHTTP struct {
	Svc *service.AuthService
}

func (h *AuthHTTP) Register(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.register")

	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("register_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	if err := h.Svc.Register(ctx, req.Username, req.Password); err != nil {
		l.Error("register_failed", "status", 500, "error", err)
		return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
	}

	l.Info("register_success", "username", req.Username)
	return c.JSON(http.StatusCreated, transport.MessageResponse{Message: "User created"})
}

func (h *AuthHTTP) Login(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "auth.login")

	var req transport.CredentialsRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("login_failed", "status", 400, "reason", "invalid body", "error", err)
		return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "invalid body"})
	}

	token, err := h.Svc.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			l.Warn("login_failed", "status", 400, "reason", "user not found", "username", req.Username)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "User not found"})
		case errors.Is(err, service.ErrInvalidCredentials):
			l.Warn("login_failed", "status", 400, "reason", "password mismatch", "username", req.Username)
			return c.JSON(http.StatusBadRequest, transport.ErrorResponse{Error: "Invalid credentials"})
		default:
			l.Error("login_failed", "status", 500, "error", err)
			return c.JSON(http.StatusInternalServerError, transport.ErrorResponse{Error: err.Error()})
		}
	}

	l.Info("login_success", "username", req.Username)
	return c.JSON(http.StatusOK, transport.TokenResponse{Token: token})
}
