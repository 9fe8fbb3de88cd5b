// Package handler provides HTTP handlers for auth endpoints.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/session/service"
	"github.com/teamarena/gateway/internal/upstream"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

// Handler handles HTTP requests for auth endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new auth handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Login handles POST /auth/login requests.
func (h *Handler) Login(c *gin.Context) {
	var req sessionModel.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "email and password are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.authError(c, err, "login failed")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Register handles POST /auth/register requests.
func (h *Handler) Register(c *gin.Context) {
	var req sessionModel.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, "INVALID_REQUEST", "username, email and password are required", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.authError(c, err, "register failed")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Logout handles POST /auth/logout requests.
func (h *Handler) Logout(c *gin.Context) {
	token := bearerToken(c)
	if token == "" {
		errorResponse(c, "UNAUTHORIZED", "missing bearer token", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(c.Request.Context(), token); err != nil {
		if errors.Is(err, sessionModel.ErrInvalidToken) || errors.Is(err, sessionModel.ErrSessionExpired) {
			errorResponse(c, "UNAUTHORIZED", "invalid session token", http.StatusUnauthorized)
			return
		}
		h.logger.Errorw("error closing session", "error", err)
		errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) authError(c *gin.Context, err error, logMessage string) {
	var apiErr *upstream.APIError
	if errors.As(err, &apiErr) {
		errorResponse(c, "AUTH_FAILED", apiErr.Message, http.StatusUnauthorized)
		return
	}

	var statusErr *upstream.StatusError
	if errors.As(err, &statusErr) {
		h.logger.Warnw(logMessage, "upstream_status", statusErr.StatusCode, "error", err)
		errorResponse(c, "UPSTREAM_ERROR", statusErr.Message, http.StatusBadGateway)
		return
	}

	h.logger.Errorw(logMessage, "error", err)
	errorResponse(c, "INTERNAL_ERROR", "internal server error", http.StatusInternalServerError)
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
