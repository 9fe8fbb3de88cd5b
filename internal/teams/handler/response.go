package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamarena/gateway/internal/upstream"

	teamsModel "github.com/teamarena/gateway/internal/teams/model"
)

// ErrorResponse represents the error envelope returned by team endpoints.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse writes the error envelope.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// serviceError maps service and upstream errors onto HTTP responses.
func (h *Handler) serviceError(c *gin.Context, err error, logMessage string) {
	switch {
	case errors.Is(err, teamsModel.ErrNotAuthenticated):
		errorResponse(c, "UNAUTHORIZED", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, teamsModel.ErrNameRequired),
		errors.Is(err, teamsModel.ErrNameTooLong),
		errors.Is(err, teamsModel.ErrImageTooLarge),
		errors.Is(err, teamsModel.ErrInvalidAction),
		errors.Is(err, teamsModel.ErrInvalidTeamID):
		errorResponse(c, "INVALID_REQUEST", err.Error(), http.StatusBadRequest)
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			errorResponse(c, "BACKEND_REJECTED", apiErr.Message, http.StatusUnprocessableEntity)
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
}
