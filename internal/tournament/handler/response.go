package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teamarena/gateway/internal/upstream"

	tournamentModel "github.com/teamarena/gateway/internal/tournament/model"
)

// ErrorResponse represents the error envelope returned by tournament endpoints.
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
	case errors.Is(err, tournamentModel.ErrNotAuthenticated):
		errorResponse(c, "UNAUTHORIZED", err.Error(), http.StatusUnauthorized)
	case errors.Is(err, tournamentModel.ErrNotFound):
		errorResponse(c, "NOT_FOUND", "tournament not found", http.StatusNotFound)
	case errors.Is(err, tournamentModel.ErrJoinInFlight):
		errorResponse(c, "JOIN_IN_FLIGHT", err.Error(), http.StatusConflict)
	case errors.Is(err, tournamentModel.ErrRegistrationClosed):
		errorResponse(c, "REGISTRATION_CLOSED", err.Error(), http.StatusConflict)
	case errors.Is(err, tournamentModel.ErrInvalidTournamentID):
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
