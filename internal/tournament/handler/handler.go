// Package handler provides HTTP handlers for tournament endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/middleware"
	"github.com/teamarena/gateway/internal/tournament/service"

	tournamentModel "github.com/teamarena/gateway/internal/tournament/model"
)

// Handler handles HTTP requests for tournament endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new tournament handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Get handles GET /tournaments/:slug requests.
func (h *Handler) Get(c *gin.Context) {
	slug := c.Param("slug")

	detail, err := h.service.Get(c.Request.Context(), slug, currentUserID(c))
	if err != nil {
		h.serviceError(c, err, "error loading tournament")
		return
	}

	c.JSON(http.StatusOK, detail)
}

// Join handles POST /tournaments/:id/join requests. The slug travels in the
// body so the refreshed detail can be fetched after the mutation.
func (h *Handler) Join(c *gin.Context) {
	tournamentID, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil || tournamentID <= 0 {
		errorResponse(c, "INVALID_REQUEST", "id must be a positive integer", http.StatusBadRequest)
		return
	}

	var body struct {
		Slug string `json:"slug" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, "INVALID_REQUEST", "slug is required", http.StatusBadRequest)
		return
	}

	detail, message, err := h.service.Join(c.Request.Context(), tournamentID, body.Slug, currentUserID(c))
	if err != nil {
		h.serviceError(c, err, "error joining tournament")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"detail":  detail,
	})
}

// Participants handles GET /tournaments/:id/participants requests.
func (h *Handler) Participants(c *gin.Context) {
	tournamentID, err := strconv.ParseInt(c.Param("slug"), 10, 64)
	if err != nil || tournamentID <= 0 {
		errorResponse(c, "INVALID_REQUEST", "id must be a positive integer", http.StatusBadRequest)
		return
	}

	list, err := h.service.Participants(c.Request.Context(), tournamentID)
	if err != nil {
		h.serviceError(c, err, "error loading participants")
		return
	}

	c.JSON(http.StatusOK, list)
}

// MyTournaments handles GET /my/tournaments requests with optional
// status and format query filters.
func (h *Handler) MyTournaments(c *gin.Context) {
	filters := tournamentModel.Filters{
		Status: tournamentModel.Status(c.Query("status")),
		Format: c.Query("format"),
	}

	tournaments, err := h.service.MyTournaments(c.Request.Context(), currentUserID(c), filters)
	if err != nil {
		h.serviceError(c, err, "error loading my tournaments")
		return
	}

	c.JSON(http.StatusOK, gin.H{"tournaments": tournaments})
}

func currentUserID(c *gin.Context) int64 {
	if user := middleware.UserFrom(c); user != nil {
		return user.ID
	}
	return 0
}
