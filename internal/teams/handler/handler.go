// Package handler provides HTTP handlers for team endpoints.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/middleware"
	"github.com/teamarena/gateway/internal/teams/service"

	teamsModel "github.com/teamarena/gateway/internal/teams/model"
)

// Handler handles HTTP requests for team endpoints.
type Handler struct {
	service service.Service
	logger  *zap.SugaredLogger
}

// New creates a new teams handler instance.
func New(svc service.Service, logger *zap.SugaredLogger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Directory handles GET /teams requests. The list is partitioned for the
// authenticated user; anonymous callers get an empty directory. An optional
// q parameter filters both partitions by name.
func (h *Handler) Directory(c *gin.Context) {
	var userID int64
	if user := middleware.UserFrom(c); user != nil {
		userID = user.ID
	}

	dir, err := h.service.LoadDirectory(c.Request.Context(), userID)
	if err != nil {
		h.serviceError(c, err, "error loading team directory")
		return
	}

	if term := c.Query("q"); term != "" {
		dir = &teamsModel.Directory{
			All:  service.Search(dir.All, term),
			Mine: service.Search(dir.Mine, term),
		}
	}

	c.JSON(http.StatusOK, dir)
}

// Panel handles GET /teams/:id/panel requests.
func (h *Handler) Panel(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	panel, err := h.service.LoadPanel(c.Request.Context(), teamID)
	if err != nil {
		h.serviceError(c, err, "error loading team panel")
		return
	}

	c.JSON(http.StatusOK, teamsModel.PanelResponse{Panel: panel})
}

// ResolveRequest handles POST /teams/:id/requests/:requestID requests.
func (h *Handler) ResolveRequest(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestID")
	if !ok {
		return
	}

	var body struct {
		Action teamsModel.RequestAction `json:"action" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, "INVALID_REQUEST", "action is required", http.StatusBadRequest)
		return
	}

	panel, err := h.service.ResolveRequest(c.Request.Context(), teamID, requestID, body.Action)
	if err != nil {
		h.serviceError(c, err, "error resolving join request")
		return
	}

	// Accepting changes membership, so the caller's team list is stale too.
	c.JSON(http.StatusOK, teamsModel.PanelResponse{
		Panel:        panel,
		RefreshTeams: body.Action == teamsModel.ActionAccept,
	})
}

// UpdateSettings handles PUT /teams/:id/settings requests.
func (h *Handler) UpdateSettings(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var form teamsModel.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	panel, err := h.service.UpdateSettings(c.Request.Context(), teamID, &form)
	if err != nil {
		h.serviceError(c, err, "error updating team settings")
		return
	}

	c.JSON(http.StatusOK, teamsModel.PanelResponse{Panel: panel, RefreshTeams: true})
}

// DeleteTeam handles DELETE /teams/:id requests.
func (h *Handler) DeleteTeam(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteTeam(c.Request.Context(), teamID); err != nil {
		h.serviceError(c, err, "error deleting team")
		return
	}

	c.JSON(http.StatusOK, gin.H{"refresh_teams": true})
}

// CreateTeam handles POST /teams requests.
func (h *Handler) CreateTeam(c *gin.Context) {
	var form teamsModel.CreateTeamRequest
	if err := c.ShouldBindJSON(&form); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}

	user := middleware.UserFrom(c)
	if err := h.service.CreateTeam(c.Request.Context(), user, &form); err != nil {
		h.serviceError(c, err, "error creating team")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"refresh_teams": true})
}

// SendJoinRequest handles POST /teams/:id/join-requests requests.
func (h *Handler) SendJoinRequest(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var body teamsModel.JoinRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		errorResponse(c, "INVALID_REQUEST", "invalid request body", http.StatusBadRequest)
		return
	}
	body.TeamID = teamID

	user := middleware.UserFrom(c)
	if err := h.service.SendJoinRequest(c.Request.Context(), user, &body); err != nil {
		h.serviceError(c, err, "error sending join request")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "pending"})
}

// Involvement handles GET /teams/:id/involvement requests. The owner id is
// passed by the caller so ownership can short-circuit the backend call.
func (h *Handler) Involvement(c *gin.Context) {
	teamID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var ownerID int64
	if raw := c.Query("owner_id"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			errorResponse(c, "INVALID_REQUEST", "owner_id must be numeric", http.StatusBadRequest)
			return
		}
		ownerID = parsed
	}

	var userID int64
	if user := middleware.UserFrom(c); user != nil {
		userID = user.ID
	}

	involved, err := h.service.CheckInvolvement(c.Request.Context(), userID, &teamsModel.Team{
		ID:      teamID,
		OwnerID: ownerID,
	})
	if err != nil {
		h.serviceError(c, err, "error checking team involvement")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_involved": involved})
}

// pathID parses a positive numeric path parameter, writing the error itself.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		errorResponse(c, "INVALID_REQUEST", name+" must be a positive integer", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}
