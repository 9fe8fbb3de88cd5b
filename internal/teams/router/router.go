// Package router provides teams module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/middleware"
	"github.com/teamarena/gateway/internal/teams/handler"
	"github.com/teamarena/gateway/internal/teams/service"
	"github.com/teamarena/gateway/internal/upstream"
)

// RegisterRoutes registers teams module routes. Reads work logged out;
// mutations require an authenticated user.
func RegisterRoutes(r *gin.Engine, client *upstream.Client, logger *zap.SugaredLogger) {
	svc := service.New(client, logger)
	h := handler.New(svc, logger)

	teams := r.Group("/teams")
	teams.GET("", h.Directory)
	teams.GET("/:id/panel", h.Panel)
	teams.GET("/:id/involvement", h.Involvement)

	teams.POST("", middleware.RequireUser(), h.CreateTeam)
	teams.POST("/:id/join-requests", middleware.RequireUser(), h.SendJoinRequest)
	teams.POST("/:id/requests/:requestID", middleware.RequireUser(), h.ResolveRequest)
	teams.PUT("/:id/settings", middleware.RequireUser(), h.UpdateSettings)
	teams.DELETE("/:id", middleware.RequireUser(), h.DeleteTeam)
}
