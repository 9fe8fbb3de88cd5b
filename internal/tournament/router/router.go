// Package router provides tournament module routes registration.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/tournament/handler"
	"github.com/teamarena/gateway/internal/tournament/service"
	"github.com/teamarena/gateway/internal/upstream"
)

// RegisterRoutes registers tournament module routes. Join is open to
// anonymous callers on purpose: the service answers them with the
// login-required precondition error instead of a bare 401.
func RegisterRoutes(r *gin.Engine, client *upstream.Client, logger *zap.SugaredLogger) {
	svc := service.New(client, logger)
	h := handler.New(svc, logger)

	// One param name for the whole subtree: gin rejects mixed wildcard
	// names at the same position. Join and participants parse it as an id.
	tournaments := r.Group("/tournaments")
	tournaments.GET("/:slug", h.Get)
	tournaments.POST("/:slug/join", h.Join)
	tournaments.GET("/:slug/participants", h.Participants)

	r.GET("/my/tournaments", h.MyTournaments)
}
