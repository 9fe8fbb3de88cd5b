// Package router provides auth routes registration.
package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/teamarena/gateway/internal/session/handler"
	"github.com/teamarena/gateway/internal/session/repository"
	"github.com/teamarena/gateway/internal/session/service"
	"github.com/teamarena/gateway/internal/upstream"
)

// RegisterRoutes registers auth routes and returns the session service
// so middleware can resolve bearer tokens.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, client *upstream.Client, secret string, ttl time.Duration, logger *zap.SugaredLogger) service.Service {
	repo := repository.New(db)
	svc := service.New(client, repo, secret, ttl, logger)
	h := handler.New(svc, logger)

	auth := r.Group("/auth")
	auth.POST("/login", h.Login)
	auth.POST("/register", h.Register)
	auth.POST("/logout", h.Logout)

	return svc
}
