package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/teamarena/gateway/internal/session/service"

	sessionModel "github.com/teamarena/gateway/internal/session/model"
)

// currentUserKey is the gin context key holding the authenticated user.
const currentUserKey = "currentUser"

// Auth resolves the bearer token, if any, and stores the current user in
// the request context. Requests without a valid token pass through
// anonymous; handlers that need an identity use RequireUser.
func Auth(sessions service.Service, logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearer(c.GetHeader("Authorization"))
		if token == "" {
			c.Next()
			return
		}

		user, err := sessions.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debugw("bearer token rejected", "path", c.Request.URL.Path, "error", err)
			c.Next()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// RequireUser aborts with 401 when the request carries no authenticated user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if UserFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": gin.H{
					"code":    "UNAUTHORIZED",
					"message": "must be logged in",
				},
			})
			return
		}
		c.Next()
	}
}

// UserFrom returns the authenticated user for the request, or nil.
func UserFrom(c *gin.Context) *sessionModel.CurrentUser {
	value, ok := c.Get(currentUserKey)
	if !ok {
		return nil
	}
	user, ok := value.(*sessionModel.CurrentUser)
	if !ok {
		return nil
	}
	return user
}

// SetUser stores the current user on the context. Used by tests.
func SetUser(c *gin.Context, user *sessionModel.CurrentUser) {
	c.Set(currentUserKey, user)
}

func extractBearer(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
