package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"trendsight/internal/models"
)

const sessionContextKey = "session"

// AuthMiddleware validates the bearer token and stores the resulting
// session in the request context for the handlers downstream.
func AuthMiddleware(authService AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "bearer token required"})
			c.Abort()
			return
		}

		session, err := authService.Authenticate(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func sessionFromContext(c *gin.Context) models.Session {
	if v, ok := c.Get(sessionContextKey); ok {
		if session, ok := v.(models.Session); ok {
			return session
		}
	}
	return models.Session{}
}
