package api

import (
	"github.com/gin-gonic/gin"
)

// NewServer wires all routes. The pipeline endpoints sit behind the auth
// middleware; login and signup are the only open POST routes.
func NewServer(handler *Handler) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	r.GET("/health", handler.HealthCheck)

	authGroup := r.Group("/api/auth")
	{
		authGroup.POST("/signup", handler.SignUp)
		authGroup.POST("/login", handler.Login)
	}

	authorized := r.Group("/api")
	authorized.Use(AuthMiddleware(handler.authService))
	{
		authorized.GET("/auth/me", handler.Me)
		authorized.POST("/analyze", handler.Analyze)
		authorized.POST("/summarize", handler.Summarize)
		authorized.POST("/ask", handler.Ask)
	}

	return r
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
