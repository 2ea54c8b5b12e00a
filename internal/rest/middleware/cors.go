package middleware

import (
	"net/http"

	"github.com/adminboard/adminboard/internal/config"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware handles CORS headers for the browser-side dashboard
func CORSMiddleware(cfg *config.Configuration) gin.HandlerFunc {
	origin := cfg.CORS.AllowedOrigin
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "*")
		c.Writer.Header().Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
