package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/portls-labs/portls/pkg/config"
)

// CORS applies the configured cross-origin policy. A single "*" entry in
// the allowed origins opens the API to any origin, which is the default
// for this public read-mostly service.
func CORS(cfg *config.APIServerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")

		for _, allowed := range cfg.CORS.AllowedOrigins {
			if allowed == "*" {
				c.Header("Access-Control-Allow-Origin", "*")
				break
			}
			if origin == allowed {
				c.Header("Access-Control-Allow-Origin", origin)
				break
			}
		}
		c.Header("Access-Control-Allow-Methods", strings.Join(cfg.CORS.AllowedMethods, ", "))
		c.Header("Access-Control-Allow-Headers", strings.Join(cfg.CORS.AllowedHeaders, ", "))
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
