package middleware

import (
	"github.com/gin-gonic/gin"
)

// CORSConfig controls the allowed origins for browser clients.
type CORSConfig struct {
	AllowedOrigins []string
	AllowAll       bool
}

// DefaultCORSConfig is permissive outside production; browser capture demos
// run from arbitrary local origins.
func DefaultCORSConfig(environment string) CORSConfig {
	if environment == "production" {
		return CORSConfig{AllowedOrigins: []string{}}
	}
	return CORSConfig{AllowAll: true}
}

// CORS sets the response headers for cross-origin requests and short-circuits
// preflight.
func CORS(cfg CORSConfig) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.AllowedOrigins))
	for _, o := range cfg.AllowedOrigins {
		allowed[o] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if cfg.AllowAll {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, X-API-Key")
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
