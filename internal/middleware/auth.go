package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	"detection-srv/pkg/response"
)

// APIKeyAuth validates the X-API-Key header against the configured key.
// An empty configured key disables the check entirely.
func (m Middleware) APIKeyAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.apiKey == "" {
			c.Next()
			return
		}

		key := c.GetHeader("X-API-Key")
		if key == "" || subtle.ConstantTimeCompare([]byte(key), []byte(m.apiKey)) != 1 {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Next()
	}
}
