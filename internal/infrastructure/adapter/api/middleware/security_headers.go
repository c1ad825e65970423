package middleware

import (
	"github.com/gin-gonic/gin"
)

// SecurityHeaders middleware sets conservative browser security headers
// on every response
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-XSS-Protection", "0")
		c.Header("Referrer-Policy", "no-referrer")

		c.Next()
	}
}
