package session

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const contentSecurityPolicy = "default-src 'self'; " +
	"script-src 'self'; " +
	"style-src 'self' 'unsafe-inline'; " +
	"img-src 'self' data:; " +
	"font-src 'self'; " +
	"frame-ancestors 'none'; " +
	"form-action "

// SecurityHeadersMiddleware locks pages to this origin. Forms may only post
// back to the host that served them, under the scheme the client used.
// Responses are never cached since pages carry CSRF tokens and flash messages.
func SecurityHeadersMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Cache-Control", "no-store")
		h.Set("Content-Security-Policy", contentSecurityPolicy+formAction(c))

		c.Next()
	}
}

// formAction names the origin behind a reverse proxy, where 'self' alone can
// miss the public host.
func formAction(c *gin.Context) string {
	host := c.Request.Host
	if host == "" {
		return "'self'"
	}
	scheme := "http"
	if c.Request.TLS != nil || strings.EqualFold(c.GetHeader("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return "'self' " + scheme + "://" + host
}
