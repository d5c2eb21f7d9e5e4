// Package demo implements the read-only mode used for public demonstrations:
// visitors can browse every page but nothing they submit is stored.
package demo

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ContextKeyDemoMode stores the demo flag in the Gin context for templates.
const ContextKeyDemoMode = "demo_mode"

// BlockedMessage is the text returned for every rejected write.
const BlockedMessage = "This action is disabled in demo mode"

// Middleware blocks write operations in demo mode.
// Read-only methods (GET, HEAD, OPTIONS) are always allowed.
type Middleware struct {
	enabled bool
}

// NewMiddleware creates a demo mode middleware.
func NewMiddleware(enabled bool) *Middleware {
	return &Middleware{enabled: enabled}
}

// IsEnabled returns whether demo mode is active.
func (m *Middleware) IsEnabled() bool {
	return m != nil && m.enabled
}

// Handler returns a Gin middleware that blocks write operations.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.IsEnabled() {
			c.Next()
			return
		}

		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		m.respondBlocked(c)
	}
}

// respondBlocked sends a 403 as JSON or as a short HTML page.
func (m *Middleware) respondBlocked(c *gin.Context) {
	if strings.Contains(c.GetHeader("Accept"), "application/json") {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"error":     BlockedMessage,
			"code":      "demo_mode",
			"demo_mode": true,
		})
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusForbidden,
		`<!DOCTYPE html><html><head><title>Demo mode</title></head><body><p>%s.</p><p><a href="javascript:history.back()">Go back</a></p></body></html>`,
		BlockedMessage)
	c.Abort()
}

// InjectContext adds the demo mode flag to the context for template rendering.
func (m *Middleware) InjectContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextKeyDemoMode, m.IsEnabled())
		c.Next()
	}
}
