package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/database"
)

// Gin context keys set by the middleware in this file.
const (
	ContextKeyRequestID = "request_id"
	ContextKeySession   = "db_session"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDMiddleware tags every request with an id, reusing a valid one sent
// by a proxy. The id is echoed in the response and shown on the error page.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(ContextKeyRequestID, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestIDMiddleware.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextKeyRequestID)
}

// SessionOpener opens database sessions.
type SessionOpener interface {
	NewSession(ctx context.Context) *database.Session
}

// UnitOfWorkMiddleware opens one database session per request and closes it
// once the handlers are done.
func UnitOfWorkMiddleware(db SessionOpener) gin.HandlerFunc {
	return func(c *gin.Context) {
		s := db.NewSession(c.Request.Context())
		defer s.Close()

		c.Set(ContextKeySession, s)
		c.Next()
	}
}

// storeUnavailable stands in for UnitOfWorkMiddleware when the router has no
// database, so entity handlers never run without a session.
func storeUnavailable(r responder) gin.HandlerFunc {
	return func(c *gin.Context) {
		r.fail(c, http.StatusServiceUnavailable, CodeInternalError, msgNoDatabase)
	}
}

// dbSession returns the request's database session, or nil outside
// UnitOfWorkMiddleware.
func dbSession(c *gin.Context) *database.Session {
	s, _ := c.Get(ContextKeySession)
	session, _ := s.(*database.Session)
	return session
}

func auditOrigin(c *gin.Context) audit.Origin {
	return audit.Origin{RequestID: GetRequestID(c), IPAddress: c.ClientIP()}
}
