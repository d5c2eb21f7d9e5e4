// Package session keeps per-visitor state between requests: flash messages
// carried across redirects, CSRF protection of forms and the security headers
// sent with every page.
package session

import (
	"context"
	"database/sql"
	"net/http"

	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"

	"github.com/AFCVentura/Bookstore/internal/config"
)

// Session data keys
const (
	KeyFlash          = "flash"
	KeyErrorMessage   = "error_message"
	KeyErrorRequestID = "error_request_id"
)

// Manager wraps scs.SessionManager with application-specific methods.
type Manager struct {
	*scs.SessionManager
}

// NewManager creates a configured session manager backed by the sessions
// table of the application database.
func NewManager(sqlDB *sql.DB, cfg config.Session) (*Manager, error) {
	_, err := sqlDB.Exec(`CREATE TABLE IF NOT EXISTS sessions (
		token TEXT PRIMARY KEY,
		data BLOB NOT NULL,
		expiry REAL NOT NULL
	);
	CREATE INDEX IF NOT EXISTS sessions_expiry_idx ON sessions(expiry);`)
	if err != nil {
		return nil, err
	}

	sm := scs.New()
	sm.Store = sqlite3store.New(sqlDB)
	sm.Lifetime = cfg.Lifetime
	sm.IdleTimeout = cfg.Lifetime / 2

	sm.Cookie.Name = "bookstore_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.Secure = cfg.SecureCookies
	// Lax so the flash survives the redirect that follows a form post
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Path = "/"

	return &Manager{SessionManager: sm}, nil
}

// PutFlash stores a one-shot notice shown on the next page.
func (m *Manager) PutFlash(ctx context.Context, message string) {
	m.Put(ctx, KeyFlash, message)
}

// PopFlash returns and clears the pending notice.
func (m *Manager) PopFlash(ctx context.Context) string {
	return m.PopString(ctx, KeyFlash)
}

// PutError stores the failure the error page will describe.
func (m *Manager) PutError(ctx context.Context, message, requestID string) {
	m.Put(ctx, KeyErrorMessage, message)
	m.Put(ctx, KeyErrorRequestID, requestID)
}

// PopError returns and clears the stored failure.
func (m *Manager) PopError(ctx context.Context) (message, requestID string) {
	return m.PopString(ctx, KeyErrorMessage), m.PopString(ctx, KeyErrorRequestID)
}
