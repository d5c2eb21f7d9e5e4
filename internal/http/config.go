package http

import (
	"html/template"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/demo"
	"github.com/AFCVentura/Bookstore/internal/session"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Genres   GenreStore
	Books    BookStore
	Sellers  SellerStore
	Sales    SaleStore

	// Audit trail (optional)
	Audit *audit.Service

	// Sessions back flash messages and the error page (optional)
	Sessions *session.Manager

	// Form protection; an empty secret disables CSRF checks
	CSRFSecret    []byte
	SecureCookies bool

	// Demo mode (optional)
	Demo *demo.Middleware

	// UI
	Templates  *template.Template
	StaticPath string

	// Application info
	Version string
}
