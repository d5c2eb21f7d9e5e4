package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/database/books"
	"github.com/AFCVentura/Bookstore/internal/database/genres"
	"github.com/AFCVentura/Bookstore/internal/database/sales"
	"github.com/AFCVentura/Bookstore/internal/database/sellers"
	"github.com/AFCVentura/Bookstore/internal/http"
	"github.com/AFCVentura/Bookstore/internal/seeding"
	"github.com/AFCVentura/Bookstore/internal/session"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// GenreStore implementations
var _ http.GenreStore = (*genres.Repository)(nil)
var _ http.GenreLister = (*genres.Repository)(nil)

// BookStore implementations
var _ http.BookStore = (*books.Repository)(nil)
var _ http.BookLister = (*books.Repository)(nil)

// SellerStore implementations
var _ http.SellerStore = (*sellers.Repository)(nil)
var _ http.SellerLister = (*sellers.Repository)(nil)

// SaleStore implementations
var _ http.SaleStore = (*sales.Repository)(nil)

// Unit of work
var _ http.SessionOpener = (*database.Database)(nil)
var _ http.Pinger = (*database.Database)(nil)

// =============================================================================
// Audit Trail
// =============================================================================

var _ http.AuditLogger = (*audit.Service)(nil)
var _ http.AuditReader = (*audit.Service)(nil)
var _ seeding.Recorder = (*audit.Service)(nil)

// =============================================================================
// Sessions
// =============================================================================

var _ http.FlashStore = (*session.Manager)(nil)
