package http

import (
	"context"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/database"
	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

// Each controller depends on the narrowest interface it needs. The
// repositories under internal/database satisfy them; see internal/interfaces.

// GenreLister lists and resolves genres for the book form.
type GenreLister interface {
	FindAll(s *database.Session) ([]entities.Genre, error)
	FindByID(s *database.Session, id uint) (*entities.Genre, error)
}

// GenreStore is used by GenresController.
type GenreStore interface {
	GenreLister
	FindByIDEager(s *database.Session, id uint) (*entities.Genre, error)
	Insert(s *database.Session, genre *entities.Genre) error
	Update(s *database.Session, genre *entities.Genre) error
	Remove(s *database.Session, id uint) error
}

// BookLister lists and resolves books for the sale form.
type BookLister interface {
	FindAll(s *database.Session) ([]entities.Book, error)
	FindByIDs(s *database.Session, ids []uint) ([]entities.Book, error)
}

// BookStore is used by BooksController.
type BookStore interface {
	BookLister
	FindByID(s *database.Session, id uint) (*entities.Book, error)
	Insert(s *database.Session, book *entities.Book) error
	Update(s *database.Session, book *entities.Book) error
	Remove(s *database.Session, id uint) error
}

// SellerLister lists and resolves sellers for the sale form.
type SellerLister interface {
	FindAll(s *database.Session) ([]entities.Seller, error)
	FindByID(s *database.Session, id uint) (*entities.Seller, error)
}

// SellerStore is used by SellersController.
type SellerStore interface {
	SellerLister
	FindByIDEager(s *database.Session, id uint) (*entities.Seller, error)
	Insert(s *database.Session, seller *entities.Seller) error
	Update(s *database.Session, seller *entities.Seller) error
	Remove(s *database.Session, id uint) error
}

// SaleStore is used by SalesController.
type SaleStore interface {
	FindAll(s *database.Session) ([]entities.Sale, error)
	FindByID(s *database.Session, id uint) (*entities.Sale, error)
	FindByIDEager(s *database.Session, id uint) (*entities.Sale, error)
	Insert(s *database.Session, sale *entities.Sale) error
	Update(s *database.Session, sale *entities.Sale) error
	Remove(s *database.Session, id uint) error
}

// AuditLogger records the outcome of every write.
type AuditLogger interface {
	LogCreate(ctx context.Context, origin audit.Origin, entityType string, entityID uint, err error)
	LogUpdate(ctx context.Context, origin audit.Origin, entityType string, entityID uint, err error)
	LogDelete(ctx context.Context, origin audit.Origin, entityType string, entityID uint, err error)
}

// AuditReader lists recorded audit events.
type AuditReader interface {
	GetEvents(ctx context.Context, filter auditRepo.Filter) ([]entities.AuditEvent, int64, error)
}

type nopAuditLogger struct{}

func (nopAuditLogger) LogCreate(context.Context, audit.Origin, string, uint, error) {}
func (nopAuditLogger) LogUpdate(context.Context, audit.Origin, string, uint, error) {}
func (nopAuditLogger) LogDelete(context.Context, audit.Origin, string, uint, error) {}

func auditOrNop(logger AuditLogger) AuditLogger {
	if logger == nil {
		return nopAuditLogger{}
	}
	return logger
}
