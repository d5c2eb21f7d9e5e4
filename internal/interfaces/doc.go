// Package interfaces documents the core abstractions used throughout the application.
//
// This package consolidates interface documentation to help code agents understand
// extension points and how to implement new functionality.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
// Controllers depend on the narrowest store they need (internal/http/stores.go):
//
//   - GenreStore, GenreLister: genres and the book form's genre picker
//   - BookStore, BookLister: books and the sale form's book picker
//   - SellerStore, SellerLister: sellers and the sale form's seller picker
//   - SaleStore: sales with their seller and books
//   - SessionOpener: one database session per request (internal/http/context.go)
//
// Every store method takes the request's *database.Session first. Reads return
// (nil, nil) for an absent id; writes return errors that database.KindOf
// classifies as not found, integrity or concurrency failures.
//
// ## Audit Interfaces
//
//   - AuditLogger: records the outcome of every write (internal/http/stores.go)
//   - AuditReader: pages through recorded events (internal/http/stores.go)
//   - Recorder: records demonstration data loads (internal/seeding/seeding.go)
//
// ## Session Interfaces
//
//   - FlashStore: notices and errors carried across a redirect (internal/http/helpers.go)
//
// # Adding a New Database Domain
//
// To add a new data domain (e.g., publishers):
//
//  1. Add the entity to internal/entities/ and to database.Migrate.
//
//  2. Create sub-package: internal/database/publishers/
//
//     type Repository struct{}
//
//     func NewRepository() *Repository
//
//     func (r *Repository) FindByID(s *database.Session, id uint) (*entities.Publisher, error)
//
//  3. Give updates a version guard with database.CheckVersion and classify
//     deletes with database.ClassifyDelete.
//
//  4. Define the controller's store in internal/http/stores.go and add a
//     compile-time check:
//
//     var _ http.PublisherStore = (*publishers.Repository)(nil)
//
// # Compile-Time Interface Checks
//
// All implementations should include compile-time checks to ensure they satisfy
// their interfaces. This catches missing methods at compile time rather than runtime:
//
//	var _ SomeInterface = (*MyImplementation)(nil)
//
// This pattern is used throughout the codebase. See checks.go for examples.
package interfaces
