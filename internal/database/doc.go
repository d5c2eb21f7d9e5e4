// Package database provides the data access layer for the bookstore.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, sessions
//	├── errors.go        # Error kinds reported by repositories
//	├── genres/          # Genre CRUD and the genre → books eager load
//	├── books/           # Book CRUD and id resolution for sale forms
//	├── sellers/         # Seller CRUD and the seller → sales → books eager load
//	├── sales/           # Sale CRUD, including the sale ↔ book links
//	└── audit/           # Audit trail of create, update and delete requests
//
// # Sessions
//
// Every repository operation takes the *Session it runs in as its first
// argument. A session is opened once per request and closed when the request
// ends; operations attempted on a closed session fail with ErrSessionClosed.
//
//	db, err := database.NewDatabase("./bookstore.db")
//	s := db.NewSession(ctx)
//	defer s.Close()
//
//	seller, err := sellers.NewRepository().FindByIDEager(s, id)
//
// # Error Kinds
//
// Reads report an absent id with a nil entity and no error. Writes report
// failures that callers are expected to handle with one of:
//
//   - ErrNotFound: update or remove of an id the store does not hold
//   - *IntegrityError: remove rejected because other rows reference the entity
//   - *ConcurrencyError: update made from a stale copy (Version mismatch)
//
// KindOf maps any error to its ErrorKind.
//
// # Adding a New Domain
//
//  1. Create a new sub-package: internal/database/<domain>/
//  2. Define an empty Repository struct and a NewRepository constructor
//  3. Take *database.Session as the first argument of every method
//  4. Add the entity to Migrate
//  5. Add a compile-time check in internal/interfaces
package database
