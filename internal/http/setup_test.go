package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/AFCVentura/Bookstore/internal/audit"
	"github.com/AFCVentura/Bookstore/internal/database"
	auditRepo "github.com/AFCVentura/Bookstore/internal/database/audit"
	"github.com/AFCVentura/Bookstore/internal/database/books"
	"github.com/AFCVentura/Bookstore/internal/database/genres"
	"github.com/AFCVentura/Bookstore/internal/database/sales"
	"github.com/AFCVentura/Bookstore/internal/database/sellers"
	"github.com/AFCVentura/Bookstore/internal/demo"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router *gin.Engine
	db     *database.Database
	audit  *audit.Service
}

func setupTestApp(t *testing.T) *testApp {
	return setupTestAppWith(t, func(*RouterConfig) {})
}

func setupTestAppWith(t *testing.T, configure func(*RouterConfig)) *testApp {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "bookstore.db"), database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	auditService := audit.NewService(auditRepo.NewRepository(db.DB))
	cfg := RouterConfig{
		Database: db,
		Genres:   genres.NewRepository(),
		Books:    books.NewRepository(),
		Sellers:  sellers.NewRepository(),
		Sales:    sales.NewRepository(),
		Audit:    auditService,
		Demo:     demo.NewMiddleware(false),
		Version:  "test",
	}
	configure(&cfg)

	return &testApp{router: NewRouter(cfg), db: db, audit: auditService}
}

// do sends a JSON request and returns the recorded response.
func (a *testApp) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var value T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &value), w.Body.String())
	return value
}

// seed stores rows directly, bypassing the controllers.
func (a *testApp) seed(t *testing.T, fn func(s *database.Session) error) {
	t.Helper()
	require.NoError(t, a.db.WithSession(context.Background(), fn))
}

func (a *testApp) addGenre(t *testing.T, name string) entities.Genre {
	t.Helper()
	genre := entities.Genre{Name: name}
	a.seed(t, func(s *database.Session) error {
		return genres.NewRepository().Insert(s, &genre)
	})
	return genre
}

func (a *testApp) addBook(t *testing.T, title string, price float64, genreID uint) entities.Book {
	t.Helper()
	book := entities.Book{Title: title, Price: price, GenreID: genreID}
	a.seed(t, func(s *database.Session) error {
		return books.NewRepository().Insert(s, &book)
	})
	return book
}

func (a *testApp) addSeller(t *testing.T, name string) entities.Seller {
	t.Helper()
	seller := entities.Seller{
		Name:       name,
		Email:      "seller@example.com",
		BirthDate:  time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
		BaseSalary: 2500,
	}
	a.seed(t, func(s *database.Session) error {
		return sellers.NewRepository().Insert(s, &seller)
	})
	return seller
}

func (a *testApp) addSale(t *testing.T, seller entities.Seller, amount float64, date time.Time, bookList ...entities.Book) entities.Sale {
	t.Helper()
	sale := entities.Sale{Date: date, Amount: amount, Seller: &seller, Books: bookList}
	a.seed(t, func(s *database.Session) error {
		return sales.NewRepository().Insert(s, &sale)
	})
	return sale
}

func (a *testApp) events(t *testing.T, entityType string) []entities.AuditEvent {
	t.Helper()
	events, _, err := a.audit.GetEvents(context.Background(), auditRepo.Filter{EntityType: entityType})
	require.NoError(t, err)
	return events
}

func idPath(prefix string, id uint, suffix string) string {
	return fmt.Sprintf("%s/%d%s", prefix, id, suffix)
}
