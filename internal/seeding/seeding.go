// Package seeding fills an empty store with demonstration rows.
package seeding

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/lo"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/database/books"
	"github.com/AFCVentura/Bookstore/internal/database/genres"
	"github.com/AFCVentura/Bookstore/internal/database/sales"
	"github.com/AFCVentura/Bookstore/internal/database/sellers"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

// Result counts the rows a seed run inserted.
type Result struct {
	Skipped bool
	Genres  int
	Books   int
	Sellers int
	Sales   int
}

func (r Result) String() string {
	if r.Skipped {
		return "store already has data, nothing seeded"
	}
	return fmt.Sprintf("seeded %d genres, %d books, %d sellers and %d sales", r.Genres, r.Books, r.Sellers, r.Sales)
}

// Recorder receives the outcome of a seed run.
type Recorder interface {
	LogSeed(ctx context.Context, description string, err error)
}

type Seeder struct {
	db       *database.Database
	genres   *genres.Repository
	books    *books.Repository
	sellers  *sellers.Repository
	sales    *sales.Repository
	recorder Recorder
}

// NewSeeder creates a seeder. recorder may be nil.
func NewSeeder(db *database.Database, recorder Recorder) *Seeder {
	return &Seeder{
		db:       db,
		genres:   genres.NewRepository(),
		books:    books.NewRepository(),
		sellers:  sellers.NewRepository(),
		sales:    sales.NewRepository(),
		recorder: recorder,
	}
}

// Seed inserts the demonstration data set when no genre, book, seller or
// sale exists yet. Everything is inserted in one transaction.
func (sd *Seeder) Seed(ctx context.Context) (Result, error) {
	empty, err := sd.db.IsEmpty(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("failed to inspect store: %w", err)
	}
	if !empty {
		return Result{Skipped: true}, nil
	}

	var result Result
	err = sd.db.WithSession(ctx, func(s *database.Session) error {
		return s.Transaction(func(tx *database.Session) error {
			var err error
			result, err = sd.insertAll(tx)
			return err
		})
	})
	if err != nil {
		err = fmt.Errorf("failed to seed store: %w", err)
		result = Result{}
	}
	if sd.recorder != nil {
		description := result.String()
		if err != nil {
			description = "seed failed"
		}
		sd.recorder.LogSeed(ctx, description, err)
	}
	if err == nil {
		log.Printf("Seeding: %s", result)
	}
	return result, err
}

func (sd *Seeder) insertAll(s *database.Session) (Result, error) {
	var result Result

	genreByName := make(map[string]uint, len(demoGenres))
	for _, name := range demoGenres {
		genre := &entities.Genre{Name: name}
		if err := sd.genres.Insert(s, genre); err != nil {
			return result, fmt.Errorf("genre %q: %w", name, err)
		}
		genreByName[name] = genre.ID
		result.Genres++
	}

	bookByTitle := make(map[string]entities.Book, len(demoBooks))
	for _, b := range demoBooks {
		book := &entities.Book{Title: b.title, Price: b.price, GenreID: genreByName[b.genre]}
		if err := sd.books.Insert(s, book); err != nil {
			return result, fmt.Errorf("book %q: %w", b.title, err)
		}
		bookByTitle[b.title] = *book
		result.Books++
	}

	sellerByName := make(map[string]uint, len(demoSellers))
	for _, seller := range demoSellers {
		if err := sd.sellers.Insert(s, &seller); err != nil {
			return result, fmt.Errorf("seller %q: %w", seller.Name, err)
		}
		sellerByName[seller.Name] = seller.ID
		result.Sellers++
	}

	for _, d := range demoSales {
		sale := &entities.Sale{
			Date:     d.date,
			Amount:   d.amount,
			SellerID: sellerByName[d.seller],
			Books: lo.Map(d.titles, func(title string, _ int) entities.Book {
				return bookByTitle[title]
			}),
		}
		if err := sd.sales.Insert(s, sale); err != nil {
			return result, fmt.Errorf("sale of %s on %s: %w", d.seller, d.date.Format(time.DateOnly), err)
		}
		result.Sales++
	}

	return result, nil
}
