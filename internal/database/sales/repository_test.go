package sales

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

type fixture struct {
	seller entities.Seller
	other  entities.Seller
	books  []entities.Book
}

func setupTestDB(t *testing.T) (*Repository, *database.Session, fixture) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "sales.db"), database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)

	s := db.NewSession(context.Background())
	t.Cleanup(func() {
		s.Close()
		db.Close()
	})

	f := fixture{
		seller: entities.Seller{Name: "Ana", Email: "ana@example.com", BirthDate: time.Date(1985, 2, 3, 0, 0, 0, 0, time.UTC), BaseSalary: 2000, Version: 1},
		other:  entities.Seller{Name: "Bruno", Email: "bruno@example.com", BirthDate: time.Date(1992, 7, 9, 0, 0, 0, 0, time.UTC), BaseSalary: 2200, Version: 1},
	}
	require.NoError(t, s.DB().Create(&f.seller).Error)
	require.NoError(t, s.DB().Create(&f.other).Error)

	genre := entities.Genre{Name: "Romance", Version: 1}
	require.NoError(t, s.DB().Create(&genre).Error)
	for _, title := range []string{"Senhora", "Lucíola", "Diva"} {
		book := entities.Book{Title: title, Price: 20, GenreID: genre.ID, Version: 1}
		require.NoError(t, s.DB().Create(&book).Error)
		f.books = append(f.books, book)
	}

	return NewRepository(), s, f
}

func titles(books []entities.Book) []string {
	out := make([]string, 0, len(books))
	for _, book := range books {
		out = append(out, book.Title)
	}
	return out
}

func TestRepository_InsertAndFindByIDEager(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{
		Date:   time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC),
		Amount: 35.5,
		Seller: &f.seller,
		Books:  []entities.Book{f.books[0], f.books[2], f.books[0]},
	}
	require.NoError(t, repo.Insert(s, sale))
	assert.NotZero(t, sale.ID)
	assert.Equal(t, f.seller.ID, sale.SellerID)
	assert.Equal(t, uint(1), sale.Version)

	found, err := repo.FindByIDEager(s, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 35.5, found.Amount)
	require.NotNil(t, found.Seller)
	assert.Equal(t, "Ana", found.Seller.Name)
	assert.ElementsMatch(t, []string{"Senhora", "Diva"}, titles(found.Books))

	// The seller row itself is untouched by the insert
	var sellers int64
	require.NoError(t, s.DB().Model(&entities.Seller{}).Count(&sellers).Error)
	assert.Equal(t, int64(2), sellers)
}

func TestRepository_Insert_NoBooks(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 1, SellerID: f.seller.ID}
	require.NoError(t, repo.Insert(s, sale))

	found, err := repo.FindByIDEager(s, sale.ID)
	require.NoError(t, err)
	assert.NotNil(t, found.Books)
	assert.Empty(t, found.Books)
}

func TestRepository_Insert_UnknownSeller(t *testing.T) {
	repo, s, _ := setupTestDB(t)

	err := repo.Insert(s, &entities.Sale{Date: time.Now(), Amount: 1, SellerID: 999})

	assert.Error(t, err)
	assert.Equal(t, database.KindOther, database.KindOf(err))

	all, err := repo.FindAll(s)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_FindByID_WithoutRelations(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 9, SellerID: f.seller.ID, Books: f.books[:1]}
	require.NoError(t, repo.Insert(s, sale))

	found, err := repo.FindByID(s, sale.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Nil(t, found.Seller)
	assert.Nil(t, found.Books)

	absent, err := repo.FindByIDEager(s, sale.ID+100)
	assert.NoError(t, err)
	assert.Nil(t, absent)
}

func TestRepository_FindAll(t *testing.T) {
	repo, s, f := setupTestDB(t)

	later := &entities.Sale{Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Amount: 20, SellerID: f.other.ID}
	earlier := &entities.Sale{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Amount: 10, SellerID: f.seller.ID}
	require.NoError(t, repo.Insert(s, later))
	require.NoError(t, repo.Insert(s, earlier))

	all, err := repo.FindAll(s)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, earlier.ID, all[0].ID)
	require.NotNil(t, all[0].Seller)
	assert.Equal(t, "Ana", all[0].Seller.Name)
	require.NotNil(t, all[1].Seller)
	assert.Equal(t, "Bruno", all[1].Seller.Name)

	entities.SortSales(all, entities.SaleOrderSellerDesc)
	assert.Equal(t, later.ID, all[0].ID)
}

func TestRepository_Update(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 10, SellerID: f.seller.ID, Books: f.books[:2]}
	require.NoError(t, repo.Insert(s, sale))

	sale.Amount = 99
	sale.SellerID = f.other.ID
	sale.Seller = nil
	sale.Books = []entities.Book{f.books[2]}
	require.NoError(t, repo.Update(s, sale))
	assert.Equal(t, uint(2), sale.Version)

	found, err := repo.FindByIDEager(s, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.0, found.Amount)
	assert.Equal(t, "Bruno", found.Seller.Name)
	assert.Equal(t, []string{"Diva"}, titles(found.Books))
}

func TestRepository_Update_KeepsBooksWhenNil(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 10, SellerID: f.seller.ID, Books: f.books[:2]}
	require.NoError(t, repo.Insert(s, sale))

	sale.Books = nil
	sale.Amount = 12
	require.NoError(t, repo.Update(s, sale))

	found, err := repo.FindByIDEager(s, sale.ID)
	require.NoError(t, err)
	assert.Len(t, found.Books, 2)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, s, f := setupTestDB(t)

	err := repo.Update(s, &entities.Sale{ID: 31, Date: time.Now(), Amount: 1, SellerID: f.seller.ID, Version: 1})

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_Update_StaleCopy(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 10, SellerID: f.seller.ID, Books: f.books[:1]}
	require.NoError(t, repo.Insert(s, sale))

	stale := *sale
	sale.Amount = 11
	require.NoError(t, repo.Update(s, sale))

	stale.Amount = 1
	stale.Books = f.books
	err := repo.Update(s, &stale)

	assert.Equal(t, database.KindConcurrency, database.KindOf(err))

	// The rejected update must not have replaced the book set either
	found, err := repo.FindByIDEager(s, sale.ID)
	require.NoError(t, err)
	assert.Equal(t, 11.0, found.Amount)
	assert.Equal(t, []string{"Senhora"}, titles(found.Books))
}

func TestRepository_Remove(t *testing.T) {
	repo, s, f := setupTestDB(t)

	sale := &entities.Sale{Date: time.Now(), Amount: 10, SellerID: f.seller.ID, Books: f.books}
	require.NoError(t, repo.Insert(s, sale))

	require.NoError(t, repo.Remove(s, sale.ID))

	found, err := repo.FindByID(s, sale.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	var links int64
	require.NoError(t, s.DB().Model(&entities.SaleBook{}).Count(&links).Error)
	assert.Zero(t, links)
}

func TestRepository_Remove_Absent(t *testing.T) {
	repo, s, _ := setupTestDB(t)

	err := repo.Remove(s, 12)

	assert.Equal(t, database.KindNotFound, database.KindOf(err))
}
