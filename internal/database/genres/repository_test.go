package genres

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

func setupTestDB(t *testing.T) (*Repository, *database.Database, *database.Session) {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "genres.db"), database.Options{LogLevel: logger.Silent})
	require.NoError(t, err)

	s := db.NewSession(context.Background())
	t.Cleanup(func() {
		s.Close()
		db.Close()
	})

	return NewRepository(), db, s
}

func addBook(t *testing.T, s *database.Session, genreID uint, title string) entities.Book {
	t.Helper()
	book := entities.Book{Title: title, Price: 10, GenreID: genreID, Version: 1}
	require.NoError(t, s.DB().Create(&book).Error)
	return book
}

func TestRepository_InsertAndFindByID(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Romance"}
	require.NoError(t, repo.Insert(s, genre))
	assert.NotZero(t, genre.ID)
	assert.Equal(t, uint(1), genre.Version)

	found, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Romance", found.Name)
	assert.Equal(t, genre.ID, found.ID)
}

func TestRepository_InsertAssignsFreshIDs(t *testing.T) {
	repo, _, s := setupTestDB(t)

	first := &entities.Genre{Name: "Poetry"}
	require.NoError(t, repo.Insert(s, first))
	require.NoError(t, repo.Remove(s, first.ID))

	second := &entities.Genre{Name: "Drama"}
	require.NoError(t, repo.Insert(s, second))

	assert.NotEqual(t, first.ID, second.ID)
}

func TestRepository_FindByID_Absent(t *testing.T) {
	repo, _, s := setupTestDB(t)

	found, err := repo.FindByID(s, 999)

	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_FindAll(t *testing.T) {
	repo, _, s := setupTestDB(t)

	require.NoError(t, repo.Insert(s, &entities.Genre{Name: "Fantasy"}))
	require.NoError(t, repo.Insert(s, &entities.Genre{Name: "Horror"}))

	genres, err := repo.FindAll(s)
	require.NoError(t, err)
	require.Len(t, genres, 2)
	assert.Equal(t, "Fantasy", genres[0].Name)
	assert.Equal(t, "Horror", genres[1].Name)
}

func TestRepository_FindByIDEager(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Classics"}
	require.NoError(t, repo.Insert(s, genre))
	addBook(t, s, genre.ID, "Memórias Póstumas de Brás Cubas")
	addBook(t, s, genre.ID, "Dom Casmurro")

	found, err := repo.FindByIDEager(s, genre.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Len(t, found.Books, 2)
	assert.Equal(t, "Dom Casmurro", found.Books[0].Title)
}

func TestRepository_FindByIDEager_EmptyBooksIsNotNil(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Empty"}
	require.NoError(t, repo.Insert(s, genre))

	found, err := repo.FindByIDEager(s, genre.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.NotNil(t, found.Books)
	assert.Empty(t, found.Books)
}

func TestRepository_Update(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Sci-fi"}
	require.NoError(t, repo.Insert(s, genre))

	genre.Name = "Science Fiction"
	require.NoError(t, repo.Update(s, genre))
	assert.Equal(t, uint(2), genre.Version)

	found, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Science Fiction", found.Name)
	assert.Equal(t, uint(2), found.Version)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, s := setupTestDB(t)

	require.NoError(t, repo.Insert(s, &entities.Genre{Name: "Existing"}))

	err := repo.Update(s, &entities.Genre{ID: 42, Name: "Ghost", Version: 1})

	assert.ErrorIs(t, err, database.ErrNotFound)
	assert.Equal(t, database.KindNotFound, database.KindOf(err))

	genres, err := repo.FindAll(s)
	require.NoError(t, err)
	require.Len(t, genres, 1)
	assert.Equal(t, "Existing", genres[0].Name)
}

func TestRepository_Update_StaleCopy(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Mystery"}
	require.NoError(t, repo.Insert(s, genre))

	first, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	stale, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)

	first.Name = "Crime"
	require.NoError(t, repo.Update(s, first))

	stale.Name = "Thriller"
	err = repo.Update(s, stale)

	var concurrencyErr *database.ConcurrencyError
	require.ErrorAs(t, err, &concurrencyErr)
	assert.NotEmpty(t, concurrencyErr.Message)
	assert.Equal(t, database.KindConcurrency, database.KindOf(err))

	found, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	assert.Equal(t, "Crime", found.Name)
}

func TestRepository_Remove(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Temporary"}
	require.NoError(t, repo.Insert(s, genre))

	require.NoError(t, repo.Remove(s, genre.ID))

	found, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestRepository_Remove_WithBooks(t *testing.T) {
	repo, _, s := setupTestDB(t)

	genre := &entities.Genre{Name: "Owned"}
	require.NoError(t, repo.Insert(s, genre))
	addBook(t, s, genre.ID, "Vidas Secas")

	err := repo.Remove(s, genre.ID)

	var integrityErr *database.IntegrityError
	require.ErrorAs(t, err, &integrityErr)
	assert.Contains(t, integrityErr.Message, "FOREIGN KEY")
	assert.Equal(t, database.KindIntegrity, database.KindOf(err))

	found, err := repo.FindByID(s, genre.ID)
	require.NoError(t, err)
	assert.NotNil(t, found)
}

func TestRepository_Remove_Absent(t *testing.T) {
	repo, _, s := setupTestDB(t)

	err := repo.Remove(s, 7)

	assert.ErrorIs(t, err, database.ErrNotFound)
}

func TestRepository_ClosedSession(t *testing.T) {
	repo, db, _ := setupTestDB(t)

	s := db.NewSession(context.Background())
	s.Close()

	_, err := repo.FindAll(s)
	assert.ErrorIs(t, err, database.ErrSessionClosed)

	err = repo.Insert(s, &entities.Genre{Name: "Late"})
	assert.ErrorIs(t, err, database.ErrSessionClosed)
}

func TestRepository_WithoutSession(t *testing.T) {
	repo, db, _ := setupTestDB(t)

	closed := db.NewSession(context.Background())
	closed.Close()

	for name, s := range map[string]*database.Session{"closed": closed, "nil": nil} {
		t.Run(name, func(t *testing.T) {
			_, err := repo.FindByID(s, 1)
			assert.ErrorIs(t, err, database.ErrSessionClosed)

			_, err = repo.FindByIDEager(s, 1)
			assert.ErrorIs(t, err, database.ErrSessionClosed)

			assert.ErrorIs(t, repo.Remove(s, 1), database.ErrSessionClosed)
		})
	}
}
