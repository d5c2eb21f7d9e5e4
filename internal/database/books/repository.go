// Package books provides database operations for the book catalogue.
package books

import (
	"errors"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityName = "book"

// Repository handles all book database operations.
type Repository struct{}

// NewRepository creates a new books repository.
func NewRepository() *Repository {
	return &Repository{}
}

// FindAll retrieves every book with its genre.
func (r *Repository) FindAll(s *database.Session) ([]entities.Book, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var books []entities.Book
	err := s.DB().Preload("Genre").Order("id ASC").Find(&books).Error
	return books, err
}

// FindByID retrieves a book with its genre. Returns nil without error when absent.
func (r *Repository) FindByID(s *database.Session, id uint) (*entities.Book, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var book entities.Book
	err := s.DB().Preload("Genre").First(&book, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

// FindByIDs retrieves the books matching ids, in the order given. Unknown ids
// are skipped and repeated ids are returned once.
func (r *Repository) FindByIDs(s *database.Session, ids []uint) ([]entities.Book, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	ids = lo.Uniq(lo.Without(ids, 0))
	if len(ids) == 0 {
		return []entities.Book{}, nil
	}

	var found []entities.Book
	if err := s.DB().Where("id IN ?", ids).Find(&found).Error; err != nil {
		return nil, err
	}

	byID := lo.KeyBy(found, func(b entities.Book) uint { return b.ID })
	books := make([]entities.Book, 0, len(found))
	for _, id := range ids {
		if book, ok := byID[id]; ok {
			books = append(books, book)
		}
	}
	return books, nil
}

// Insert stores a new book and assigns its ID.
func (r *Repository) Insert(s *database.Session, book *entities.Book) error {
	if err := s.Err(); err != nil {
		return err
	}
	book.ID = 0
	book.Version = 1
	return s.DB().Omit("Genre").Create(book).Error
}

// Update overwrites title, price and genre of an existing book.
func (r *Repository) Update(s *database.Session, book *entities.Book) error {
	if err := s.Err(); err != nil {
		return err
	}
	var count int64
	if err := s.DB().Model(&entities.Book{}).Where("id = ?", book.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return database.NotFound(entityName, book.ID)
	}

	result := s.DB().Model(&entities.Book{}).
		Where("id = ? AND version = ?", book.ID, book.Version).
		Updates(map[string]any{
			"title":    book.Title,
			"price":    book.Price,
			"genre_id": book.GenreID,
			"version":  book.Version + 1,
		})
	if err := database.CheckVersion(result, entityName, book.ID); err != nil {
		return err
	}
	book.Version++
	return nil
}

// Remove deletes a book. Fails with an IntegrityError while any sale lists it.
func (r *Repository) Remove(s *database.Session, id uint) error {
	if err := s.Err(); err != nil {
		return err
	}
	result := s.DB().Delete(&entities.Book{}, id)
	if result.Error != nil {
		return database.ClassifyDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NotFound(entityName, id)
	}
	return nil
}
