// Package genres provides database operations for book genres.
//
// # Usage
//
//	repo := genres.NewRepository()
//	err := db.WithSession(ctx, func(s *database.Session) error {
//		genre, err := repo.FindByIDEager(s, id)
//		...
//	})
package genres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityName = "genre"

// Repository handles all genre database operations.
type Repository struct{}

// NewRepository creates a new genres repository.
func NewRepository() *Repository {
	return &Repository{}
}

// FindAll retrieves every genre in store order.
func (r *Repository) FindAll(s *database.Session) ([]entities.Genre, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var genres []entities.Genre
	err := s.DB().Order("id ASC").Find(&genres).Error
	return genres, err
}

// FindByID retrieves a genre by ID. Returns nil without error when absent.
func (r *Repository) FindByID(s *database.Session, id uint) (*entities.Genre, error) {
	return r.find(s, id)
}

// FindByIDEager retrieves a genre together with its books.
func (r *Repository) FindByIDEager(s *database.Session, id uint) (*entities.Genre, error) {
	genre, err := r.find(s, id, func(db *gorm.DB) *gorm.DB {
		return db.Preload("Books", func(db *gorm.DB) *gorm.DB {
			return db.Order("title ASC")
		})
	})
	if err != nil || genre == nil {
		return genre, err
	}
	if genre.Books == nil {
		genre.Books = []entities.Book{}
	}
	return genre, nil
}

func (r *Repository) find(s *database.Session, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*entities.Genre, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var genre entities.Genre
	err := s.DB().Scopes(scopes...).First(&genre, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &genre, nil
}

// Insert stores a new genre and assigns its ID.
func (r *Repository) Insert(s *database.Session, genre *entities.Genre) error {
	if err := s.Err(); err != nil {
		return err
	}
	genre.ID = 0
	genre.Version = 1
	return s.DB().Omit("Books").Create(genre).Error
}

// Update overwrites every field of an existing genre. The genre's Version
// must match the stored one.
func (r *Repository) Update(s *database.Session, genre *entities.Genre) error {
	if err := s.Err(); err != nil {
		return err
	}
	var count int64
	if err := s.DB().Model(&entities.Genre{}).Where("id = ?", genre.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return database.NotFound(entityName, genre.ID)
	}

	result := s.DB().Model(&entities.Genre{}).
		Where("id = ? AND version = ?", genre.ID, genre.Version).
		Updates(map[string]any{
			"name":    genre.Name,
			"version": genre.Version + 1,
		})
	if err := database.CheckVersion(result, entityName, genre.ID); err != nil {
		return err
	}
	genre.Version++
	return nil
}

// Remove deletes a genre. Fails with an IntegrityError while books still
// belong to it.
func (r *Repository) Remove(s *database.Session, id uint) error {
	if err := s.Err(); err != nil {
		return err
	}
	result := s.DB().Delete(&entities.Genre{}, id)
	if result.Error != nil {
		return database.ClassifyDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NotFound(entityName, id)
	}
	return nil
}
