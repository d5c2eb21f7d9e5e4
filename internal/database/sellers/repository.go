// Package sellers provides database operations for sellers and the eager
// loads behind the seller list and detail pages.
package sellers

import (
	"errors"

	"gorm.io/gorm"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityName = "seller"

// Repository handles all seller database operations.
type Repository struct{}

// NewRepository creates a new sellers repository.
func NewRepository() *Repository {
	return &Repository{}
}

// withSalesAndBooks preloads Sales and, for each sale, its books.
func withSalesAndBooks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Sales", func(db *gorm.DB) *gorm.DB {
			return db.Order("sales.id ASC")
		}).
		Preload("Sales.Items").
		Preload("Sales.Items.Book")
}

// normalize fills every eager collection so callers never see nil.
func normalize(seller *entities.Seller) {
	if seller.Sales == nil {
		seller.Sales = []entities.Sale{}
	}
	for i := range seller.Sales {
		seller.Sales[i].BooksFromItems()
	}
}

// FindAll retrieves every seller with sales and the books of each sale.
func (r *Repository) FindAll(s *database.Session) ([]entities.Seller, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var sellers []entities.Seller
	if err := withSalesAndBooks(s.DB()).Order("id ASC").Find(&sellers).Error; err != nil {
		return nil, err
	}
	for i := range sellers {
		normalize(&sellers[i])
	}
	return sellers, nil
}

// FindByIDEager retrieves a seller with sales and the books of each sale.
func (r *Repository) FindByIDEager(s *database.Session, id uint) (*entities.Seller, error) {
	seller, err := r.find(s, id, withSalesAndBooks)
	if err != nil || seller == nil {
		return seller, err
	}
	normalize(seller)
	return seller, nil
}

// FindByID retrieves a seller without related rows. Returns nil without
// error when absent.
func (r *Repository) FindByID(s *database.Session, id uint) (*entities.Seller, error) {
	return r.find(s, id)
}

func (r *Repository) find(s *database.Session, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*entities.Seller, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var seller entities.Seller
	err := s.DB().Scopes(scopes...).First(&seller, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &seller, nil
}

// Insert stores a new seller and assigns its ID.
func (r *Repository) Insert(s *database.Session, seller *entities.Seller) error {
	if err := s.Err(); err != nil {
		return err
	}
	seller.ID = 0
	seller.Version = 1
	return s.DB().Omit("Sales").Create(seller).Error
}

// Update overwrites every scalar field of an existing seller.
func (r *Repository) Update(s *database.Session, seller *entities.Seller) error {
	if err := s.Err(); err != nil {
		return err
	}
	var count int64
	if err := s.DB().Model(&entities.Seller{}).Where("id = ?", seller.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return database.NotFound(entityName, seller.ID)
	}

	result := s.DB().Model(&entities.Seller{}).
		Where("id = ? AND version = ?", seller.ID, seller.Version).
		Updates(map[string]any{
			"name":        seller.Name,
			"email":       seller.Email,
			"birth_date":  seller.BirthDate,
			"base_salary": seller.BaseSalary,
			"version":     seller.Version + 1,
		})
	if err := database.CheckVersion(result, entityName, seller.ID); err != nil {
		return err
	}
	seller.Version++
	return nil
}

// Remove deletes a seller. Fails with an IntegrityError while the seller
// still has sales.
func (r *Repository) Remove(s *database.Session, id uint) error {
	if err := s.Err(); err != nil {
		return err
	}
	result := s.DB().Delete(&entities.Seller{}, id)
	if result.Error != nil {
		return database.ClassifyDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NotFound(entityName, id)
	}
	return nil
}
