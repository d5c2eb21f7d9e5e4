// Package sales provides database operations for sales and their book sets.
package sales

import (
	"errors"

	"github.com/samber/lo"
	"gorm.io/gorm"

	"github.com/AFCVentura/Bookstore/internal/database"
	"github.com/AFCVentura/Bookstore/internal/entities"
)

const entityName = "sale"

// Repository handles all sale database operations.
type Repository struct{}

// NewRepository creates a new sales repository.
func NewRepository() *Repository {
	return &Repository{}
}

// FindAll retrieves every sale with its seller, oldest first. Listings apply
// their own order with entities.SortSales.
func (r *Repository) FindAll(s *database.Session) ([]entities.Sale, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var sales []entities.Sale
	if err := s.DB().Preload("Seller").Order("date ASC, id ASC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// FindByID retrieves a sale without related rows. Returns nil without error
// when absent.
func (r *Repository) FindByID(s *database.Session, id uint) (*entities.Sale, error) {
	return r.find(s, id)
}

// FindByIDEager retrieves a sale with its seller and book set.
func (r *Repository) FindByIDEager(s *database.Session, id uint) (*entities.Sale, error) {
	sale, err := r.find(s, id, withSellerAndBooks)
	if err != nil || sale == nil {
		return sale, err
	}
	sale.BooksFromItems()
	return sale, nil
}

func withSellerAndBooks(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Seller").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("book_id ASC")
		}).
		Preload("Items.Book")
}

func (r *Repository) find(s *database.Session, id uint, scopes ...func(*gorm.DB) *gorm.DB) (*entities.Sale, error) {
	if err := s.Err(); err != nil {
		return nil, err
	}
	var sale entities.Sale
	err := s.DB().Scopes(scopes...).First(&sale, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sale, nil
}

// Insert stores a new sale together with the links to its books. The caller
// resolves SellerID and Books beforehand.
func (r *Repository) Insert(s *database.Session, sale *entities.Sale) error {
	if err := s.Err(); err != nil {
		return err
	}
	sale.ID = 0
	sale.Version = 1
	if sale.Seller != nil && sale.SellerID == 0 {
		sale.SellerID = sale.Seller.ID
	}
	sale.Items = itemsFor(sale.Books)

	return s.Transaction(func(tx *database.Session) error {
		return tx.DB().Omit("Seller", "Items.Book").Create(sale).Error
	})
}

// Update overwrites the date, amount and seller of an existing sale. When
// Books is non-nil the stored book set is replaced by it.
func (r *Repository) Update(s *database.Session, sale *entities.Sale) error {
	if err := s.Err(); err != nil {
		return err
	}
	if sale.Seller != nil && sale.SellerID == 0 {
		sale.SellerID = sale.Seller.ID
	}

	var count int64
	if err := s.DB().Model(&entities.Sale{}).Where("id = ?", sale.ID).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return database.NotFound(entityName, sale.ID)
	}

	err := s.Transaction(func(tx *database.Session) error {
		result := tx.DB().Model(&entities.Sale{}).
			Where("id = ? AND version = ?", sale.ID, sale.Version).
			Updates(map[string]any{
				"date":      sale.Date,
				"amount":    sale.Amount,
				"seller_id": sale.SellerID,
				"version":   sale.Version + 1,
			})
		if err := database.CheckVersion(result, entityName, sale.ID); err != nil {
			return err
		}
		if sale.Books == nil {
			return nil
		}

		if err := tx.DB().Where("sale_id = ?", sale.ID).Delete(&entities.SaleBook{}).Error; err != nil {
			return err
		}
		items := itemsFor(sale.Books)
		for i := range items {
			items[i].SaleID = sale.ID
		}
		if len(items) == 0 {
			return nil
		}
		return tx.DB().Omit("Book").Create(&items).Error
	})
	if err != nil {
		return err
	}
	sale.Version++
	if sale.Books != nil {
		sale.Items = itemsFor(sale.Books)
		for i := range sale.Items {
			sale.Items[i].SaleID = sale.ID
		}
	}
	return nil
}

// Remove deletes a sale. Its book links are removed with it.
func (r *Repository) Remove(s *database.Session, id uint) error {
	if err := s.Err(); err != nil {
		return err
	}
	result := s.DB().Delete(&entities.Sale{}, id)
	if result.Error != nil {
		return database.ClassifyDelete(result.Error)
	}
	if result.RowsAffected == 0 {
		return database.NotFound(entityName, id)
	}
	return nil
}

// itemsFor builds one link per distinct book.
func itemsFor(books []entities.Book) []entities.SaleBook {
	unique := lo.UniqBy(books, func(b entities.Book) uint { return b.ID })
	return lo.Map(unique, func(b entities.Book, _ int) entities.SaleBook {
		return entities.SaleBook{BookID: b.ID}
	})
}
