package entities

import "time"

type Sale struct {
	ID       uint      `gorm:"primaryKey" json:"id"`
	Date     time.Time `gorm:"index;not null" json:"date"`
	Amount   float64   `gorm:"not null" json:"amount"` // Negotiated total, independent of book prices
	SellerID uint      `gorm:"index;not null" json:"seller_id"`
	Seller   *Seller   `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Version  uint      `gorm:"not null" json:"version"`

	// Items is the stored association; Books is filled from it by eager reads
	// and is what callers set before an insert.
	Items []SaleBook `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE" json:"-"`
	Books []Book     `gorm:"-" json:"books,omitempty"`
}

// SaleBook links a sale to one of its books. A book that appears in any sale
// cannot be deleted; deleting the sale removes its links.
type SaleBook struct {
	SaleID uint `gorm:"primaryKey;autoIncrement:false" json:"sale_id"`
	BookID uint `gorm:"primaryKey;autoIncrement:false;index" json:"book_id"`
	Book   Book `gorm:"foreignKey:BookID;constraint:OnDelete:RESTRICT" json:"-"`
}

func (SaleBook) TableName() string {
	return "sale_books"
}

// BooksFromItems materializes Books from the loaded association rows.
// The result is never nil.
func (s *Sale) BooksFromItems() {
	books := make([]Book, 0, len(s.Items))
	for _, item := range s.Items {
		book := item.Book
		if book.ID == 0 {
			book.ID = item.BookID
		}
		books = append(books, book)
	}
	s.Books = books
}

// SaleOrder names a sort order for sale listings.
type SaleOrder string

const (
	SaleOrderDateAsc    SaleOrder = "date_asc"
	SaleOrderDateDesc   SaleOrder = "date_desc"
	SaleOrderAmountAsc  SaleOrder = "amount_asc"
	SaleOrderAmountDesc SaleOrder = "amount_desc"
	SaleOrderSellerAsc  SaleOrder = "seller_asc"
	SaleOrderSellerDesc SaleOrder = "seller_desc"
)

// Toggle returns the order a column header should link to next.
func (o SaleOrder) Toggle(asc, desc SaleOrder) SaleOrder {
	if o == asc {
		return desc
	}
	return asc
}
