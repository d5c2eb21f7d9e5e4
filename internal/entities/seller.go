package entities

import (
	"cmp"
	"slices"
	"time"
)

// SellerHighlightsLimit is how many sales the seller detail projections keep.
const SellerHighlightsLimit = 5

type Seller struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:60;not null" json:"name"`
	Email      string    `gorm:"size:255;not null" json:"email"`
	BirthDate  time.Time `gorm:"not null" json:"birth_date"`
	BaseSalary float64   `gorm:"not null" json:"base_salary"`
	Version    uint      `gorm:"not null" json:"version"`
	Sales      []Sale    `gorm:"foreignKey:SellerID" json:"sales,omitempty"`
}

// RecentSales returns the latest sales by date, newest first.
func (s *Seller) RecentSales() []Sale {
	return topSales(s.Sales, func(a, b Sale) int {
		return b.Date.Compare(a.Date)
	})
}

// BiggestSales returns the sales with the highest amount, biggest first.
func (s *Seller) BiggestSales() []Sale {
	return topSales(s.Sales, func(a, b Sale) int {
		return cmp.Compare(b.Amount, a.Amount)
	})
}

// TotalSold sums the amount of every loaded sale.
func (s *Seller) TotalSold() float64 {
	total := 0.0
	for _, sale := range s.Sales {
		total += sale.Amount
	}
	return total
}

// topSales sorts a copy so ties keep the order the store returned them in.
func topSales(sales []Sale, compare func(a, b Sale) int) []Sale {
	sorted := slices.Clone(sales)
	slices.SortStableFunc(sorted, compare)
	if len(sorted) > SellerHighlightsLimit {
		sorted = sorted[:SellerHighlightsLimit]
	}
	if sorted == nil {
		sorted = []Sale{}
	}
	return sorted
}
