package entities

// Book belongs to exactly one Genre and may be listed in any number of sales.
type Book struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Title   string  `gorm:"index;size:200;not null" json:"title"`
	Price   float64 `gorm:"not null" json:"price"`
	GenreID uint    `gorm:"index;not null" json:"genre_id"`
	Genre   *Genre  `gorm:"foreignKey:GenreID" json:"genre,omitempty"`
	Version uint    `gorm:"not null" json:"version"`
}
